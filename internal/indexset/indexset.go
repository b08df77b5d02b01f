// Package indexset provides a small sorted set of row indexes.
package indexset

import (
	"slices"
)

// Set is a sorted, de-duplicated set of non-negative indexes.
// The zero value is an empty set.
type Set struct {
	idx []int
}

// New builds a set from indexes. Negative indexes are dropped.
func New(indexes ...int) Set {
	out := make([]int, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 {
			out = append(out, i)
		}
	}
	slices.Sort(out)
	return Set{idx: slices.Compact(out)}
}

// Len returns the number of indexes in the set.
func (s Set) Len() int {
	return len(s.idx)
}

// Has reports whether i is in the set.
func (s Set) Has(i int) bool {
	_, found := slices.BinarySearch(s.idx, i)
	return found
}

// Slice returns the indexes in ascending order.
func (s Set) Slice() []int {
	return slices.Clone(s.idx)
}

// First returns the smallest index, or -1 for an empty set.
func (s Set) First() int {
	if len(s.idx) == 0 {
		return -1
	}
	return s.idx[0]
}

// Equal reports whether both sets hold the same indexes.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.idx, other.idx)
}

// Below returns the subset of indexes strictly less than n.
func (s Set) Below(n int) Set {
	end, _ := slices.BinarySearch(s.idx, n)
	return Set{idx: slices.Clone(s.idx[:end])}
}
