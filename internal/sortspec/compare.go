package sortspec

import (
	"cmp"
	"fmt"
)

// kind ranks values of different types against each other.
type kind int

const (
	kindNil kind = iota
	kindBool
	kindNumber
	kindString
	kindOther
)

// Compare orders two cell values and returns -1, 0 or +1.
//
// Values of different kinds order as nil < bool < number < string < other.
// Numbers compare numerically regardless of their Go type, strings compare
// by bytes, and anything else compares by its fmt representation.
func Compare(a, b any) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}

	switch ka {
	case kindNil:
		return 0
	case kindBool:
		return compareBool(a.(bool), b.(bool))
	case kindNumber:
		return compareNumber(a, b)
	case kindString:
		return cmp.Compare(a.(string), b.(string))
	default:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

func kindOf(v any) kind {
	switch v.(type) {
	case nil:
		return kindNil
	case bool:
		return kindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return kindNumber
	case string:
		return kindString
	default:
		return kindOther
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareNumber compares two numeric values. Signed and unsigned integers
// are compared exactly; anything involving a float goes through float64.
func compareNumber(a, b any) int {
	ai, aInt := asInt(a)
	bi, bInt := asInt(b)
	if aInt && bInt {
		return cmp.Compare(ai, bi)
	}

	au, aUint := asUint(a)
	bu, bUint := asUint(b)
	switch {
	case aUint && bUint:
		return cmp.Compare(au, bu)
	case aUint && bInt:
		if bi < 0 {
			return 1
		}
		return cmp.Compare(au, uint64(bi))
	case aInt && bUint:
		if ai < 0 {
			return -1
		}
		return cmp.Compare(uint64(ai), bu)
	}

	// NaN sorts before every other number.
	return cmp.Compare(asFloat(a), asFloat(b))
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func asUint(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	default:
		return 0, false
	}
}

func asFloat(v any) float64 {
	if i, ok := asInt(v); ok {
		return float64(i)
	}
	if u, ok := asUint(v); ok {
		return float64(u)
	}
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
