// Package sortspec describes how a list is ordered for display and
// produces that displayed order from the list's logical order.
//
// A Spec is an ordered list of column rules. An empty Spec means no
// sort is active and the displayed order is the logical order.
package sortspec

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/listkit/internal/item"
)

// Sort order names accepted by Parse.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// sortPartsMax is the maximum number of colon-separated parts in a rule.
const sortPartsMax = 2

// ErrInvalidExpression is returned when a sort expression cannot be parsed.
var ErrInvalidExpression = errors.New("invalid sort expression")

// Rule orders rows by one column.
type Rule struct {
	Column     string
	Descending bool
}

// String renders the rule in "column:order" form.
func (r Rule) String() string {
	if r.Descending {
		return r.Column + ":" + OrderDesc
	}
	return r.Column + ":" + OrderAsc
}

// Spec is an ordered list of rules; earlier rules take precedence.
type Spec []Rule

// Empty reports whether no sort is active.
func (s Spec) Empty() bool {
	return len(s) == 0
}

// String renders the spec in the form accepted by Parse.
func (s Spec) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Source supplies the currently active sort specification.
// The spec is owned by the caller and may change between calls.
type Source interface {
	SortSpec() Spec
}

// SortSpec makes a fixed Spec usable as a Source.
func (s Spec) SortSpec() Spec {
	return s
}

// Sort returns a new slice with entries stably ordered by the spec.
// The input is not modified. Entries lacking a sort column compare as nil.
func (s Spec) Sort(entries []item.Entry) []item.Entry {
	sorted := make([]item.Entry, len(entries))
	copy(sorted, entries)
	if s.Empty() {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		for _, rule := range s {
			a, _ := sorted[i].Value(rule.Column)
			b, _ := sorted[j].Value(rule.Column)
			c := Compare(a, b)
			if c == 0 {
				continue
			}
			if rule.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})

	return sorted
}

// Parse parses a comma-separated list of "column[:asc|desc]" rules.
// Order defaults to ascending. An empty or blank expression yields an
// empty Spec.
func Parse(expr string) (Spec, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}

	var spec Spec
	for raw := range strings.SplitSeq(expr, ",") {
		rule, err := parseRule(raw)
		if err != nil {
			return nil, err
		}
		spec = append(spec, rule)
	}
	return spec, nil
}

func parseRule(expr string) (Rule, error) {
	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return Rule{}, fmt.Errorf("%w: too many colons in %q", ErrInvalidExpression, expr)
	}

	column := strings.TrimSpace(parts[0])
	if column == "" {
		return Rule{}, fmt.Errorf("%w: empty column in %q", ErrInvalidExpression, expr)
	}

	order := OrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}

	switch order {
	case OrderAsc:
		return Rule{Column: column}, nil
	case OrderDesc:
		return Rule{Column: column, Descending: true}, nil
	default:
		return Rule{}, fmt.Errorf("%w: order %q (must be asc or desc)", ErrInvalidExpression, order)
	}
}
