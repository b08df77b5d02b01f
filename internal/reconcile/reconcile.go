// Package reconcile translates row indexes between a list's logical
// (insertion) order and the order it is currently displayed in.
//
// Translation goes through item IDs, never values, so rows holding equal
// values are still paired with the right counterpart. When no sort is
// active both orders are the same and indexes pass through unchanged.
package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/rshade/listkit/internal/item"
	"github.com/rshade/listkit/internal/sortspec"
)

// Collection is the read side of the ordered collection being displayed.
type Collection interface {
	Entries() []item.Entry
}

// Reconciler converts index sets between logical and displayed order.
// It reads the collection and the sort source on every call and holds no
// state of its own, so it never goes stale.
type Reconciler struct {
	items  Collection
	sorts  sortspec.Source
	logger zerolog.Logger
}

// New creates a Reconciler over items, ordered for display by sorts.
func New(items Collection, sorts sortspec.Source, logger zerolog.Logger) *Reconciler {
	return &Reconciler{
		items:  items,
		sorts:  sorts,
		logger: logger,
	}
}

// Displayed returns the entries in displayed order.
func (r *Reconciler) Displayed() []item.Entry {
	return r.sorts.SortSpec().Sort(r.items.Entries())
}

// ToLogical maps displayed indexes to logical indexes.
//
// The result is in ascending logical order. Indexes that do not resolve,
// for example because the collection changed since they were taken, are
// left out, so the result can be shorter than the input.
func (r *Reconciler) ToLogical(displayed []int) []int {
	spec := r.sorts.SortSpec()
	if spec.Empty() {
		return displayed
	}
	logical := r.items.Entries()
	return r.translate(displayed, spec.Sort(logical), logical, "to_logical")
}

// ToDisplayed maps logical indexes to displayed indexes, with the same
// ordering and omission rules as ToLogical.
func (r *Reconciler) ToDisplayed(logical []int) []int {
	spec := r.sorts.SortSpec()
	if spec.Empty() {
		return logical
	}
	entries := r.items.Entries()
	return r.translate(logical, entries, spec.Sort(entries), "to_displayed")
}

// translate resolves each requested index in from to an ID, then scans to
// and emits the position of every wanted ID, stopping once all are found.
func (r *Reconciler) translate(indexes []int, from, to []item.Entry, direction string) []int {
	wanted := make(map[item.ID]struct{}, len(indexes))
	for _, idx := range indexes {
		if idx < 0 || idx >= len(from) {
			r.logger.Debug().
				Str("direction", direction).
				Int("index", idx).
				Int("len", len(from)).
				Msg("index out of range, omitted")
			continue
		}
		wanted[from[idx].ID] = struct{}{}
	}

	out := make([]int, 0, len(wanted))
	for i, e := range to {
		if len(wanted) == 0 {
			break
		}
		if _, ok := wanted[e.ID]; ok {
			out = append(out, i)
			delete(wanted, e.ID)
		}
	}

	if len(wanted) > 0 {
		r.logger.Debug().
			Str("direction", direction).
			Int("missing", len(wanted)).
			Msg("ids not found in target order, omitted")
	}

	return out
}
