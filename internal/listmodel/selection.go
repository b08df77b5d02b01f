package listmodel

import (
	"github.com/rshade/listkit/internal/indexset"
	"github.com/rshade/listkit/internal/item"
)

// Selection returns the logical indexes of the selected items.
func (l *List) Selection() []int {
	if l.selected.Len() == 0 {
		return []int{}
	}
	return l.recon.ToLogical(l.selected.Slice())
}

// SetSelection selects the items at the given logical indexes.
// Indexes that do not exist are ignored.
func (l *List) SetSelection(logical []int) {
	l.SelectDisplayed(l.recon.ToDisplayed(logical))
}

// DisplayedSelection returns the selected rows in displayed order.
func (l *List) DisplayedSelection() []int {
	return l.selected.Slice()
}

// SelectDisplayed selects rows by displayed index and fires
// selection-changed callbacks if the selection is different.
func (l *List) SelectDisplayed(rows []int) {
	next := l.normalizeSelection(rows)
	if next.Equal(l.selected) {
		return
	}
	l.selected = next
	l.fire(l.onSelection)
}

// RemoveSelection deletes the selected items.
func (l *List) RemoveSelection() error {
	if err := l.writable(); err != nil {
		return err
	}
	if l.selected.Len() == 0 {
		return nil
	}
	displayed := l.recon.Displayed()
	ids := make(map[item.ID]struct{}, l.selected.Len())
	for _, row := range l.selected.Slice() {
		if row < len(displayed) {
			ids[displayed[row].ID] = struct{}{}
		}
	}

	removed := l.items.DeleteIDs(ids)
	l.logger.Debug().Int("removed", removed).Msg("selection removed")
	l.SelectDisplayed(nil)
	return nil
}

// normalizeSelection applies the list's selection rules to displayed rows:
// out-of-range rows are dropped, single-selection lists keep the first
// row, and lists avoiding empty selection fall back to row 0.
func (l *List) normalizeSelection(rows []int) indexset.Set {
	s := indexset.New(rows...).Below(l.Len())
	if l.singleSelection && s.Len() > 1 {
		s = indexset.New(s.First())
	}
	if l.avoidEmpty && s.Len() == 0 && l.Len() > 0 {
		s = indexset.New(0)
	}
	return s
}

// keepSelection runs a mutation and keeps the same items selected
// afterwards, wherever the mutation moved them in displayed order.
func (l *List) keepSelection(mutate func() error) error {
	var ids []item.ID
	if l.source == nil && l.selected.Len() > 0 {
		displayed := l.recon.Displayed()
		for _, row := range l.selected.Slice() {
			if row < len(displayed) {
				ids = append(ids, displayed[row].ID)
			}
		}
	}

	if err := mutate(); err != nil {
		return err
	}

	if l.source != nil {
		l.SelectDisplayed(l.selected.Slice())
		return nil
	}

	var rows []int
	if len(ids) > 0 {
		want := make(map[item.ID]struct{}, len(ids))
		for _, id := range ids {
			want[id] = struct{}{}
		}
		for i, e := range l.recon.Displayed() {
			if _, ok := want[e.ID]; ok {
				rows = append(rows, i)
			}
		}
	}
	l.SelectDisplayed(rows)
	return nil
}
