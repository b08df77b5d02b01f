package listmodel

import (
	"fmt"

	"github.com/rshade/listkit/internal/item"
)

// Len returns the number of items.
func (l *List) Len() int {
	if l.source != nil {
		return l.source.Len()
	}
	return l.items.Len()
}

// Get returns the item at a logical index. Single-column lists return the
// bare value; multi-column lists return a copy of the field map.
func (l *List) Get(index int) (any, error) {
	if l.source != nil {
		if index < 0 || index >= l.source.Len() {
			return nil, fmt.Errorf("%w: %d", item.ErrIndexOutOfRange, index)
		}
		return l.sourceItem(index), nil
	}
	e, err := l.items.At(index)
	if err != nil {
		return nil, err
	}
	return item.Unwrap(e.Fields, l.multiColumn), nil
}

// Slice returns the items in the logical range [from, to), clamped to the list.
func (l *List) Slice(from, to int) []any {
	from = max(from, 0)
	to = min(to, l.Len())
	if from >= to {
		return []any{}
	}
	out := make([]any, 0, to-from)
	for i := from; i < to; i++ {
		v, _ := l.Get(i)
		out = append(out, v)
	}
	return out
}

// Items returns all items in logical order.
func (l *List) Items() []any {
	return l.Slice(0, l.Len())
}

// Set replaces the content of the item at index without changing its
// identity. Multi-column lists merge the given fields into the item.
// Programmatic changes do not fire item-edited callbacks.
func (l *List) Set(index int, v any) error {
	if err := l.writable(); err != nil {
		return err
	}
	fields, err := l.fieldsFor(v)
	if err != nil {
		return err
	}
	return l.keepSelection(func() error {
		return l.items.Update(index, fields)
	})
}

func (l *List) fieldsFor(v any) (item.Fields, error) {
	if !l.multiColumn {
		return item.Fields{item.ImplicitField: v}, nil
	}
	switch t := v.(type) {
	case map[string]any:
		return item.Fields(t), nil
	case item.Fields:
		return t, nil
	default:
		return nil, fmt.Errorf("%w: multi-column items must be map[string]any, got %T", ErrInvalidConfig, v)
	}
}

// Delete removes the item at a logical index.
func (l *List) Delete(index int) error {
	if err := l.writable(); err != nil {
		return err
	}
	return l.keepSelection(func() error {
		return l.items.Delete(index)
	})
}

// Append adds an item at the end of the logical order.
func (l *List) Append(v any) error {
	if err := l.writable(); err != nil {
		return err
	}
	return l.keepSelection(func() error {
		l.items.Append(v)
		return nil
	})
}

// Extend appends every item in order.
func (l *List) Extend(values []any) error {
	if err := l.writable(); err != nil {
		return err
	}
	return l.keepSelection(func() error {
		l.items.Extend(values)
		return nil
	})
}

// Insert places v before the item at a logical index; an index at or past
// the end appends.
func (l *List) Insert(index int, v any) error {
	if err := l.writable(); err != nil {
		return err
	}
	return l.keepSelection(func() error {
		_, err := l.items.Insert(index, v)
		return err
	})
}

// Index returns the logical index of the first item equal to v.
func (l *List) Index(v any) (int, error) {
	if l.source != nil {
		for i := range l.source.Len() {
			if item.Wrap(l.sourceItem(i)).Equal(item.Wrap(v)) {
				return i, nil
			}
		}
		return -1, fmt.Errorf("%w: %v", item.ErrNotFound, v)
	}
	return l.items.Index(v)
}

// Remove deletes the first item equal to v.
func (l *List) Remove(v any) error {
	index, err := l.Index(v)
	if err != nil {
		return err
	}
	return l.Delete(index)
}

// SetItems replaces every item. The selection is cleared since none of
// the new items were selected.
func (l *List) SetItems(values []any) error {
	if err := l.writable(); err != nil {
		return err
	}
	return l.keepSelection(func() error {
		l.items.Reset(values)
		return nil
	})
}

// EditCell applies a user edit to one cell and fires item-edited callbacks.
func (l *List) EditCell(index int, key string, value any) error {
	if err := l.writable(); err != nil {
		return err
	}
	if _, ok := l.column(key); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	if !l.Editable(key) {
		return fmt.Errorf("%w: %q", ErrNotEditable, key)
	}

	err := l.keepSelection(func() error {
		return l.items.Update(index, item.Fields{key: value})
	})
	if err != nil {
		return err
	}

	l.logger.Debug().Int("index", index).Str("column", key).Msg("cell edited")
	l.fire(l.onEdit)
	return nil
}

func (l *List) writable() error {
	if l.ReadOnly() {
		return ErrReadOnly
	}
	return nil
}
