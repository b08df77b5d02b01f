package item

import (
	"errors"
	"fmt"
	"maps"

	"github.com/oklog/ulid/v2"
)

// Collection errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("item not found")
)

// Collection is an insertion-ordered sequence of entries.
// It is not safe for concurrent use; the owning list serialises access.
type Collection struct {
	entries []Entry

	// newID allocates identifiers; replaced in tests for determinism.
	newID func() ID
}

// NewCollection creates a collection holding the wrapped values in order.
func NewCollection(values []any) *Collection {
	c := &Collection{newID: ulid.Make}
	c.Extend(values)
	return c
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.entries)
}

// At returns the entry at a logical index.
func (c *Collection) At(index int) (Entry, error) {
	if index < 0 || index >= len(c.entries) {
		return Entry{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(c.entries))
	}
	return c.entries[index], nil
}

// Entries returns a copy of the entries in logical order.
// The field maps are shared; callers must not mutate them.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Append adds a value at the end and returns its ID.
func (c *Collection) Append(v any) ID {
	e := Entry{ID: c.newID(), Fields: Wrap(v)}
	c.entries = append(c.entries, e)
	return e.ID
}

// Extend appends every value in order.
func (c *Collection) Extend(values []any) {
	for _, v := range values {
		c.Append(v)
	}
}

// Insert places a value before the entry at index.
// An index at or past the end appends.
func (c *Collection) Insert(index int, v any) (ID, error) {
	if index < 0 {
		return ID{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if index >= len(c.entries) {
		return c.Append(v), nil
	}
	e := Entry{ID: c.newID(), Fields: Wrap(v)}
	c.entries = append(c.entries, Entry{})
	copy(c.entries[index+1:], c.entries[index:])
	c.entries[index] = e
	return e.ID, nil
}

// Delete removes the entry at index.
func (c *Collection) Delete(index int) error {
	if index < 0 || index >= len(c.entries) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(c.entries))
	}
	c.entries = append(c.entries[:index], c.entries[index+1:]...)
	return nil
}

// DeleteIDs removes every entry whose ID is in ids and reports how many were removed.
func (c *Collection) DeleteIDs(ids map[ID]struct{}) int {
	if len(ids) == 0 {
		return 0
	}
	kept := c.entries[:0]
	removed := 0
	for _, e := range c.entries {
		if _, ok := ids[e.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	// Drop references held by the tail of the backing array.
	for i := len(kept); i < len(c.entries); i++ {
		c.entries[i] = Entry{}
	}
	c.entries = kept
	return removed
}

// Update merges fields into the entry at index, keeping its ID.
func (c *Collection) Update(index int, fields Fields) error {
	if index < 0 || index >= len(c.entries) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(c.entries))
	}
	e := &c.entries[index]
	if e.Fields == nil {
		e.Fields = Fields{}
	}
	maps.Copy(e.Fields, fields)
	return nil
}

// Reset replaces the whole content. Every new entry gets a fresh ID.
func (c *Collection) Reset(values []any) {
	c.entries = nil
	c.Extend(values)
}

// Index returns the logical index of the first entry whose fields equal the
// wrapped form of v.
func (c *Collection) Index(v any) (int, error) {
	want := Wrap(v)
	for i, e := range c.entries {
		if e.Fields.Equal(want) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %v", ErrNotFound, v)
}

// IndexOfID returns the logical index of the entry with the given ID, or -1.
func (c *Collection) IndexOfID(id ID) int {
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
