package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listkit/internal/item"
)

func values(c *item.Collection, multi bool) []any {
	out := make([]any, 0, c.Len())
	for _, e := range c.Entries() {
		out = append(out, item.Unwrap(e.Fields, multi))
	}
	return out
}

func TestCollection_AppendInsertDelete(t *testing.T) {
	c := item.NewCollection([]any{"A", "B", "C"})
	require.Equal(t, 3, c.Len())

	c.Append("Z")
	assert.Equal(t, []any{"A", "B", "C", "Z"}, values(c, false))

	_, err := c.Insert(1, "XYZ")
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "XYZ", "B", "C", "Z"}, values(c, false))

	_, err = c.Insert(99, "end")
	require.NoError(t, err)
	assert.Equal(t, "end", values(c, false)[5])

	require.NoError(t, c.Delete(1))
	assert.Equal(t, []any{"A", "B", "C", "Z", "end"}, values(c, false))

	err = c.Delete(5)
	require.ErrorIs(t, err, item.ErrIndexOutOfRange)

	_, err = c.Insert(-1, "neg")
	require.ErrorIs(t, err, item.ErrIndexOutOfRange)
}

func TestCollection_IDsAreStableAndUnique(t *testing.T) {
	c := item.NewCollection([]any{"A", "A", "A"})
	entries := c.Entries()

	seen := map[item.ID]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}

	require.NoError(t, c.Update(1, item.Fields{item.ImplicitField: "B"}))
	after, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, entries[1].ID, after.ID)
	assert.Equal(t, "B", item.Unwrap(after.Fields, false))
	assert.Equal(t, 1, c.IndexOfID(entries[1].ID))
}

func TestCollection_DeleteIDs(t *testing.T) {
	c := item.NewCollection([]any{"A", "B", "C", "D"})
	entries := c.Entries()

	removed := c.DeleteIDs(map[item.ID]struct{}{
		entries[0].ID: {},
		entries[2].ID: {},
	})

	assert.Equal(t, 2, removed)
	assert.Equal(t, []any{"B", "D"}, values(c, false))
	assert.Equal(t, -1, c.IndexOfID(entries[0].ID))
	assert.Equal(t, 0, c.DeleteIDs(nil))
}

func TestCollection_Index(t *testing.T) {
	c := item.NewCollection([]any{
		map[string]any{"name": "a", "size": 1},
		map[string]any{"name": "b", "size": 2},
		map[string]any{"name": "b", "size": 2},
	})

	idx, err := c.Index(map[string]any{"name": "b", "size": 2})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = c.Index(map[string]any{"name": "c"})
	require.ErrorIs(t, err, item.ErrNotFound)
}

func TestWrap_CopiesMaps(t *testing.T) {
	src := map[string]any{"name": "a"}
	f := item.Wrap(src)
	f["name"] = "changed"

	assert.Equal(t, "a", src["name"])
	assert.Equal(t, item.Fields{item.ImplicitField: 42}, item.Wrap(42))
}

func TestCollection_Reset(t *testing.T) {
	c := item.NewCollection([]any{"A"})
	old := c.Entries()[0].ID

	c.Reset([]any{"A", "B"})

	assert.Equal(t, []any{"A", "B"}, values(c, false))
	assert.NotEqual(t, old, c.Entries()[0].ID)
}
