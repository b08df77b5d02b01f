package sortspec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/listkit/internal/item"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    Spec
		wantErr bool
	}{
		{name: "blank is empty spec", expr: "  ", want: nil},
		{name: "column defaults to asc", expr: "name", want: Spec{{Column: "name"}}},
		{name: "explicit desc", expr: "size:DESC", want: Spec{{Column: "size", Descending: true}}},
		{
			name: "multiple rules",
			expr: "kind:asc, name:desc",
			want: Spec{{Column: "kind"}, {Column: "name", Descending: true}},
		},
		{name: "too many colons", expr: "a:b:c", wantErr: true},
		{name: "empty column", expr: ":asc", wantErr: true},
		{name: "bad order", expr: "name:up", wantErr: true},
		{name: "empty rule in list", expr: "name,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidExpression)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpec_String(t *testing.T) {
	spec := Spec{{Column: "kind"}, {Column: "name", Descending: true}}
	assert.Equal(t, "kind:asc,name:desc", spec.String())

	parsed, err := Parse(spec.String())
	require.NoError(t, err)
	assert.Equal(t, spec, parsed)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "strings by bytes", a: "Zebra", b: "apple", want: -1},
		{name: "equal strings", a: "a", b: "a", want: 0},
		{name: "int vs float", a: 2, b: 1.5, want: 1},
		{name: "uint vs negative int", a: uint(1), b: -1, want: 1},
		{name: "negative int vs uint", a: int64(-3), b: uint8(0), want: -1},
		{name: "nil first", a: nil, b: false, want: -1},
		{name: "bool before number", a: true, b: 0, want: -1},
		{name: "number before string", a: 100, b: "1", want: -1},
		{name: "false before true", a: false, b: true, want: -1},
		{name: "NaN first", a: math.NaN(), b: -1.0, want: -1},
		{name: "other by representation", a: []int{2}, b: []int{1}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestSpec_SortIsStable(t *testing.T) {
	c := item.NewCollection([]any{
		map[string]any{"name": "b", "size": 1},
		map[string]any{"name": "a", "size": 2},
		map[string]any{"name": "b", "size": 0},
		map[string]any{"name": "a", "size": 2},
	})
	entries := c.Entries()

	sorted := Spec{{Column: "name"}}.Sort(entries)
	require.Len(t, sorted, 4)
	assert.Equal(t, []item.ID{entries[1].ID, entries[3].ID, entries[0].ID, entries[2].ID}, ids(sorted))

	sorted = Spec{{Column: "name", Descending: true}, {Column: "size"}}.Sort(entries)
	assert.Equal(t, []item.ID{entries[2].ID, entries[0].ID, entries[1].ID, entries[3].ID}, ids(sorted))

	// Equal keys keep logical order even when descending.
	sorted = Spec{{Column: "size", Descending: true}}.Sort(entries)
	assert.Equal(t, []item.ID{entries[1].ID, entries[3].ID, entries[0].ID, entries[2].ID}, ids(sorted))

	// Input is untouched.
	assert.Equal(t, entries, c.Entries())
}

func TestSpec_SortMissingColumn(t *testing.T) {
	c := item.NewCollection([]any{
		map[string]any{"name": "b"},
		map[string]any{"other": 1},
	})
	entries := c.Entries()

	sorted := Spec{{Column: "name"}}.Sort(entries)
	assert.Equal(t, []item.ID{entries[1].ID, entries[0].ID}, ids(sorted))
}

func TestSpec_EmptySortCopies(t *testing.T) {
	entries := item.NewCollection([]any{"b", "a"}).Entries()
	sorted := Spec(nil).Sort(entries)
	assert.Equal(t, entries, sorted)
}

func ids(entries []item.Entry) []item.ID {
	out := make([]item.ID, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
