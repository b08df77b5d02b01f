package typeahead_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/listkit/internal/typeahead"
)

// fakeClock is advanced manually by tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name      string
		values    []any
		input     string
		wantIndex int
		wantOK    bool
	}{
		{
			name:      "smallest prefix match wins over scan order",
			values:    []any{"sys", "signal"},
			input:     "s",
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "fallback to next value alphabetically",
			values:    []any{"vanilla", "zipimport"},
			input:     "x",
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "exact match is the smallest prefix match",
			values:    []any{"abc", "ab", "abd"},
			input:     "ab",
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "first occurrence wins ties",
			values:    []any{"b", "a", "a"},
			input:     "a",
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "first occurrence wins fallback ties",
			values:    []any{"m", "q", "q"},
			input:     "p",
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "case sensitive",
			values:    []any{"Apple", "apple"},
			input:     "a",
			wantIndex: 1,
			wantOK:    true,
		},
		{
			name:      "non-string values skipped",
			values:    []any{42, nil, map[string]any{}, "zed"},
			input:     "z",
			wantIndex: 3,
			wantOK:    true,
		},
		{
			name:   "nothing at or after input",
			values: []any{"alpha", "beta"},
			input:  "zz",
			wantOK: false,
		},
		{
			name:   "empty list",
			values: nil,
			input:  "a",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := typeahead.BestMatch(tt.values, tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIndex, idx)
			} else {
				assert.Equal(t, -1, idx)
			}
		})
	}
}

func TestMatcher_AccumulatesWithinTimeout(t *testing.T) {
	clock := newClock()
	m := typeahead.NewMatcher(0, clock.Now)

	assert.Equal(t, "s", m.Type([]rune("s")))
	clock.Advance(500 * time.Millisecond)
	assert.Equal(t, "si", m.Type([]rune("i")))
	clock.Advance(750 * time.Millisecond)
	assert.Equal(t, "sig", m.Type([]rune("g")), "exactly the timeout does not reset")
}

func TestMatcher_IdleReset(t *testing.T) {
	clock := newClock()
	m := typeahead.NewMatcher(typeahead.DefaultTimeout, clock.Now)

	assert.Equal(t, "s", m.Type([]rune("s")))
	clock.Advance(800 * time.Millisecond)
	assert.Equal(t, "s", m.Type([]rune("s")), "idle input starts a fresh search")
	assert.Equal(t, "s", m.Input())
}

func TestMatcher_Reset(t *testing.T) {
	clock := newClock()
	m := typeahead.NewMatcher(time.Second, clock.Now)

	m.Type([]rune("ab"))
	m.Reset()
	assert.Empty(t, m.Input())

	clock.Advance(10 * time.Second)
	assert.Equal(t, "c", m.Type([]rune("c")))
}

func TestKeyKind_String(t *testing.T) {
	assert.Equal(t, "delete", typeahead.KeyDelete.String())
	assert.Equal(t, "navigation", typeahead.KeyNavigation.String())
	assert.Equal(t, "characters", typeahead.KeyCharacters.String())
	assert.Equal(t, "other", typeahead.KeyOther.String())
}
