// Package typeahead implements typing-to-select for lists.
//
// A Matcher accumulates recently typed characters into an input buffer
// that resets after a short idle period. BestMatch picks the row that the
// buffer should select: the smallest value starting with the input, or
// failing that, the smallest value sorting after it.
package typeahead

import (
	"strings"
	"time"
)

// DefaultTimeout is the idle period after which typed input starts over.
const DefaultTimeout = 750 * time.Millisecond

// KeyKind classifies a key event for list key handling.
type KeyKind int

const (
	// KeyOther is any key the list does not handle.
	KeyOther KeyKind = iota
	// KeyDelete is backspace or forward delete.
	KeyDelete
	// KeyNavigation is an arrow, page, enter, return or tab key.
	KeyNavigation
	// KeyCharacters is printable input carrying Runes.
	KeyCharacters
)

// String returns a short name for logging.
func (k KeyKind) String() string {
	switch k {
	case KeyDelete:
		return "delete"
	case KeyNavigation:
		return "navigation"
	case KeyCharacters:
		return "characters"
	default:
		return "other"
	}
}

// KeyEvent is a classified key press.
type KeyEvent struct {
	Kind  KeyKind
	Runes []rune
}

// Clock returns the current time.
type Clock func() time.Time

// Matcher holds the input buffer for one list. It must not be shared
// between lists.
type Matcher struct {
	timeout time.Duration
	now     Clock

	input    strings.Builder
	last     time.Time
	hasInput bool
}

// NewMatcher returns a Matcher that clears its buffer after timeout of
// inactivity. A non-positive timeout uses DefaultTimeout and a nil clock
// uses time.Now.
func NewMatcher(timeout time.Duration, now Clock) *Matcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &Matcher{timeout: timeout, now: now}
}

// Reset clears the buffer and forgets the last keystroke time.
func (m *Matcher) Reset() {
	m.input.Reset()
	m.last = time.Time{}
	m.hasInput = false
}

// Input returns the current buffer.
func (m *Matcher) Input() string {
	return m.input.String()
}

// Type appends runes to the buffer and returns the resulting input.
// If the previous keystroke is older than the timeout the buffer is
// cleared first.
func (m *Matcher) Type(runes []rune) string {
	now := m.now()
	if !m.hasInput {
		m.last = now
		m.hasInput = true
	}
	if now.Sub(m.last) > m.timeout {
		m.input.Reset()
	}
	m.last = now

	for _, r := range runes {
		m.input.WriteRune(r)
	}
	return m.input.String()
}

// BestMatch returns the index of the value the input should select.
//
// Among string values starting with input, the smallest wins. If none
// starts with input, the smallest value greater than input wins. Values
// that are not strings are skipped. Comparison is case-sensitive byte
// order, and on ties the earliest index wins.
func BestMatch(values []any, input string) (int, bool) {
	var (
		match      string
		matchIndex = -1
		next       string
		nextIndex  = -1
	)

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}

		if strings.HasPrefix(s, input) {
			if matchIndex < 0 || s < match {
				match, matchIndex = s, i
				continue
			}
		}

		if s > input && (nextIndex < 0 || s < next) {
			next, nextIndex = s, i
		}
	}

	if matchIndex >= 0 {
		return matchIndex, true
	}
	if nextIndex >= 0 {
		return nextIndex, true
	}
	return -1, false
}
