package listmodel

import (
	"github.com/rshade/listkit/internal/typeahead"
)

// HandleKey reacts to a classified key press and reports whether the list
// consumed it. Unconsumed keys should get the caller's default handling,
// such as moving the cursor.
//
//   - Delete removes the selected items when deletion is enabled.
//   - Navigation resets the type-ahead input.
//   - Characters extend the type-ahead input and select the best match in
//     the typing-sensitive column.
func (l *List) HandleKey(ev typeahead.KeyEvent) bool {
	switch ev.Kind {
	case typeahead.KeyDelete:
		if !l.enableDelete {
			return false
		}
		if err := l.RemoveSelection(); err != nil {
			l.logger.Warn().Err(err).Msg("delete key ignored")
			return false
		}
		return true

	case typeahead.KeyNavigation:
		if l.matcher != nil {
			l.matcher.Reset()
		}
		return false

	case typeahead.KeyCharacters:
		if l.matcher == nil || len(ev.Runes) == 0 {
			return false
		}
		return l.typeAhead(ev.Runes)

	default:
		return false
	}
}

func (l *List) typeAhead(runes []rune) bool {
	input := l.matcher.Type(runes)
	key := l.TypingColumn().Key

	row, ok := typeahead.BestMatch(l.DisplayedValues(key), input)
	l.logger.Debug().
		Str("input", input).
		Str("column", key).
		Int("row", row).
		Bool("matched", ok).
		Msg("type-ahead")
	if !ok {
		return false
	}

	l.SelectDisplayed([]int{row})
	return true
}

// TypeAheadInput returns the current type-ahead buffer, empty when typing
// sensitivity is off.
func (l *List) TypeAheadInput() string {
	if l.matcher == nil {
		return ""
	}
	return l.matcher.Input()
}
