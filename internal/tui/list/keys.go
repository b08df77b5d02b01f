package listview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/listkit/internal/typeahead"
)

// KeyMap holds the key bindings of the list view.
type KeyMap struct {
	Delete key.Binding

	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Tab      key.Binding

	Home key.Binding
	End  key.Binding

	CycleSort   key.Binding
	ReverseSort key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings. Letters are left free for
// type-ahead, so view controls use control keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete:      key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("del", "delete selection")),
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:        key.NewBinding(key.WithKeys("left")),
		Right:       key.NewBinding(key.WithKeys("right")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Tab:         key.NewBinding(key.WithKeys("tab", "shift+tab")),
		Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		CycleSort:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^o", "sort column")),
		ReverseSort: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^r", "reverse sort")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Classify turns a key press into the event the list model understands.
// Plain printable input, including space, becomes KeyCharacters; arrow,
// page, enter and tab keys are navigation.
func (k KeyMap) Classify(msg tea.KeyMsg) typeahead.KeyEvent {
	switch {
	case key.Matches(msg, k.Delete):
		return typeahead.KeyEvent{Kind: typeahead.KeyDelete}
	case key.Matches(msg, k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Enter, k.Tab):
		return typeahead.KeyEvent{Kind: typeahead.KeyNavigation}
	}

	//nolint:exhaustive // Only printable input is typed; everything else is KeyOther.
	switch msg.Type {
	case tea.KeySpace:
		if msg.Alt {
			return typeahead.KeyEvent{Kind: typeahead.KeyOther}
		}
		return typeahead.KeyEvent{Kind: typeahead.KeyCharacters, Runes: []rune{' '}}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return typeahead.KeyEvent{Kind: typeahead.KeyOther}
		}
		return typeahead.KeyEvent{Kind: typeahead.KeyCharacters, Runes: msg.Runes}
	default:
		return typeahead.KeyEvent{Kind: typeahead.KeyOther}
	}
}

// ShortHelp returns the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Delete, k.CycleSort, k.ReverseSort, k.Quit}
}
