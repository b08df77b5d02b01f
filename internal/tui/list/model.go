package listview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/listkit/internal/listmodel"
	"github.com/rshade/listkit/internal/sortspec"
)

// defaultBufferSize is the number of extra rows to render above/below viewport for smooth scrolling.
const defaultBufferSize = 5

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// chromeRows is the number of non-row lines the view draws (header and status).
const chromeRows = 2

// Model is a Bubble Tea model presenting a listmodel.List.
type Model struct {
	list   *listmodel.List
	keys   KeyMap
	styles Styles

	// cursor is the displayed row keyboard navigation starts from.
	cursor int

	// visibleFrom is the first visible row (inclusive).
	visibleFrom int

	// visibleTo is the last visible row (exclusive).
	visibleTo int

	// height is the number of rows available for items.
	height int

	// width is the viewport width in columns.
	width int

	// bufferSize is the number of extra rows to render above/below viewport.
	bufferSize int

	// sortColumn indexes the column sorted by the sort control, -1 for none.
	sortColumn int
	sortDesc   bool

	quitting bool
}

// NewModel creates a view over l with the given viewport size.
func NewModel(l *listmodel.List, height, width int) *Model {
	m := &Model{
		list:       l,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
		sortColumn: -1,
	}
	m.syncSort(l.SortSpec())
	m.syncCursor()
	return m
}

// syncSort points the sort control at an externally applied spec.
func (m *Model) syncSort(spec sortspec.Spec) {
	if spec.Empty() {
		return
	}
	for i, c := range m.list.Columns() {
		if c.Key == spec[0].Column {
			m.sortColumn = i
			m.sortDesc = spec[0].Descending
			return
		}
	}
}

// Init initializes the model (required for tea.Model interface).
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-chromeRows, 1)
		m.width = msg.Width
		m.updateVisibleRange()
		return m, nil
	}

	return m, nil
}

// handleKeyMsg gives the list first refusal on every key and falls back to
// cursor movement for keys it does not consume.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.CycleSort):
		m.cycleSort()
		return m, nil
	case key.Matches(msg, m.keys.ReverseSort):
		m.reverseSort()
		return m, nil
	}

	if m.list.HandleKey(m.keys.Classify(msg)) {
		m.syncCursor()
		return m, nil
	}

	n := m.list.Len()
	if n == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveTo(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.moveTo(m.cursor + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveTo(m.cursor - m.height)
	case key.Matches(msg, m.keys.PageDown):
		m.moveTo(m.cursor + m.height)
	case key.Matches(msg, m.keys.Home):
		m.moveTo(0)
	case key.Matches(msg, m.keys.End):
		m.moveTo(n - 1)
	case key.Matches(msg, m.keys.Enter):
		m.list.DoubleClick(m.cursor)
	}

	return m, nil
}

// moveTo places the cursor on row, clamped, and selects that row alone.
func (m *Model) moveTo(row int) {
	m.cursor = min(max(row, 0), m.list.Len()-1)
	m.list.SelectDisplayed([]int{m.cursor})
	m.updateVisibleRange()
}

// syncCursor moves the cursor to the first selected row after the list
// changed the selection or its contents.
func (m *Model) syncCursor() {
	if sel := m.list.DisplayedSelection(); len(sel) > 0 {
		m.cursor = sel[0]
	}
	m.cursor = min(max(m.cursor, 0), max(m.list.Len()-1, 0))
	m.updateVisibleRange()
}

// cycleSort advances the sort column: none, then each column in turn.
func (m *Model) cycleSort() {
	cols := m.list.Columns()
	m.sortColumn++
	if m.sortColumn >= len(cols) {
		m.sortColumn = -1
	}
	m.applySort()
}

// reverseSort flips the direction of the active sort, if any.
func (m *Model) reverseSort() {
	if m.sortColumn < 0 {
		return
	}
	m.sortDesc = !m.sortDesc
	m.applySort()
}

func (m *Model) applySort() {
	var spec sortspec.Spec
	if m.sortColumn >= 0 {
		spec = sortspec.Spec{{Column: m.list.Columns()[m.sortColumn].Key, Descending: m.sortDesc}}
	}
	if err := m.list.SetSortSpec(spec); err != nil {
		m.sortColumn = -1
		return
	}
	m.syncCursor()
}

// updateVisibleRange calculates the visible range of rows based on cursor and viewport.
// This ensures the cursor row is always visible and updates visibleFrom/visibleTo.
func (m *Model) updateVisibleRange() {
	n := m.list.Len()
	if n == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	// Calculate the ideal visible range centered on the cursor
	halfViewport := m.height / halfViewportDivisor

	idealFrom := m.cursor - halfViewport
	idealTo := idealFrom + m.height

	// Adjust if we're near the start
	if idealFrom < 0 {
		idealFrom = 0
		idealTo = m.height
	}

	// Adjust if we're near the end
	if idealTo > n {
		idealTo = n
		idealFrom = max(idealTo-m.height, 0)
	}

	m.visibleFrom = idealFrom
	m.visibleTo = idealTo
}

// List returns the underlying list model.
func (m *Model) List() *listmodel.List {
	return m.list
}

// SetCursor moves the cursor to row, capped to valid bounds, and selects it.
func (m *Model) SetCursor(row int) {
	if m.list.Len() == 0 {
		m.cursor = 0
		return
	}
	m.moveTo(row)
}

// Cursor returns the displayed row the cursor is on.
func (m *Model) Cursor() int {
	return m.cursor
}

// VisibleFrom returns the first visible row index (inclusive).
func (m *Model) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible row index (exclusive).
func (m *Model) VisibleTo() int {
	return m.visibleTo
}

// Height returns the number of item rows in the viewport.
func (m *Model) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model) Width() int {
	return m.width
}

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}
