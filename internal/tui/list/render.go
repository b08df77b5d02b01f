package listview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// columnSeparator is drawn between cells of multi-column lists.
const columnSeparator = " │ "

// cursorMarker prefixes the cursor row; other rows get matching padding.
const cursorMarker = "> "

// Styles holds the lipgloss styles used to render the list.
type Styles struct {
	Header   lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the standard list styles.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Row:      lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Reverse(true),
		Status:   lipgloss.NewStyle().Faint(true),
	}
}

// View renders the header, the visible rows with buffer, and a status line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	cols := m.list.Columns()
	values := make([][]any, len(cols))
	for i, c := range cols {
		values[i] = m.list.DisplayedValues(c.Key)
	}

	// Calculate render range with buffer for smooth scrolling
	renderFrom := max(m.visibleFrom-m.bufferSize, 0)
	renderTo := min(m.visibleTo+m.bufferSize, m.list.Len())

	widths := m.columnWidths(values, renderFrom, renderTo)

	var sb strings.Builder
	if m.list.ShowsColumnTitles() {
		titles := make([]string, len(cols))
		for i, c := range cols {
			titles[i] = c.Title
		}
		sb.WriteString(strings.Repeat(" ", len(cursorMarker)))
		sb.WriteString(m.styles.Header.Render(joinCells(titles, widths)))
		sb.WriteString("\n")
	}

	selected := map[int]bool{}
	for _, row := range m.list.DisplayedSelection() {
		selected[row] = true
	}

	for row := renderFrom; row < renderTo; row++ {
		cells := make([]string, len(cols))
		for i := range cols {
			cells[i] = cellText(values[i][row])
		}
		line := joinCells(cells, widths)

		prefix := strings.Repeat(" ", len(cursorMarker))
		if row == m.cursor {
			prefix = cursorMarker
		}
		style := m.styles.Row
		if selected[row] {
			style = m.styles.Selected
		}
		sb.WriteString(prefix)
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Status.Render(m.statusLine()))
	return sb.String()
}

// columnWidths returns each column's configured width, or for autosized
// columns the widest of its title and rendered cells in range.
func (m *Model) columnWidths(values [][]any, from, to int) []int {
	cols := m.list.Columns()
	widths := make([]int, len(cols))
	for i, c := range cols {
		if c.Width > 0 {
			widths[i] = c.Width
			continue
		}
		w := 0
		if m.list.ShowsColumnTitles() {
			w = lipgloss.Width(c.Title)
		}
		for row := from; row < to; row++ {
			w = max(w, lipgloss.Width(cellText(values[i][row])))
		}
		widths[i] = w
	}
	return widths
}

func joinCells(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = lipgloss.NewStyle().Width(widths[i]).MaxWidth(widths[i]).Render(cell)
	}
	return strings.Join(padded, columnSeparator)
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (m *Model) statusLine() string {
	p := message.NewPrinter(language.English)
	parts := []string{p.Sprintf("%d items", m.list.Len())}
	if spec := m.list.SortSpec(); !spec.Empty() {
		parts = append(parts, "sort "+spec.String())
	}
	if input := m.list.TypeAheadInput(); input != "" {
		parts = append(parts, fmt.Sprintf("find %q", input))
	}
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		if h.Key != "" {
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return strings.Join(parts, " · ")
}
