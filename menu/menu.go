// Package menu provides a selectable item list with fuzzy filtering and a
// scrolling window over long lists. Choosing an item emits a ChooseMsg; the
// widget reports one hotspot per visible row for click selection.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/loomui/loom/internal/textutil"
	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// Item is a single menu entry.
type Item struct {
	Title string
	Desc  string
}

// ChooseMsg is emitted when an item is chosen. Index refers to the item's
// position in the original item list, not the filtered view.
type ChooseMsg struct {
	Index int
	Item  Item
}

// KeyMap defines the key bindings for the menu.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Choose      key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
}

// DefaultKeyMap returns the default menu key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// Model is the menu widget.
type Model struct {
	widget.Base

	KeyMap     KeyMap
	Styles     style.Styles
	MaxVisible int // rows shown at once; 0 means show everything

	items     []Item
	filtered  []int // indexes into items, in display order
	filter    string
	filtering bool
	cursor    int // index into filtered
	offset    int // first visible row of the filtered view
}

// New returns a menu over the given items.
func New(items ...Item) Model {
	m := Model{
		KeyMap:     DefaultKeyMap(),
		Styles:     style.NewStyles(style.DefaultTheme()),
		MaxVisible: 10,
		items:      items,
	}
	m.applyFilter()
	return m
}

// Len returns the number of items matching the current filter.
func (m Model) Len() int {
	return len(m.filtered)
}

// Filter returns the active filter string.
func (m Model) Filter() string {
	return m.filter
}

// Filtering reports whether the menu is in filter-entry mode.
func (m Model) Filtering() bool {
	return m.filtering
}

// Selected returns the original index and item under the cursor, or
// ok=false when nothing matches the filter.
func (m Model) Selected() (int, Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return 0, Item{}, false
	}
	idx := m.filtered[m.cursor]
	return idx, m.items[idx], true
}

// Choose returns the command emitting ChooseMsg for the visible row at
// visRow (0-based within the current window), or nil when out of range.
// Containers call this when a click lands on an item hotspot.
func (m *Model) Choose(visRow int) tea.Cmd {
	row := m.offset + visRow
	if row < 0 || row >= len(m.filtered) {
		return nil
	}
	m.cursor = row
	idx := m.filtered[row]
	item := m.items[idx]
	return func() tea.Msg {
		return ChooseMsg{Index: idx, Item: item}
	}
}

// Update handles key events. Only a focused menu reacts.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filtering {
		return m.updateFiltering(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.KeyMap.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.KeyMap.Filter):
		m.filtering = true
	case key.Matches(keyMsg, m.KeyMap.ClearFilter):
		m.filter = ""
		m.applyFilter()
	case key.Matches(keyMsg, m.KeyMap.Choose):
		return m, m.Choose(m.cursor - m.offset)
	}
	return m, nil
}

// updateFiltering consumes keys while the filter line is being edited.
func (m Model) updateFiltering(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEscape:
		m.filtering = false
		m.filter = ""
		m.applyFilter()
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

// View renders the menu within its allotted width.
func (m Model) View() string {
	var b strings.Builder

	if m.filtering || m.filter != "" {
		prompt := "/ " + m.filter
		if m.filtering {
			prompt += "█"
		}
		b.WriteString(m.Styles.Muted.Render(prompt))
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(m.Styles.Muted.Render("  no matches"))
		return b.String()
	}

	start, end := m.window()
	for row := start; row < end; row++ {
		if row > start {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(row))
	}
	return b.String()
}

// Hotspots returns one rect per visible item row, relative to the widget's
// origin and ordered by visible row. The filter line, when shown, occupies
// row zero and is not clickable.
func (m Model) Hotspots() []mouse.Rect {
	y := 0
	if m.filtering || m.filter != "" {
		y = 1
	}
	start, end := m.window()
	rects := make([]mouse.Rect, 0, end-start)
	for row := start; row < end; row++ {
		rects = append(rects, mouse.Rect{Y: y, Width: m.rowWidth(), Height: 1})
		y++
	}
	return rects
}

// renderRow renders the filtered row at index row.
func (m Model) renderRow(row int) string {
	item := m.items[m.filtered[row]]
	line := item.Title
	if item.Desc != "" {
		line += "  " + item.Desc
	}
	line = textutil.Truncate(line, m.rowWidth()-2, "…")
	if row == m.cursor && m.Focused() {
		return m.Styles.Selected.Render("> " + line)
	}
	return m.Styles.Text.Render("  " + line)
}

// window returns the half-open range of filtered rows currently shown,
// keeping the cursor in view.
func (m Model) window() (int, int) {
	if m.MaxVisible <= 0 || len(m.filtered) <= m.MaxVisible {
		return 0, len(m.filtered)
	}
	start := m.offset
	if start > len(m.filtered)-m.MaxVisible {
		start = len(m.filtered) - m.MaxVisible
	}
	if start < 0 {
		start = 0
	}
	return start, start + m.MaxVisible
}

// moveCursor shifts the cursor by delta, clamping at the ends and scrolling
// the window to keep the cursor visible.
func (m *Model) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.MaxVisible > 0 {
		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+m.MaxVisible {
			m.offset = m.cursor - m.MaxVisible + 1
		}
	}
}

// applyFilter rebuilds the filtered view. An empty filter shows every item
// in original order; otherwise items are ranked by fuzzy match quality, the
// same matcher bubbles' list uses.
func (m *Model) applyFilter() {
	m.cursor = 0
	m.offset = 0
	m.filtered = m.filtered[:0]

	if m.filter == "" {
		for i := range m.items {
			m.filtered = append(m.filtered, i)
		}
		return
	}

	titles := make([]string, len(m.items))
	for i, it := range m.items {
		titles[i] = it.Title
	}
	for _, match := range fuzzy.Find(m.filter, titles) {
		m.filtered = append(m.filtered, match.Index)
	}
}

// rowWidth is the usable row width, defaulting when the container has not
// sized the widget yet.
func (m Model) rowWidth() int {
	if m.Width() <= 0 {
		return style.MinTerminalWidth
	}
	return m.Width()
}
