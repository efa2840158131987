// Package accordion provides a vertical list of collapsible sections. Each
// section has a one-line header and a word-wrapped body shown while the
// section is expanded. Headers are clickable: the widget reports one hotspot
// per header so a container can map clicks back to sections.
package accordion

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomui/loom/internal/textutil"
	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// Markers for collapsed and expanded section headers.
const (
	markerCollapsed = "▸"
	markerExpanded  = "▾"
)

// bodyIndent is the left indent of expanded section bodies, in cells.
const bodyIndent = 2

// Section is one collapsible entry.
type Section struct {
	Title    string
	Body     string
	Expanded bool
}

// KeyMap defines the key bindings for the accordion.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
}

// DefaultKeyMap returns the default accordion key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous section"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next section"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle section"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "collapse all"),
		),
	}
}

// Model is the accordion widget.
type Model struct {
	widget.Base

	KeyMap KeyMap
	Styles style.Styles

	sections []Section
	cursor   int
}

// New returns an accordion over the given sections.
func New(sections ...Section) Model {
	return Model{
		KeyMap:   DefaultKeyMap(),
		Styles:   style.NewStyles(style.DefaultTheme()),
		sections: sections,
	}
}

// Len returns the number of sections.
func (m Model) Len() int {
	return len(m.sections)
}

// Cursor returns the index of the section under the cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Section returns a copy of the section at index i, and whether it exists.
func (m Model) Section(i int) (Section, bool) {
	if i < 0 || i >= len(m.sections) {
		return Section{}, false
	}
	return m.sections[i], true
}

// Toggle flips the expanded state of section i. Out-of-range indices are
// ignored.
func (m *Model) Toggle(i int) {
	if i < 0 || i >= len(m.sections) {
		return
	}
	m.sections[i].Expanded = !m.sections[i].Expanded
	m.cursor = i
}

// ExpandAll expands every section.
func (m *Model) ExpandAll() {
	for i := range m.sections {
		m.sections[i].Expanded = true
	}
}

// CollapseAll collapses every section.
func (m *Model) CollapseAll() {
	for i := range m.sections {
		m.sections[i].Expanded = false
	}
}

// Update handles key events. Only a focused accordion reacts.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() || len(m.sections) == 0 {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.KeyMap.Down):
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.KeyMap.Toggle):
		m.Toggle(m.cursor)
	case key.Matches(keyMsg, m.KeyMap.ExpandAll):
		m.ExpandAll()
	case key.Matches(keyMsg, m.KeyMap.CollapseAll):
		m.CollapseAll()
	}
	return m, nil
}

// View renders the accordion within its allotted width.
func (m Model) View() string {
	var b strings.Builder
	for i, s := range m.sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderHeader(i, s))
		if s.Expanded {
			for _, line := range m.bodyLines(s) {
				b.WriteString("\n")
				b.WriteString(strings.Repeat(" ", bodyIndent))
				b.WriteString(m.Styles.Text.Render(line))
			}
		}
	}
	return b.String()
}

// Hotspots returns one rect per section header, relative to the widget's
// origin and ordered by section index.
func (m Model) Hotspots() []mouse.Rect {
	rects := make([]mouse.Rect, 0, len(m.sections))
	y := 0
	for _, s := range m.sections {
		rects = append(rects, mouse.Rect{Y: y, Width: m.headerWidth(), Height: 1})
		y++
		if s.Expanded {
			y += len(m.bodyLines(s))
		}
	}
	return rects
}

func (m Model) renderHeader(i int, s Section) string {
	marker := markerCollapsed
	if s.Expanded {
		marker = markerExpanded
	}
	header := textutil.Truncate(marker+" "+s.Title, m.headerWidth(), "…")
	if i == m.cursor && m.Focused() {
		return m.Styles.Selected.Render(header)
	}
	return m.Styles.Title.Render(header)
}

// bodyLines word-wraps a section body to the width left of the indent.
func (m Model) bodyLines(s Section) []string {
	if s.Body == "" {
		return nil
	}
	return textutil.Wrap(s.Body, m.headerWidth()-bodyIndent)
}

// headerWidth is the usable line width, defaulting when the container has
// not sized the widget yet.
func (m Model) headerWidth() int {
	if m.Width() <= 0 {
		return style.MinTerminalWidth
	}
	return m.Width()
}
