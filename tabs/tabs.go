// Package tabs provides a tab bar with per-tab page content. The bar is
// navigated cyclically; each tab title is reported as a hotspot so a
// container can activate tabs by click.
package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// KeyMap defines the key bindings for the tab bar.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns the default tab key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "]"),
			key.WithHelp("→/]", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "["),
			key.WithHelp("←/[", "previous tab"),
		),
	}
}

// Model is the tab view widget.
type Model struct {
	widget.Base

	KeyMap KeyMap
	Styles style.Styles

	titles []string
	pages  []string
	active int
}

// New returns a tab view with the given tab titles. Page content starts
// empty; fill it with SetPage.
func New(titles ...string) Model {
	return Model{
		KeyMap: DefaultKeyMap(),
		Styles: style.NewStyles(style.DefaultTheme()),
		titles: titles,
		pages:  make([]string, len(titles)),
	}
}

// Len returns the number of tabs.
func (m Model) Len() int {
	return len(m.titles)
}

// Active returns the index of the active tab, or -1 when there are none.
func (m Model) Active() int {
	if len(m.titles) == 0 {
		return -1
	}
	return m.active
}

// Activate makes the tab at index active. Out-of-range indices are ignored.
func (m *Model) Activate(index int) {
	if index >= 0 && index < len(m.titles) {
		m.active = index
	}
}

// SetPage sets the content rendered below the bar for the tab at index.
func (m *Model) SetPage(index int, content string) {
	if index >= 0 && index < len(m.pages) {
		m.pages[index] = content
	}
}

// Next activates the following tab, wrapping at the end.
func (m *Model) Next() {
	if len(m.titles) > 0 {
		m.active = (m.active + 1) % len(m.titles)
	}
}

// Prev activates the preceding tab, wrapping at the start.
func (m *Model) Prev() {
	if len(m.titles) > 0 {
		m.active = (m.active - 1 + len(m.titles)) % len(m.titles)
	}
}

// Update handles key events. Only a focused tab view reacts.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Next):
		m.Next()
	case key.Matches(keyMsg, m.KeyMap.Prev):
		m.Prev()
	}
	return m, nil
}

// View renders the tab bar, a rule, and the active page.
func (m Model) View() string {
	if len(m.titles) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.bar())

	width := m.Width()
	if width <= 0 {
		width = lipgloss.Width(b.String())
	}
	b.WriteString("\n")
	b.WriteString(m.Styles.Divider.Render(strings.Repeat("─", width)))

	if page := m.pages[m.active]; page != "" {
		b.WriteString("\n")
		b.WriteString(page)
	}
	return b.String()
}

// Hotspots returns one rect per tab title in the bar, relative to the
// widget's origin and ordered by tab index.
func (m Model) Hotspots() []mouse.Rect {
	rects := make([]mouse.Rect, 0, len(m.titles))
	x := 0
	for i := range m.titles {
		w := lipgloss.Width(m.renderTab(i))
		rects = append(rects, mouse.Rect{X: x, Width: w, Height: 1})
		x += w
	}
	return rects
}

// bar renders the row of tab titles.
func (m Model) bar() string {
	views := make([]string, len(m.titles))
	for i := range m.titles {
		views[i] = m.renderTab(i)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m Model) renderTab(i int) string {
	if i == m.active {
		return m.Styles.ActiveTab.Render(m.titles[i])
	}
	return m.Styles.Tab.Render(m.titles[i])
}
