// Package splitpane provides a two-pane horizontal or vertical split with
// an adjustable ratio. Each pane is a hotspot so containers can move focus
// between panes by click.
package splitpane

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomui/loom/internal/textutil"
	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// Orientation selects how the area is divided.
type Orientation int

const (
	// Horizontal places the panes side by side.
	Horizontal Orientation = iota
	// Vertical stacks the panes.
	Vertical
)

// Pane identifies one side of the split.
type Pane int

const (
	First  Pane = 0
	Second Pane = 1
)

// Ratio bounds keep both panes visible while resizing.
const (
	minRatio = 0.1
	maxRatio = 0.9
)

// KeyMap defines the key bindings for the split pane.
type KeyMap struct {
	Grow   key.Binding
	Shrink key.Binding
	Switch key.Binding
}

// DefaultKeyMap returns the default split pane key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Grow: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "grow first pane"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "shrink first pane"),
		),
		Switch: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "other pane"),
		),
	}
}

// Model is the split pane widget.
type Model struct {
	widget.Base

	KeyMap KeyMap
	Styles style.Styles
	Step   float64 // ratio change per resize keypress

	orientation Orientation
	ratio       float64
	active      Pane
	content     [2]string
}

// New returns an evenly split pane with the given orientation.
func New(orientation Orientation) Model {
	return Model{
		KeyMap:      DefaultKeyMap(),
		Styles:      style.NewStyles(style.DefaultTheme()),
		Step:        0.05,
		orientation: orientation,
		ratio:       0.5,
	}
}

// SetContent fills one pane.
func (m *Model) SetContent(pane Pane, content string) {
	if pane == First || pane == Second {
		m.content[pane] = content
	}
}

// Ratio returns the fraction of the area given to the first pane.
func (m Model) Ratio() float64 {
	return m.ratio
}

// SetRatio sets the first pane's share of the area, clamped so neither pane
// disappears.
func (m *Model) SetRatio(r float64) {
	if r < minRatio {
		r = minRatio
	}
	if r > maxRatio {
		r = maxRatio
	}
	m.ratio = r
}

// ActivePane returns the pane currently marked active.
func (m Model) ActivePane() Pane {
	return m.active
}

// SetActivePane marks a pane active. Containers call this when a click
// lands in a pane hotspot.
func (m *Model) SetActivePane(p Pane) {
	if p == First || p == Second {
		m.active = p
	}
}

// Update handles key events. Only a focused split pane reacts.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Grow):
		m.SetRatio(m.ratio + m.Step)
	case key.Matches(keyMsg, m.KeyMap.Shrink):
		m.SetRatio(m.ratio - m.Step)
	case key.Matches(keyMsg, m.KeyMap.Switch):
		m.active = 1 - m.active
	}
	return m, nil
}

// View renders both panes and the divider within the allotted size.
func (m Model) View() string {
	w, h := m.area()
	if m.orientation == Horizontal {
		firstW, secondW := m.splitSizes(w)
		divider := m.verticalDivider(h)
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.renderPane(First, firstW, h),
			divider,
			m.renderPane(Second, secondW, h),
		)
	}

	firstH, secondH := m.splitSizes(h)
	divider := m.Styles.Divider.Render(strings.Repeat("─", w))
	return strings.Join([]string{
		m.renderPane(First, w, firstH),
		divider,
		m.renderPane(Second, w, secondH),
	}, "\n")
}

// Hotspots returns one rect per pane, ordered First then Second, relative
// to the widget's origin. The divider line is not clickable.
func (m Model) Hotspots() []mouse.Rect {
	w, h := m.area()
	if m.orientation == Horizontal {
		firstW, secondW := m.splitSizes(w)
		return []mouse.Rect{
			{X: 0, Y: 0, Width: firstW, Height: h},
			{X: firstW + 1, Y: 0, Width: secondW, Height: h},
		}
	}
	firstH, secondH := m.splitSizes(h)
	return []mouse.Rect{
		{X: 0, Y: 0, Width: w, Height: firstH},
		{X: 0, Y: firstH + 1, Width: w, Height: secondH},
	}
}

// splitSizes divides total cells between the panes, reserving one cell for
// the divider.
func (m Model) splitSizes(total int) (int, int) {
	usable := total - 1
	if usable < 2 {
		return 1, 1
	}
	first := int(float64(usable) * m.ratio)
	if first < 1 {
		first = 1
	}
	if first > usable-1 {
		first = usable - 1
	}
	return first, usable - first
}

// renderPane clips a pane's content to its cell budget.
func (m Model) renderPane(p Pane, w, h int) string {
	lines := strings.Split(m.content[p], "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	out := make([]string, h)
	for i := 0; i < h; i++ {
		if i < len(lines) {
			out[i] = textutil.PadRight(lines[i], w)
		} else {
			out[i] = strings.Repeat(" ", w)
		}
	}
	return strings.Join(out, "\n")
}

func (m Model) verticalDivider(h int) string {
	col := make([]string, h)
	for i := range col {
		col[i] = "│"
	}
	return m.Styles.Divider.Render(strings.Join(col, "\n"))
}

// area is the allotted size with sane fallbacks before the first resize.
func (m Model) area() (int, int) {
	w, h := m.Width(), m.Height()
	if w <= 0 {
		w = style.MinTerminalWidth
	}
	if h <= 0 {
		h = 10
	}
	return w, h
}
