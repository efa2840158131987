package button

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomui/loom/focus"
	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/widget"
)

// GroupKeyMap defines the key bindings for navigating a button group.
type GroupKeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
}

// DefaultGroupKeyMap returns the default group key bindings.
func DefaultGroupKeyMap() GroupKeyMap {
	return GroupKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous button"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
	}
}

// Group is a horizontal row of buttons navigated cyclically with the arrow
// keys. Exactly one button is highlighted at a time; activating it emits a
// PressMsg carrying its index and label.
type Group struct {
	widget.Base

	KeyMap GroupKeyMap
	Gap    int // cells between buttons

	buttons []Model
	order   *focus.Manager[int]
}

// NewGroup builds a group from button labels, highlighting the first.
func NewGroup(labels ...string) Group {
	g := Group{
		KeyMap: DefaultGroupKeyMap(),
		Gap:    2,
		order:  focus.NewWithCapacity[int](len(labels)),
	}
	for i, label := range labels {
		g.buttons = append(g.buttons, New(label))
		g.order.Register(i)
	}
	g.syncHighlight()
	return g
}

// Len returns the number of buttons.
func (g Group) Len() int {
	return len(g.buttons)
}

// Selected returns the index of the highlighted button, or -1 when the
// group is empty.
func (g Group) Selected() int {
	i, ok := g.order.CurrentIndex()
	if !ok {
		return -1
	}
	return i
}

// Select highlights the button at index. Out-of-range indices are ignored.
func (g *Group) Select(index int) {
	g.order.SetIndex(index)
	g.syncHighlight()
}

// Activate returns the command emitting PressMsg for the button at index,
// or nil when out of range. Containers call this when a click lands on a
// button hotspot.
func (g *Group) Activate(index int) tea.Cmd {
	if index < 0 || index >= len(g.buttons) {
		return nil
	}
	g.Select(index)
	label := g.buttons[index].Label
	return func() tea.Msg {
		return PressMsg{Index: index, Label: label}
	}
}

// Update handles key events. Only a focused group reacts.
func (g Group) Update(msg tea.Msg) (Group, tea.Cmd) {
	if !g.Focused() || len(g.buttons) == 0 {
		return g, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch {
	case key.Matches(keyMsg, g.KeyMap.Next):
		g.order.Next()
		g.syncHighlight()
	case key.Matches(keyMsg, g.KeyMap.Prev):
		g.order.Prev()
		g.syncHighlight()
	case key.Matches(keyMsg, g.KeyMap.Activate):
		return g, g.Activate(g.Selected())
	}
	return g, nil
}

// View renders the buttons in a row.
func (g Group) View() string {
	if len(g.buttons) == 0 {
		return ""
	}
	views := make([]string, 0, len(g.buttons)*2-1)
	gap := strings.Repeat(" ", g.Gap)
	for i, b := range g.buttons {
		if i > 0 {
			views = append(views, gap)
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// Hotspots returns one rect per button, relative to the group's origin and
// ordered by button index.
func (g Group) Hotspots() []mouse.Rect {
	rects := make([]mouse.Rect, 0, len(g.buttons))
	x := 0
	for i, b := range g.buttons {
		if i > 0 {
			x += g.Gap
		}
		w := lipgloss.Width(b.View())
		rects = append(rects, mouse.Rect{X: x, Width: w, Height: 1})
		x += w
	}
	return rects
}

// syncHighlight pushes the group's focus state down onto the buttons: the
// highlighted button renders focused only while the group itself is focused.
func (g *Group) syncHighlight() {
	selected := g.Selected()
	for i := range g.buttons {
		if i == selected && g.Focused() {
			g.buttons[i].Focus()
		} else {
			g.buttons[i].Blur()
		}
	}
}

// Focus marks the group as focused and highlights the selected button.
func (g *Group) Focus() {
	g.Base.Focus()
	g.syncHighlight()
}

// Blur removes focus from the group and its buttons.
func (g *Group) Blur() {
	g.Base.Blur()
	g.syncHighlight()
}
