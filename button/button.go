// Package button provides a push button widget and a horizontal button
// group with cyclic keyboard navigation.
package button

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// PressMsg is emitted when a button is activated, by keyboard or by a
// container dispatching a click. Index is the button's position within its
// Group, or -1 for a standalone button.
type PressMsg struct {
	Index int
	Label string
}

// KeyMap defines the key bindings for a standalone button.
type KeyMap struct {
	Press key.Binding
}

// DefaultKeyMap returns the default button key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
	}
}

// Model is a single push button.
type Model struct {
	widget.Base

	Label  string
	KeyMap KeyMap
	Styles style.Styles
}

// New returns a button with the given label and default styling.
func New(label string) Model {
	return Model{
		Label:  label,
		KeyMap: DefaultKeyMap(),
		Styles: style.NewStyles(style.DefaultTheme()),
	}
}

// Press returns the command that emits this button's PressMsg.
func (m Model) Press() tea.Cmd {
	label := m.Label
	return func() tea.Msg {
		return PressMsg{Index: -1, Label: label}
	}
}

// Update handles key events. Only a focused button reacts.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.KeyMap.Press) {
			return m, m.Press()
		}
	}
	return m, nil
}

// View renders the button.
func (m Model) View() string {
	if m.Focused() {
		return m.Styles.FocusedButton.Render(m.Label)
	}
	return m.Styles.Button.Render(m.Label)
}

// Hotspot returns the button's clickable rect relative to its own origin.
func (m Model) Hotspot() mouse.Rect {
	view := m.View()
	return mouse.Rect{
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
	}
}

// Hotspots implements widget.Clickable.
func (m Model) Hotspots() []mouse.Rect {
	return []mouse.Rect{m.Hotspot()}
}
