// Package dialog provides modal confirm and prompt boxes. A dialog is the
// reference composition of the library's two coordination primitives: it
// drives its fields from a focus.Manager and resolves clicks on its buttons
// through its own mouse.Registry, rebuilt every render pass.
//
// Dialogs communicate through messages. Route every message to Update while
// the dialog is open; when the user commits or cancels, Update returns a
// command producing a ResultMsg:
//
//	case dialog.ResultMsg:
//	    if msg.ID == "quit-confirm" && msg.Button == "Quit" {
//	        return m, tea.Quit
//	    }
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomui/loom/button"
	"github.com/loomui/loom/focus"
	"github.com/loomui/loom/input"
	"github.com/loomui/loom/internal/textutil"
	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// Field identifies a focusable area inside the dialog.
type Field int

const (
	// FieldInput is the text field of a prompt dialog.
	FieldInput Field = iota
	// FieldButtons is the button row.
	FieldButtons
)

// ResultMsg is emitted when the dialog is committed or canceled.
type ResultMsg struct {
	ID       string // dialog identifier passed at construction
	Button   string // label of the pressed button; empty when canceled
	Value    string // text field value for prompt dialogs
	Canceled bool
}

// KeyMap defines the key bindings for moving between dialog fields.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default dialog key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model is the dialog widget.
type Model struct {
	widget.Base

	ID     string
	Title  string
	Body   string
	KeyMap KeyMap
	Styles style.Styles

	hasInput bool
	field    input.Model
	buttons  button.Group

	order   *focus.Manager[Field]
	regions *mouse.Registry[int] // button index, rebuilt each View

	boxWidth int
	originX  int // top-left of the box in screen cells, set by Place
	originY  int
}

// Confirm builds a dialog with a body and a row of buttons.
func Confirm(id, title, body string, buttonLabels ...string) Model {
	m := Model{
		ID:       id,
		Title:    title,
		Body:     body,
		KeyMap:   DefaultKeyMap(),
		Styles:   style.NewStyles(style.DefaultTheme()),
		buttons:  button.NewGroup(buttonLabels...),
		order:    focus.New[Field](),
		regions:  mouse.NewRegistry[int](),
		boxWidth: 50,
	}
	m.order.Register(FieldButtons)
	m.syncFocus()
	return m
}

// Prompt builds a dialog with a labeled text field above the buttons.
func Prompt(id, title, body, fieldLabel, placeholder string, buttonLabels ...string) Model {
	m := Confirm(id, title, body, buttonLabels...)
	m.hasInput = true
	m.field = input.New(fieldLabel, placeholder)
	// the field comes first in tab order
	m.order.Clear()
	m.order.RegisterAll(FieldInput, FieldButtons)
	m.syncFocus()
	return m
}

// Value returns the prompt field's current value.
func (m Model) Value() string {
	if !m.hasInput {
		return ""
	}
	return m.field.Value()
}

// SetWidth sets the outer width of the dialog box.
func (m *Model) SetWidth(w int) {
	if w > 10 {
		m.boxWidth = w
	}
}

// Update handles key events and converts button presses into results.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case button.PressMsg:
		// emitted by our own button row; surface it as a dialog result
		return m, m.result(msg.Label, false)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.KeyMap.Cancel):
			return m, m.result("", true)
		case key.Matches(msg, m.KeyMap.NextField):
			m.order.Next()
			m.syncFocus()
			return m, nil
		case key.Matches(msg, m.KeyMap.PrevField):
			m.order.Prev()
			m.syncFocus()
			return m, nil
		}

		cur, ok := m.order.Current()
		if !ok {
			return m, nil
		}
		switch cur {
		case FieldInput:
			if msg.Type == tea.KeyEnter {
				// enter moves on to the buttons
				m.order.Set(FieldButtons)
				m.syncFocus()
				return m, nil
			}
			var cmd tea.Cmd
			m.field, cmd = m.field.Update(msg)
			return m, cmd
		case FieldButtons:
			var cmd tea.Cmd
			m.buttons, cmd = m.buttons.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// HandleClick resolves a click at screen coordinates against the dialog's
// regions. It reports false when the click missed every clickable area, so
// the container can treat outside clicks as dismissal if it wants to.
func (m *Model) HandleClick(x, y int) (tea.Cmd, bool) {
	idx, ok := m.regions.Hit(x-m.originX, y-m.originY)
	if !ok {
		return nil, false
	}
	m.order.Set(FieldButtons)
	m.syncFocus()
	return m.buttons.Activate(idx), true
}

// View renders the dialog box and rebuilds its click regions.
func (m Model) View() string {
	innerWidth := m.boxWidth - 6 // border and padding on both sides

	var lines []string
	lines = append(lines, m.Styles.Title.Render(textutil.Truncate(m.Title, innerWidth, "…")))
	lines = append(lines, "")
	if m.Body != "" {
		for _, l := range textutil.Wrap(m.Body, innerWidth) {
			lines = append(lines, m.Styles.Text.Render(l))
		}
		lines = append(lines, "")
	}

	if m.hasInput {
		lines = append(lines, strings.Split(m.field.View(), "\n")...)
		lines = append(lines, "")
	}

	buttonRow := len(lines)
	lines = append(lines, m.buttons.View())

	// Rebuild regions to match what was just laid out. Content starts one
	// cell in from the border plus two cells of padding.
	const contentX, contentY = 3, 1
	m.regions.Clear()
	for i, r := range m.buttons.Hotspots() {
		m.regions.Register(r.Offset(contentX, contentY+buttonRow), i)
	}

	box := m.Styles.FocusedBorder.
		Width(m.boxWidth - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
	return box
}

// Place renders the dialog centered on a screen of the given size and
// records the box origin so HandleClick can translate coordinates.
func (m *Model) Place(screenW, screenH int) string {
	box := m.View()
	w := lipgloss.Width(box)
	h := lipgloss.Height(box)
	m.originX = (screenW - w) / 2
	if m.originX < 0 {
		m.originX = 0
	}
	m.originY = (screenH - h) / 2
	if m.originY < 0 {
		m.originY = 0
	}
	return lipgloss.Place(screenW, screenH, lipgloss.Center, lipgloss.Center, box)
}

// FocusedField reports which dialog field holds focus.
func (m Model) FocusedField() (Field, bool) {
	return m.order.Current()
}

// result builds the command emitting this dialog's ResultMsg.
func (m Model) result(buttonLabel string, canceled bool) tea.Cmd {
	msg := ResultMsg{
		ID:       m.ID,
		Button:   buttonLabel,
		Value:    m.Value(),
		Canceled: canceled,
	}
	return func() tea.Msg {
		return msg
	}
}

// syncFocus pushes the focus manager's state down onto the fields.
func (m *Model) syncFocus() {
	cur, ok := m.order.Current()
	if m.hasInput {
		if ok && cur == FieldInput {
			m.field.Focus()
		} else {
			m.field.Blur()
		}
	}
	if ok && cur == FieldButtons {
		m.buttons.Focus()
	} else {
		m.buttons.Blur()
	}
}
