// Package input provides a labeled text field with inline validation,
// wrapping bubbles/textinput.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// ValidateFunc checks a field value, returning nil when it is acceptable.
type ValidateFunc func(string) error

// Model is the labeled input widget.
type Model struct {
	widget.Base

	Label    string
	Styles   style.Styles
	Validate ValidateFunc

	text textinput.Model
	err  error
}

// New returns an input with the given label and placeholder.
func New(label, placeholder string) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 30
	return Model{
		Label:  label,
		Styles: style.NewStyles(style.DefaultTheme()),
		text:   ti,
	}
}

// Value returns the current field value.
func (m Model) Value() string {
	return m.text.Value()
}

// SetValue replaces the field value and re-validates.
func (m *Model) SetValue(v string) {
	m.text.SetValue(v)
	m.validate()
}

// Err returns the current validation error, or nil.
func (m Model) Err() error {
	return m.err
}

// Focus gives the field keyboard focus and shows the cursor.
func (m *Model) Focus() {
	m.Base.Focus()
	m.text.Focus()
}

// Blur removes keyboard focus and re-validates the final value.
func (m *Model) Blur() {
	m.Base.Blur()
	m.text.Blur()
	m.validate()
}

// Update forwards key events to the underlying text input while focused and
// re-validates on every change.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	before := m.text.Value()
	m.text, cmd = m.text.Update(msg)
	if m.text.Value() != before {
		m.validate()
	}
	return m, cmd
}

// View renders the label, the field, and any validation error below it.
func (m Model) View() string {
	label := m.Styles.Muted.Render(m.Label)
	if m.Focused() {
		label = m.Styles.Title.Render(m.Label)
	}
	out := label + "\n" + m.text.View()
	if m.err != nil {
		out += "\n" + m.Styles.Error.Render("✗ " + m.err.Error())
	}
	return out
}

// Hotspots returns the field row as a single clickable rect, relative to
// the widget's origin. The label row above it is not clickable.
func (m Model) Hotspots() []mouse.Rect {
	return []mouse.Rect{{Y: 1, Width: m.text.Width + 2, Height: 1}}
}

// CursorBlink returns the command that drives the text cursor blink.
func (m Model) CursorBlink() tea.Cmd {
	return textinput.Blink
}

func (m *Model) validate() {
	if m.Validate == nil {
		m.err = nil
		return
	}
	m.err = m.Validate(m.text.Value())
}
