// Package paragraph provides a word-wrapped, scrollable text block built on
// bubbles/viewport. Wrapping is ANSI-aware, so styled text reflows without
// splitting escape sequences.
package paragraph

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomui/loom/internal/textutil"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// Model is the paragraph widget.
type Model struct {
	widget.Base

	Styles style.Styles

	vp      viewport.Model
	content string
}

// New returns a paragraph over the given text. Size it with SetSize before
// rendering.
func New(content string) Model {
	return Model{
		Styles:  style.NewStyles(style.DefaultTheme()),
		vp:      viewport.New(style.MinTerminalWidth, 10),
		content: content,
	}
}

// SetContent replaces the text and re-wraps it to the current width.
func (m *Model) SetContent(content string) {
	m.content = content
	m.reflow()
}

// SetSize reflows the text to the new width and adjusts the scroll window.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.vp.Width = width
	m.vp.Height = height
	m.reflow()
}

// Update forwards scroll keys to the viewport while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View renders the visible window of the wrapped text.
func (m Model) View() string {
	return m.vp.View()
}

// LineCount returns the number of wrapped lines at the current width.
func (m Model) LineCount() int {
	return m.vp.TotalLineCount()
}

// ScrollPercent reports how far down the view is scrolled, in [0, 1].
func (m Model) ScrollPercent() float64 {
	return m.vp.ScrollPercent()
}

// AtBottom reports whether the view is scrolled to the end.
func (m Model) AtBottom() bool {
	return m.vp.AtBottom()
}

// GotoTop scrolls to the beginning.
func (m *Model) GotoTop() {
	m.vp.GotoTop()
}

// GotoBottom scrolls to the end.
func (m *Model) GotoBottom() {
	m.vp.GotoBottom()
}

func (m *Model) reflow() {
	width := m.vp.Width
	if width <= 0 {
		width = style.MinTerminalWidth
	}
	m.vp.SetContent(strings.Join(textutil.Wrap(m.content, width), "\n"))
}
