// Package marquee provides a single-line ticker that scrolls text too wide
// for its area. Scrolling is display-width aware, so wide runes advance the
// same one cell per tick as everything else.
package marquee

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/loomui/loom/internal/textutil"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/widget"
)

// DefaultInterval is the tick period used by New.
const DefaultInterval = 150 * time.Millisecond

// DefaultGap is the blank run between the end of the text and its repeat.
const DefaultGap = 4

// TickMsg advances the marquee by one cell. Each marquee tags its ticks
// with its id so multiple marquees can run in one program.
type TickMsg struct {
	ID   int
	Time time.Time
}

// next id assigned by New; marquees are created from the UI goroutine.
var lastID int

// Model is the marquee widget.
type Model struct {
	widget.Base

	Interval time.Duration
	Styles   style.Styles

	id      int
	text    string
	offset  int
	gap     int
	running bool
}

// New returns a stopped marquee over the given text.
func New(text string) Model {
	lastID++
	return Model{
		Interval: DefaultInterval,
		Styles:   style.NewStyles(style.DefaultTheme()),
		id:       lastID,
		text:     text,
		gap:      DefaultGap,
	}
}

// SetText replaces the scrolled text and restarts the scroll position.
func (m *Model) SetText(text string) {
	m.text = text
	m.offset = 0
}

// Text returns the scrolled text.
func (m Model) Text() string {
	return m.text
}

// Running reports whether the marquee is scrolling.
func (m Model) Running() bool {
	return m.running
}

// Offset returns the current scroll offset in cells.
func (m Model) Offset() int {
	return m.offset
}

// Start begins scrolling and returns the first tick command.
func (m *Model) Start() tea.Cmd {
	if m.running {
		return nil
	}
	m.running = true
	return m.tick()
}

// Stop halts scrolling at the current offset.
func (m *Model) Stop() {
	m.running = false
}

// Update advances the scroll position on this marquee's ticks and schedules
// the next one.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tickMsg, ok := msg.(TickMsg)
	if !ok || tickMsg.ID != m.id || !m.running {
		return m, nil
	}
	m.offset = (m.offset + 1) % m.cycle()
	return m, m.tick()
}

// View renders the visible window of the text. Text narrower than the
// widget is padded, never scrolled.
func (m Model) View() string {
	width := m.viewWidth()
	if runewidth.StringWidth(m.text) <= width {
		return m.Styles.Text.Render(textutil.PadRight(m.text, width))
	}
	// scroll over text + gap + text so the repeat chases the tail
	loop := m.text + spaces(m.gap) + m.text
	return m.Styles.Text.Render(textutil.Window(loop, m.offset, width))
}

// cycle is the offset period: the text width plus the gap.
func (m Model) cycle() int {
	c := runewidth.StringWidth(m.text) + m.gap
	if c < 1 {
		return 1
	}
	return c
}

func (m Model) tick() tea.Cmd {
	id := m.id
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

func (m Model) viewWidth() int {
	if m.Width() <= 0 {
		return style.MinTerminalWidth
	}
	return m.Width()
}

func spaces(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = ' '
	}
	return string(s)
}
