package marquee

import (
	"strings"
	"testing"
	"time"
)

func tick(m Model) Model {
	m, _ = m.Update(TickMsg{ID: m.id, Time: time.Now()})
	return m
}

func TestShortTextNeverScrolls(t *testing.T) {
	m := New("hi")
	m.SetSize(10, 1)
	_ = m.Start()

	before := m.View()
	m = tick(m)
	if m.View() != before {
		t.Fatal("short text changed between ticks")
	}
	if !strings.HasPrefix(m.View(), "hi") {
		t.Fatalf("View() = %q, want text at origin", m.View())
	}
}

func TestScrollAdvancesOneCellPerTick(t *testing.T) {
	m := New("abcdefghij")
	m.SetSize(4, 1)
	_ = m.Start()

	if m.View() != "abcd" {
		t.Fatalf("View() = %q at offset 0, want \"abcd\"", m.View())
	}
	m = tick(m)
	if m.View() != "bcde" {
		t.Fatalf("View() = %q after one tick, want \"bcde\"", m.View())
	}
	m = tick(m)
	if m.View() != "cdef" {
		t.Fatalf("View() = %q after two ticks, want \"cdef\"", m.View())
	}
}

func TestOffsetWrapsAfterFullCycle(t *testing.T) {
	m := New("abcde")
	m.SetSize(3, 1)
	_ = m.Start()

	cycle := m.cycle() // text width + gap
	for i := 0; i < cycle; i++ {
		m = tick(m)
	}
	if m.Offset() != 0 {
		t.Fatalf("Offset() = %d after %d ticks, want wrap to 0", m.Offset(), cycle)
	}
	if m.View() != "abc" {
		t.Fatalf("View() = %q after full cycle, want \"abc\"", m.View())
	}
}

func TestStoppedMarqueeIgnoresTicks(t *testing.T) {
	m := New("abcdefghij")
	m.SetSize(4, 1)
	_ = m.Start()
	m = tick(m)
	m.Stop()

	offset := m.Offset()
	m = tick(m)
	if m.Offset() != offset {
		t.Fatalf("Offset() = %d after tick while stopped, want %d", m.Offset(), offset)
	}
}

func TestForeignTicksIgnored(t *testing.T) {
	a := New("abcdefghij")
	a.SetSize(4, 1)
	b := New("qrstuvwxyz")
	b.SetSize(4, 1)
	_ = a.Start()
	_ = b.Start()

	// a's tick must not advance b
	b, _ = b.Update(TickMsg{ID: a.id, Time: time.Now()})
	if b.Offset() != 0 {
		t.Fatalf("marquee advanced on a foreign tick: offset %d", b.Offset())
	}
}

func TestStartIsIdempotent(t *testing.T) {
	m := New("abcdefghij")
	if cmd := m.Start(); cmd == nil {
		t.Fatal("first Start() returned nil command")
	}
	if cmd := m.Start(); cmd != nil {
		t.Fatal("second Start() should not schedule another tick loop")
	}
}

func TestSetTextRestartsScroll(t *testing.T) {
	m := New("abcdefghij")
	m.SetSize(4, 1)
	_ = m.Start()
	m = tick(m)
	m = tick(m)

	m.SetText("0123456789")
	if m.Offset() != 0 {
		t.Fatalf("Offset() = %d after SetText, want 0", m.Offset())
	}
	if m.View() != "0123" {
		t.Fatalf("View() = %q after SetText, want \"0123\"", m.View())
	}
}

func TestViewIsExactlyWidgetWidth(t *testing.T) {
	m := New("the quick brown fox")
	m.SetSize(7, 1)
	_ = m.Start()
	for i := 0; i < 30; i++ {
		if got := len([]rune(m.View())); got != 7 {
			t.Fatalf("tick %d: view width %d, want 7", i, got)
		}
		m = tick(m)
	}
}
