package splitpane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResizeClampsRatio(t *testing.T) {
	m := New(Horizontal)
	m.Focus()

	for i := 0; i < 50; i++ {
		m, _ = m.Update(runeKey(">"))
	}
	if m.Ratio() > 0.9 {
		t.Fatalf("Ratio() = %v, want clamp at 0.9", m.Ratio())
	}

	for i := 0; i < 50; i++ {
		m, _ = m.Update(runeKey("<"))
	}
	if m.Ratio() < 0.1 {
		t.Fatalf("Ratio() = %v, want clamp at 0.1", m.Ratio())
	}
}

func TestSwitchPane(t *testing.T) {
	m := New(Horizontal)
	m.Focus()

	if m.ActivePane() != First {
		t.Fatalf("ActivePane() = %v, want First", m.ActivePane())
	}
	m, _ = m.Update(runeKey("o"))
	if m.ActivePane() != Second {
		t.Fatalf("ActivePane() = %v after switch, want Second", m.ActivePane())
	}
	m, _ = m.Update(runeKey("o"))
	if m.ActivePane() != First {
		t.Fatalf("ActivePane() = %v after second switch, want First", m.ActivePane())
	}
}

func TestHorizontalLayout(t *testing.T) {
	m := New(Horizontal)
	m.SetSize(41, 4)
	m.SetContent(First, "left")
	m.SetContent(Second, "right")

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 4 {
		t.Fatalf("view has %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "left") || !strings.Contains(lines[0], "right") {
		t.Fatalf("first line missing pane content: %q", lines[0])
	}
	if !strings.Contains(lines[0], "│") {
		t.Fatalf("first line missing divider: %q", lines[0])
	}
}

func TestVerticalLayout(t *testing.T) {
	m := New(Vertical)
	m.SetSize(20, 7)
	m.SetContent(First, "top")
	m.SetContent(Second, "bottom")

	view := m.View()
	if !strings.Contains(view, "top") || !strings.Contains(view, "bottom") {
		t.Fatal("view missing pane content")
	}
	if !strings.Contains(view, "─") {
		t.Fatal("view missing horizontal divider")
	}
	// top content appears before the divider, bottom after
	if strings.Index(view, "top") > strings.Index(view, "─") {
		t.Fatal("first pane rendered below the divider")
	}
	if strings.Index(view, "bottom") < strings.Index(view, "─") {
		t.Fatal("second pane rendered above the divider")
	}
}

func TestHotspots_DividerNotClickable(t *testing.T) {
	m := New(Horizontal)
	m.SetSize(41, 4)

	rects := m.Hotspots()
	if len(rects) != 2 {
		t.Fatalf("Hotspots() = %d rects, want 2", len(rects))
	}
	// the two panes plus the divider column tile the width exactly
	if rects[0].Width+1+rects[1].Width != 41 {
		t.Fatalf("panes %d + divider + %d != width 41", rects[0].Width, rects[1].Width)
	}
	// divider column between them is covered by neither
	dividerX := rects[0].Width
	for _, r := range rects {
		if r.Contains(dividerX, 0) {
			t.Fatalf("divider column %d is inside pane rect %+v", dividerX, r)
		}
	}
}

func TestRatioAffectsSplit(t *testing.T) {
	m := New(Horizontal)
	m.SetSize(41, 2)

	m.SetRatio(0.25)
	rects := m.Hotspots()
	if rects[0].Width >= rects[1].Width {
		t.Fatalf("first pane %d should be narrower than second %d at ratio 0.25",
			rects[0].Width, rects[1].Width)
	}
}

func TestBlurredSplitIgnoresKeys(t *testing.T) {
	m := New(Horizontal)
	before := m.Ratio()
	m, _ = m.Update(runeKey(">"))
	if m.Ratio() != before {
		t.Fatal("blurred split pane resized")
	}
}
