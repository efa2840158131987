package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomui/loom/button"
)

// drive feeds a message through Update and, when a command results, runs it
// and feeds the produced message back in, the way the program loop would.
func drive(t *testing.T, m Model, msg tea.Msg) (Model, tea.Msg) {
	t.Helper()
	m, cmd := m.Update(msg)
	if cmd == nil {
		return m, nil
	}
	out := cmd()
	if _, ok := out.(button.PressMsg); ok {
		return drive(t, m, out)
	}
	return m, out
}

func TestConfirm_ButtonRowFocusedInitially(t *testing.T) {
	d := Confirm("quit", "Quit?", "Unsaved changes will be lost.", "Quit", "Cancel")
	if f, ok := d.FocusedField(); !ok || f != FieldButtons {
		t.Fatalf("FocusedField() = %v, %v, want FieldButtons", f, ok)
	}
}

func TestConfirm_EnterEmitsResult(t *testing.T) {
	d := Confirm("quit", "Quit?", "Sure?", "Quit", "Cancel")

	d, msg := drive(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	res, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("got %T, want ResultMsg", msg)
	}
	if res.ID != "quit" || res.Button != "Quit" || res.Canceled {
		t.Fatalf("ResultMsg = %+v, want {ID: quit, Button: Quit}", res)
	}
	_ = d
}

func TestConfirm_ArrowThenEnterPicksSecondButton(t *testing.T) {
	d := Confirm("quit", "Quit?", "Sure?", "Quit", "Cancel")

	d, _ = drive(t, d, tea.KeyMsg{Type: tea.KeyRight})
	d, msg := drive(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	res := msg.(ResultMsg)
	if res.Button != "Cancel" {
		t.Fatalf("ResultMsg.Button = %q, want Cancel", res.Button)
	}
	_ = d
}

func TestConfirm_EscCancels(t *testing.T) {
	d := Confirm("quit", "Quit?", "Sure?", "Quit", "Cancel")

	d, msg := drive(t, d, tea.KeyMsg{Type: tea.KeyEscape})
	res, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("got %T, want ResultMsg", msg)
	}
	if !res.Canceled || res.Button != "" {
		t.Fatalf("ResultMsg = %+v, want canceled", res)
	}
	_ = d
}

func TestPrompt_TabOrderAndValue(t *testing.T) {
	d := Prompt("rename", "Rename", "", "New name", "widget.go", "OK", "Cancel")

	if f, _ := d.FocusedField(); f != FieldInput {
		t.Fatalf("initial field = %v, want FieldInput", f)
	}

	// type into the field
	for _, r := range "loom" {
		d, _ = drive(t, d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if d.Value() != "loom" {
		t.Fatalf("Value() = %q, want \"loom\"", d.Value())
	}

	// tab to the buttons, wrap back to the field
	d, _ = drive(t, d, tea.KeyMsg{Type: tea.KeyTab})
	if f, _ := d.FocusedField(); f != FieldButtons {
		t.Fatalf("after tab field = %v, want FieldButtons", f)
	}
	d, _ = drive(t, d, tea.KeyMsg{Type: tea.KeyTab})
	if f, _ := d.FocusedField(); f != FieldInput {
		t.Fatalf("after second tab field = %v, want wrap to FieldInput", f)
	}
}

func TestPrompt_EnterInFieldMovesToButtons(t *testing.T) {
	d := Prompt("rename", "Rename", "", "Name", "", "OK")

	d, msg := drive(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	if msg != nil {
		t.Fatalf("enter in field produced %T, want focus move only", msg)
	}
	if f, _ := d.FocusedField(); f != FieldButtons {
		t.Fatalf("field = %v after enter, want FieldButtons", f)
	}

	// a second enter presses OK and carries the (empty) value
	d, msg = drive(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	res := msg.(ResultMsg)
	if res.Button != "OK" || res.Value != "" {
		t.Fatalf("ResultMsg = %+v, want OK press", res)
	}
	_ = d
}

func TestPrompt_ResultCarriesValue(t *testing.T) {
	d := Prompt("rename", "Rename", "", "Name", "", "OK")
	for _, r := range "ab" {
		d, _ = drive(t, d, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	d, _ = drive(t, d, tea.KeyMsg{Type: tea.KeyEnter}) // to buttons
	d, msg := drive(t, d, tea.KeyMsg{Type: tea.KeyEnter})
	res := msg.(ResultMsg)
	if res.Value != "ab" {
		t.Fatalf("ResultMsg.Value = %q, want \"ab\"", res.Value)
	}
	_ = d
}

func TestHandleClick_OnButton(t *testing.T) {
	d := Confirm("quit", "Quit?", "Sure?", "Quit", "Cancel")
	// render to build the regions, placed on a known screen
	_ = d.Place(80, 24)

	// walk the registry to find the second button's screen position instead
	// of hard-coding layout math
	regions := d.regions.Regions()
	if len(regions) != 2 {
		t.Fatalf("dialog registered %d regions, want 2", len(regions))
	}
	target := regions[1].Rect
	cmd, ok := d.HandleClick(target.X+d.originX, target.Y+d.originY)
	if !ok || cmd == nil {
		t.Fatal("click on second button missed")
	}
	press := cmd().(button.PressMsg)
	if press.Index != 1 || press.Label != "Cancel" {
		t.Fatalf("PressMsg = %+v, want {Index: 1, Label: Cancel}", press)
	}
}

func TestHandleClick_OutsideMisses(t *testing.T) {
	d := Confirm("quit", "Quit?", "Sure?", "OK")
	_ = d.Place(80, 24)

	if _, ok := d.HandleClick(0, 0); ok {
		t.Fatal("click at screen origin should miss the centered dialog")
	}
}

func TestView_ContainsParts(t *testing.T) {
	d := Confirm("quit", "Quit?", "Unsaved changes will be lost.", "Quit", "Cancel")
	view := d.View()
	for _, want := range []string{"Quit?", "Unsaved changes", "Quit", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}
