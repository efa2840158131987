package gallery

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loomui/loom/dialog"
	"github.com/loomui/loom/menu"
	"github.com/loomui/loom/style"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(style.DefaultTheme())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func drive(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestTabKeyCyclesFormWidgets(t *testing.T) {
	m := newTestModel(t)

	// move to the form tab, which has two widgets in its focus order
	m, _ = drive(t, m, keyRune(']'), keyRune(']'))
	if got := m.tabs.Active(); got != 2 {
		t.Fatalf("active tab = %d, want 2", got)
	}
	if got := m.focusName(); got != string(widgetInput) {
		t.Fatalf("initial focus = %q, want the input field", got)
	}

	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.focusName(); got != string(widgetButtons) {
		t.Fatalf("focus after tab = %q, want the button row", got)
	}

	// wraps back around
	m, _ = drive(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.focusName(); got != string(widgetInput) {
		t.Fatalf("focus after second tab = %q, want wrap to the input field", got)
	}
}

func TestSwitchingTabsRebuildsFocusOrder(t *testing.T) {
	m := newTestModel(t)

	m, _ = drive(t, m, keyRune(']'))
	if got := m.focusName(); got != string(widgetMenu) {
		t.Fatalf("focus on menu tab = %q, want the menu", got)
	}
	if got := m.order.Len(); got != 1 {
		t.Fatalf("focus order has %d widgets, want 1", got)
	}

	m, _ = drive(t, m, keyRune('['))
	if got := m.focusName(); got != string(widgetAccordion) {
		t.Fatalf("focus back on first tab = %q, want the accordion", got)
	}
}

func TestClickActivatesTab(t *testing.T) {
	m := newTestModel(t)
	_ = m.View() // registers regions

	r := m.tabs.Hotspots()[3]
	m, _ = drive(t, m, leftClick(r.X+1, headerRows))

	if got := m.tabs.Active(); got != 3 {
		t.Fatalf("active tab after click = %d, want 3", got)
	}
	if got := m.focusName(); got != string(widgetSplit) {
		t.Fatalf("focus after tab click = %q, want the split pane", got)
	}
}

func TestClickTogglesAccordionSection(t *testing.T) {
	m := newTestModel(t)
	_ = m.View()

	header := m.acc.Hotspots()[1].Offset(0, headerRows+tabRows)
	m, _ = drive(t, m, leftClick(header.X, header.Y))

	s, ok := m.acc.Section(1)
	if !ok || !s.Expanded {
		t.Fatal("clicking the second header did not expand the section")
	}
	if m.acc.Cursor() != 1 {
		t.Fatalf("accordion cursor = %d after click, want 1", m.acc.Cursor())
	}
}

func TestClickChoosesMenuItem(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, keyRune(']'))
	_ = m.View()

	row := m.menu.Hotspots()[0].Offset(0, headerRows+tabRows)
	m, cmd := drive(t, m, leftClick(row.X, row.Y))
	if cmd == nil {
		t.Fatal("clicking a menu row produced no command")
	}
	msg, ok := cmd().(menu.ChooseMsg)
	if !ok {
		t.Fatalf("command produced %T, want menu.ChooseMsg", cmd())
	}
	if msg.Index != 0 {
		t.Fatalf("ChooseMsg.Index = %d, want 0", msg.Index)
	}
	if got := m.focusName(); got != string(widgetMenu) {
		t.Fatalf("focus after menu click = %q, want the menu", got)
	}
}

func TestClickOutsideEveryRegionIsIgnored(t *testing.T) {
	m := newTestModel(t)
	_ = m.View()

	before := m.tabs.Active()
	m, cmd := drive(t, m, leftClick(79, 23))
	if cmd != nil {
		t.Fatal("missed click produced a command")
	}
	if m.tabs.Active() != before {
		t.Fatal("missed click changed the active tab")
	}
}

func TestQuitDialogRoundTrip(t *testing.T) {
	m := newTestModel(t)

	m, _ = drive(t, m, keyRune('q'))
	if !m.dialogOpen {
		t.Fatal("q did not open the quit dialog")
	}

	// cancel: esc produces a canceled result, which closes the dialog
	m, cmd := drive(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc in the dialog produced no command")
	}
	m, cmd = drive(t, m, cmd())
	if m.dialogOpen {
		t.Fatal("canceled dialog still open")
	}
	if cmd != nil {
		t.Fatal("canceled dialog should not quit")
	}

	// confirm: the Quit button result quits the program
	m, _ = drive(t, m, keyRune('q'))
	m, cmd = drive(t, m, dialog.ResultMsg{ID: quitDialogID, Button: "Quit"})
	if cmd == nil {
		t.Fatal("quit result produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit result produced %T, want tea.QuitMsg", cmd())
	}
}

func TestMenuFilterSwallowsApplicationKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, keyRune(']'), keyRune('/'))

	if !m.menu.Filtering() {
		t.Fatal("/ did not start menu filtering")
	}

	// q is filter text now, not the quit shortcut
	m, _ = drive(t, m, keyRune('q'))
	if m.dialogOpen {
		t.Fatal("q opened the quit dialog while filtering")
	}
	if got := m.menu.Filter(); got != "q" {
		t.Fatalf("menu filter = %q, want %q", got, "q")
	}
}

func TestSubmitReportsFieldValue(t *testing.T) {
	m := newTestModel(t)
	m, _ = drive(t, m, keyRune(']'), keyRune(']'))

	for _, r := range "ada" {
		m, _ = drive(t, m, keyRune(r))
	}
	if got := m.field.Value(); got != "ada" {
		t.Fatalf("field value = %q, want %q", got, "ada")
	}

	// tab over to the buttons and press Submit
	m, cmd := drive(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter on the button row produced no command")
	}
	m, _ = drive(t, m, cmd())
	if m.status != "form: hello, ada" {
		t.Fatalf("status = %q after submit", m.status)
	}
}

func TestRenderPassRebuildsRegions(t *testing.T) {
	m := newTestModel(t)

	_ = m.View()
	first := m.regions.Len()
	if first == 0 {
		t.Fatal("render pass registered no regions")
	}

	_ = m.View()
	if m.regions.Len() != first {
		t.Fatalf("second render registered %d regions, want %d", m.regions.Len(), first)
	}

	// a different tab contributes a different set of regions
	m, _ = drive(t, m, keyRune(']'), keyRune(']'))
	_ = m.View()
	if m.regions.Len() == 0 {
		t.Fatal("form tab registered no regions")
	}
}
