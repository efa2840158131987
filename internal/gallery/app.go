package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/loomui/loom/accordion"
	"github.com/loomui/loom/button"
	"github.com/loomui/loom/dialog"
	"github.com/loomui/loom/focus"
	"github.com/loomui/loom/input"
	"github.com/loomui/loom/internal/logging"
	"github.com/loomui/loom/marquee"
	"github.com/loomui/loom/menu"
	"github.com/loomui/loom/mouse"
	"github.com/loomui/loom/paragraph"
	"github.com/loomui/loom/splitpane"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/tabs"
	"github.com/loomui/loom/widget"
)

// widgetID names a widget in the focus order and in click actions.
type widgetID string

const (
	widgetTabs      widgetID = "tabs"
	widgetAccordion widgetID = "accordion"
	widgetMenu      widgetID = "menu"
	widgetInput     widgetID = "input"
	widgetButtons   widgetID = "buttons"
	widgetSplit     widgetID = "split"
	widgetMarquee   widgetID = "marquee"
	widgetParagraph widgetID = "paragraph"
)

// action is the payload attached to every click region: which widget was
// hit and which of its hotspots.
type action struct {
	target widgetID
	index  int
}

// tabWidgets lists the focusable widgets of each tab, in tab order.
var tabWidgets = [][]widgetID{
	{widgetAccordion},
	{widgetMenu},
	{widgetInput, widgetButtons},
	{widgetSplit},
	{widgetParagraph},
}

const quitDialogID = "quit-confirm"

// Rows above the tab bar (title, blank) and above the page (bar, rule).
const (
	headerRows = 2
	tabRows    = 2
	footerRows = 2
)

// Model is the top-level gallery application model.
type Model struct {
	keys   keyMap
	styles style.Styles
	help   help.Model
	spin   spinner.Model

	tabs   tabs.Model
	acc    accordion.Model
	menu   menu.Model
	field  input.Model
	form   button.Group
	split  splitpane.Model
	ticker marquee.Model
	para   paragraph.Model

	dlg        dialog.Model
	dialogOpen bool

	// order holds the tab order of the active tab's widgets; regions maps
	// screen cells to widget actions and is rebuilt every render pass.
	order   *focus.Manager[widgetID]
	regions *mouse.Registry[action]

	width  int
	height int
	status string

	initCmd tea.Cmd
}

// New builds the gallery with demo content in every widget.
func New(theme style.Theme) Model {
	st := style.NewStyles(theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Muted

	m := Model{
		keys:    defaultKeyMap(),
		styles:  st,
		help:    help.New(),
		spin:    sp,
		tabs:    tabs.New("Accordion", "Menu", "Form", "Split", "Text"),
		acc:     demoAccordion(),
		menu:    demoMenu(),
		field:   demoField(),
		form:    button.NewGroup("Submit", "Reset"),
		split:   demoSplit(),
		ticker:  marquee.New("loom: focus order and click regions for terminal interfaces"),
		para:    paragraph.New(demoText),
		order:   focus.New[widgetID](),
		regions: mouse.NewRegistry[action](),
		status:  "tab cycles focus, [ and ] switch tabs, click anything",
	}
	m.ticker.SetSize(48, 1)
	m.initCmd = tea.Batch(m.ticker.Start(), m.spin.Tick, m.field.CursorBlink())
	m.rebuildFocus()
	return m
}

// Init starts the marquee tick loop, the spinner, and the cursor blink.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Update handles all messages and routes them to the active widget.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.updateClick(msg.X, msg.Y)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case marquee.TickMsg:
		var cmd tea.Cmd
		m.ticker, cmd = m.ticker.Update(msg)
		return m, cmd

	case menu.ChooseMsg:
		m.status = fmt.Sprintf("menu: chose %q (item %d)", msg.Item.Title, msg.Index)
		return m, nil

	case button.PressMsg:
		return m.updatePress(msg)

	case dialog.ResultMsg:
		m.dialogOpen = false
		if msg.ID == quitDialogID && msg.Button == "Quit" {
			logging.Info("gallery quitting")
			return m, tea.Quit
		}
		m.status = "stayed in the gallery"
		return m, nil
	}

	return m.updateFocusedWidget(msg)
}

// updateKey dispatches key events: the dialog swallows everything while
// open, text-entry widgets get raw keys, then application keys, then the
// focused widget.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.dialogOpen {
		var cmd tea.Cmd
		m.dlg, cmd = m.dlg.Update(msg)
		return m, cmd
	}

	// While a widget is consuming text, application shortcuts like q and [
	// must reach it as input, not act on the gallery. Tab and shift+tab
	// always move focus; nothing treats them as text.
	if m.textEntryActive() &&
		!key.Matches(msg, m.keys.NextWidget) &&
		!key.Matches(msg, m.keys.PrevWidget) {
		return m.updateFocusedWidget(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.openQuitDialog()

	case key.Matches(msg, m.keys.NextWidget):
		from := m.focusName()
		m.order.Next()
		m.syncFocus()
		logging.LogFocusChange(from, m.focusName())
		return m, nil

	case key.Matches(msg, m.keys.PrevWidget):
		from := m.focusName()
		m.order.Prev()
		m.syncFocus()
		logging.LogFocusChange(from, m.focusName())
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		m.rebuildFocus()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		m.rebuildFocus()
		return m, nil

	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m.updateFocusedWidget(msg)
}

// updateClick resolves a left click through the region registry.
func (m Model) updateClick(x, y int) (tea.Model, tea.Cmd) {
	if m.dialogOpen {
		cmd, hit := m.dlg.HandleClick(x, y)
		logging.LogClick(x, y, "dialog", hit)
		return m, cmd
	}

	a, hit := m.regions.Hit(x, y)
	logging.LogClick(x, y, string(a.target), hit)
	if !hit {
		return m, nil
	}

	switch a.target {
	case widgetTabs:
		m.tabs.Activate(a.index)
		m.rebuildFocus()

	case widgetAccordion:
		m.focusWidget(widgetAccordion)
		m.acc.Toggle(a.index)

	case widgetMenu:
		m.focusWidget(widgetMenu)
		return m, m.menu.Choose(a.index)

	case widgetInput:
		m.focusWidget(widgetInput)

	case widgetButtons:
		m.focusWidget(widgetButtons)
		return m, m.form.Activate(a.index)

	case widgetSplit:
		m.focusWidget(widgetSplit)
		m.split.SetActivePane(splitpane.Pane(a.index))

	case widgetMarquee:
		if m.ticker.Running() {
			m.ticker.Stop()
			m.status = "marquee stopped"
			return m, nil
		}
		m.status = "marquee running"
		return m, m.ticker.Start()

	case widgetParagraph:
		m.focusWidget(widgetParagraph)
	}
	return m, nil
}

// updatePress handles presses from the form's button row.
func (m Model) updatePress(msg button.PressMsg) (tea.Model, tea.Cmd) {
	if m.dialogOpen {
		var cmd tea.Cmd
		m.dlg, cmd = m.dlg.Update(msg)
		return m, cmd
	}

	switch msg.Label {
	case "Submit":
		if err := m.field.Err(); err != nil {
			m.status = "form: " + err.Error()
		} else if m.field.Value() == "" {
			m.status = "form: name is required"
		} else {
			m.status = fmt.Sprintf("form: hello, %s", m.field.Value())
		}
	case "Reset":
		m.field.SetValue("")
		m.status = "form: cleared"
	}
	return m, nil
}

// updateFocusedWidget routes a message to whichever widget holds focus.
func (m Model) updateFocusedWidget(msg tea.Msg) (tea.Model, tea.Cmd) {
	id, ok := m.order.Current()
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	switch id {
	case widgetAccordion:
		m.acc, cmd = m.acc.Update(msg)
	case widgetMenu:
		m.menu, cmd = m.menu.Update(msg)
	case widgetInput:
		m.field, cmd = m.field.Update(msg)
	case widgetButtons:
		m.form, cmd = m.form.Update(msg)
	case widgetSplit:
		m.split, cmd = m.split.Update(msg)
	case widgetParagraph:
		m.para, cmd = m.para.Update(msg)
	}
	return m, cmd
}

// View renders the gallery and rebuilds the click regions to match.
func (m Model) View() string {
	if m.width == 0 {
		return "starting gallery..."
	}
	if m.dialogOpen {
		return m.dlg.Place(m.width, m.height)
	}

	title := m.styles.Title.Render("loom widget gallery")
	if m.ticker.Running() {
		title += " " + m.spin.View()
	}

	tb := m.tabs
	tb.SetPage(tb.Active(), m.buildPage(tb.Active()))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(tb.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	m.registerRegions()
	return b.String()
}

// buildPage renders the widget content of the tab at index.
func (m Model) buildPage(index int) string {
	switch index {
	case 0:
		return m.acc.View()
	case 1:
		return m.menu.View()
	case 2:
		return m.field.View() + "\n\n" + m.form.View()
	case 3:
		return m.split.View()
	case 4:
		return m.ticker.View() + "\n\n" + m.para.View()
	}
	return ""
}

// registerRegions rebuilds the click registry from the current layout: the
// tab bar first, then the active tab's widgets translated to screen cells.
// Registration order is the hit-test order, so earlier wins on overlap.
func (m Model) registerRegions() {
	m.regions.Clear()

	for i, r := range m.tabs.Hotspots() {
		m.regions.Register(r.Offset(0, headerRows), action{widgetTabs, i})
	}

	y := headerRows + tabRows
	switch m.tabs.Active() {
	case 0:
		m.registerHotspots(widgetAccordion, m.acc.Hotspots(), 0, y)
	case 1:
		m.registerHotspots(widgetMenu, m.menu.Hotspots(), 0, y)
	case 2:
		m.registerHotspots(widgetInput, m.field.Hotspots(), 0, y)
		fieldRows := lipgloss.Height(m.field.View())
		m.registerHotspots(widgetButtons, m.form.Hotspots(), 0, y+fieldRows+1)
	case 3:
		m.registerHotspots(widgetSplit, m.split.Hotspots(), 0, y)
	case 4:
		m.regions.Register(
			mouse.Rect{Y: y, Width: lipgloss.Width(m.ticker.View()), Height: 1},
			action{widgetMarquee, 0},
		)
		m.regions.Register(
			mouse.Rect{Y: y + 2, Width: m.contentWidth(), Height: lipgloss.Height(m.para.View())},
			action{widgetParagraph, 0},
		)
	}
}

func (m Model) registerHotspots(id widgetID, rects []mouse.Rect, dx, dy int) {
	for i, r := range rects {
		m.regions.Register(r.Offset(dx, dy), action{id, i})
	}
}

// openQuitDialog swaps in a fresh confirm dialog and records its placement
// so clicks resolve against the right origin.
func (m Model) openQuitDialog() (tea.Model, tea.Cmd) {
	m.dlg = dialog.Confirm(quitDialogID,
		"Quit the gallery?",
		"The demo state is not saved.",
		"Quit", "Cancel")
	_ = m.dlg.Place(m.width, m.height)
	m.dialogOpen = true
	return m, nil
}

// rebuildFocus resets the tab order to the active tab's widgets. The first
// registered widget receives focus.
func (m *Model) rebuildFocus() {
	from := m.focusName()
	m.order.Clear()
	m.order.RegisterAll(tabWidgets[m.tabs.Active()]...)
	m.syncFocus()
	logging.LogFocusChange(from, m.focusName())
}

// focusWidget moves focus to the given widget, as a click would.
func (m *Model) focusWidget(id widgetID) {
	from := m.focusName()
	m.order.Set(id)
	m.syncFocus()
	logging.LogFocusChange(from, m.focusName())
}

// syncFocus pushes the focus manager's state down onto the widgets.
func (m *Model) syncFocus() {
	cur, _ := m.order.Current()

	setFocus(&m.acc.Base, cur == widgetAccordion)
	setFocus(&m.menu.Base, cur == widgetMenu)
	setFocus(&m.split.Base, cur == widgetSplit)
	setFocus(&m.para.Base, cur == widgetParagraph)

	// input and the button group have focus side effects of their own
	if cur == widgetInput {
		m.field.Focus()
	} else {
		m.field.Blur()
	}
	if cur == widgetButtons {
		m.form.Focus()
	} else {
		m.form.Blur()
	}
}

func setFocus(b *widget.Base, focused bool) {
	if focused {
		b.Focus()
	} else {
		b.Blur()
	}
}

// textEntryActive reports whether the focused widget is consuming raw text.
func (m Model) textEntryActive() bool {
	cur, ok := m.order.Current()
	if !ok {
		return false
	}
	switch cur {
	case widgetInput:
		return m.field.Focused()
	case widgetMenu:
		return m.menu.Filtering()
	}
	return false
}

// focusName names the focused widget for logging.
func (m Model) focusName() string {
	cur, ok := m.order.Current()
	if !ok {
		return "none"
	}
	return string(cur)
}

// resize propagates the terminal size to every widget.
func (m *Model) resize(w, h int) {
	m.width = w
	m.height = h
	m.help.Width = w

	cw := m.contentWidth()
	ch := h - headerRows - tabRows - footerRows
	if ch < 4 {
		ch = 4
	}

	m.acc.SetSize(cw, ch)
	m.menu.SetSize(cw, ch)
	m.split.SetSize(cw, ch-1)
	m.para.SetSize(cw, ch-2)
	tickerW := cw
	if tickerW > 48 {
		tickerW = 48
	}
	m.ticker.SetSize(tickerW, 1)

	if m.dialogOpen {
		_ = m.dlg.Place(w, h)
	}
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return style.MinTerminalWidth
	}
	return m.width
}

const demoText = "Loom widgets report their clickable areas as rectangles " +
	"relative to their own origin. The container translates those rectangles " +
	"to screen coordinates and registers them, so a widget never needs to " +
	"know where it ended up on screen. The registry is cleared and rebuilt " +
	"on every render pass, which keeps it consistent with whatever was " +
	"actually drawn: stale regions cannot outlive the frame that produced " +
	"them. Focus works the same way but lives in a separate structure, an " +
	"ordered list of widget identities with at most one of them current. " +
	"Tab walks the order forward, shift+tab walks it backward, and a click " +
	"jumps directly to the widget that was hit."

func demoAccordion() accordion.Model {
	return accordion.New(
		accordion.Section{
			Title:    "Focus order",
			Body:     "An ordered list of widget identities with at most one current. Registration order is navigation order; duplicates are ignored.",
			Expanded: true,
		},
		accordion.Section{
			Title: "Click regions",
			Body:  "Rectangles registered fresh each render pass. The first registered rectangle containing a click wins.",
		},
		accordion.Section{
			Title: "Widgets",
			Body:  "Value models in the Elm style: Update returns the next model, View renders it, pointer receivers mutate focus and size.",
		},
	)
}

func demoMenu() menu.Model {
	m := menu.New(
		menu.Item{Title: "accordion", Desc: "collapsible sections"},
		menu.Item{Title: "button", Desc: "press targets"},
		menu.Item{Title: "dialog", Desc: "modal confirm and prompt"},
		menu.Item{Title: "input", Desc: "validated text field"},
		menu.Item{Title: "marquee", Desc: "scrolling ticker"},
		menu.Item{Title: "menu", Desc: "this list"},
		menu.Item{Title: "paragraph", Desc: "scrollable text"},
		menu.Item{Title: "splitpane", Desc: "adjustable split"},
		menu.Item{Title: "tabs", Desc: "tab bar"},
	)
	m.MaxVisible = 7
	return m
}

func demoField() input.Model {
	f := input.New("Name", "your name")
	f.Validate = func(v string) error {
		if strings.TrimSpace(v) != v {
			return fmt.Errorf("no leading or trailing spaces")
		}
		return nil
	}
	return f
}

func demoSplit() splitpane.Model {
	s := splitpane.New(splitpane.Horizontal)
	s.SetContent(splitpane.First,
		"first pane\n\nclick a pane to make\nit active, > and <\nresize the split")
	s.SetContent(splitpane.Second,
		"second pane\n\no switches the active\npane from the keyboard")
	return s
}
