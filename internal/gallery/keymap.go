package gallery

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the gallery's application-level key bindings. Widget keys
// (cursor movement, toggling, choosing) live in the widgets' own keymaps.
type keyMap struct {
	NextWidget key.Binding
	PrevWidget key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextWidget: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		PrevWidget: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous tab"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextWidget, k.NextTab, k.ToggleHelp, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextWidget, k.PrevWidget},
		{k.NextTab, k.PrevTab},
		{k.ToggleHelp, k.Quit},
	}
}
