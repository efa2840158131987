package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Layout constants shared by widgets and the gallery.
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
	DefaultPadding   = 1   // Default padding inside boxes
)

// Styles carries every lipgloss style the widget set uses, pre-built from a
// Theme. Build one with NewStyles and share it across widgets.
type Styles struct {
	// Title is for widget titles and section headers.
	Title lipgloss.Style

	// Text is for regular content.
	Text lipgloss.Style

	// Muted is for secondary information: hints, placeholders, separators.
	Muted lipgloss.Style

	// Error is for validation failures and error messages.
	Error lipgloss.Style

	// Border frames an unfocused widget.
	Border lipgloss.Style

	// FocusedBorder frames the widget holding keyboard focus.
	FocusedBorder lipgloss.Style

	// Selected highlights the item under the cursor in lists, menus, and
	// accordion headers.
	Selected lipgloss.Style

	// Button and FocusedButton render action buttons.
	Button        lipgloss.Style
	FocusedButton lipgloss.Style

	// Tab and ActiveTab render tab bar entries.
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Divider renders split pane dividers and horizontal rules.
	Divider lipgloss.Style
}

// NewStyles builds the widget style set from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Primary)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Text)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Muted)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Error)),

		Border: lipgloss.NewStyle().
			Border(borderForName(t.Border)).
			BorderForeground(lipgloss.Color(t.Colors.Muted)),

		FocusedBorder: lipgloss.NewStyle().
			Border(borderForName(t.Border)).
			BorderForeground(lipgloss.Color(t.Colors.Primary)),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Highlight)).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Text)).
			Padding(0, 2),

		FocusedButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Background)).
			Background(lipgloss.Color(t.Colors.Primary)).
			Bold(true).
			Padding(0, 2),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Muted)).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Primary)).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Colors.Muted)),
	}
}

// borderForName maps a theme border name to a lipgloss border. Unknown names
// fall back to a rounded border.
func borderForName(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// TerminalWidth returns the current terminal width clamped to the supported
// range, with a fallback when the size cannot be determined.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// TerminalSize returns the current terminal width and height, with the width
// clamped to the supported range.
func TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}
