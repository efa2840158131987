// Package style provides the shared color palette, lipgloss styles, and
// theme configuration for loom widgets.
//
// Widgets take a Styles value at construction and never reach for colors
// directly, so an application can restyle the whole widget set in one place:
//
//	theme, err := style.LoadTheme()
//	if err != nil {
//	    // fall back to the built-in palette
//	    theme = style.DefaultTheme()
//	}
//	styles := style.NewStyles(theme)
//	btn := button.New("OK", styles)
//
// # Theme File
//
// LoadTheme reads an optional YAML theme file from the platform config
// directory:
//
//   - Linux: $XDG_CONFIG_HOME/loom/theme.yaml or $HOME/.config/loom/theme.yaml
//   - macOS: $HOME/.config/loom/theme.yaml
//   - Windows: %LOCALAPPDATA%\loom\theme.yaml
//
// A missing file is not an error: LoadTheme returns the defaults, adapted to
// the terminal's background (dark or light) as reported by termenv.
package style
