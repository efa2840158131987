package style

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

const (
	appName   = "loom"
	themeFile = "theme.yaml"
)

// Mutex for thread-safe theme file writes.
var fileMutex sync.Mutex

// Theme is the serializable color scheme loaded from the theme file. All
// colors are hex strings understood by lipgloss.
type Theme struct {
	Version int    `yaml:"version"`
	Border  string `yaml:"border,omitempty"` // rounded, normal, thick, double, hidden
	Colors  Colors `yaml:"colors"`
}

// Colors holds the palette a theme is built from.
type Colors struct {
	Primary    string `yaml:"primary"`    // headers, focused borders, active tabs
	Highlight  string `yaml:"highlight"`  // cursor/selection emphasis
	Text       string `yaml:"text"`       // main content
	Muted      string `yaml:"muted"`      // secondary info, unfocused borders
	Error      string `yaml:"error"`      // validation failures
	Background string `yaml:"background"` // inverse text on focused buttons
}

// DefaultTheme returns the built-in palette, picking light or dark variants
// based on the terminal background reported by termenv.
func DefaultTheme() Theme {
	if termenv.HasDarkBackground() {
		return darkTheme()
	}
	return lightTheme()
}

func darkTheme() Theme {
	return Theme{
		Version: 1,
		Border:  "rounded",
		Colors: Colors{
			Primary:    "#7D56F4", // purple
			Highlight:  "#04B575", // green
			Text:       "#FFFFFF",
			Muted:      "#626262",
			Error:      "#FF5555",
			Background: "#1A1A1A",
		},
	}
}

func lightTheme() Theme {
	return Theme{
		Version: 1,
		Border:  "rounded",
		Colors: Colors{
			Primary:    "#5A3FD4",
			Highlight:  "#02874F",
			Text:       "#1A1A1A",
			Muted:      "#8A8A8A",
			Error:      "#C80000",
			Background: "#FFFFFF",
		},
	}
}

// ConfigDir returns the OS-appropriate configuration directory for loom,
// following platform conventions:
//   - Linux: $XDG_CONFIG_HOME/loom or $HOME/.config/loom
//   - macOS: $HOME/.config/loom
//   - Windows: %LOCALAPPDATA%\loom
func ConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".config", appName)

	default:
		// Linux and other Unix-like systems
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			baseDir = filepath.Join(xdg, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// ThemePath returns the full path to the theme file.
func ThemePath() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, themeFile), nil
}

// LoadTheme loads the theme from the platform config directory. A missing
// file returns the default theme; a malformed or unsupported file is an
// error.
func LoadTheme() (Theme, error) {
	themePath, err := ThemePath()
	if err != nil {
		return Theme{}, fmt.Errorf("failed to get theme path: %w", err)
	}

	data, err := os.ReadFile(themePath)
	if os.IsNotExist(err) {
		return DefaultTheme(), nil
	}
	if err != nil {
		return Theme{}, fmt.Errorf("failed to read theme file: %w", err)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("failed to parse theme file: %w", err)
	}

	if theme.Version != 1 {
		return Theme{}, fmt.Errorf("unsupported theme version: %d (expected 1)", theme.Version)
	}

	// Unset colors fall back to the defaults so partial themes work.
	def := DefaultTheme()
	fillColors(&theme.Colors, def.Colors)
	if theme.Border == "" {
		theme.Border = def.Border
	}

	return theme, nil
}

// Save writes the theme to the platform config directory. The write is
// atomic: content goes to a temporary file first, then renames over the
// target.
func (t Theme) Save() error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	configDir, err := ConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	themePath, err := ThemePath()
	if err != nil {
		return fmt.Errorf("failed to get theme path: %w", err)
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal theme: %w", err)
	}

	header := []byte(`# loom theme file
# Colors are hex strings; border is one of: rounded, normal, thick, double, hidden.
# Delete this file to return to the built-in palette.

`)
	data = append(header, data...)

	tmpPath := themePath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary theme file: %w", err)
	}
	if err := os.Rename(tmpPath, themePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename theme file into place: %w", err)
	}

	return nil
}

// fillColors copies defaults into any unset color field.
func fillColors(c *Colors, def Colors) {
	if c.Primary == "" {
		c.Primary = def.Primary
	}
	if c.Highlight == "" {
		c.Highlight = def.Highlight
	}
	if c.Text == "" {
		c.Text = def.Text
	}
	if c.Muted == "" {
		c.Muted = def.Muted
	}
	if c.Error == "" {
		c.Error = def.Error
	}
	if c.Background == "" {
		c.Background = def.Background
	}
}
