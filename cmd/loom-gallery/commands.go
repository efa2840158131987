package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/gallery"
	"github.com/loomui/loom/internal/logging"
	"github.com/loomui/loom/style"
)

var themeForce bool

func init() {
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(themeCmd)

	themeCmd.AddCommand(themeInitCmd)
	themeCmd.AddCommand(themePathCmd)
	themeInitCmd.Flags().BoolVar(&themeForce, "force", false, "Overwrite an existing theme file")
}

// galleryCmd launches the interactive gallery (also the root default)
var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Launch the interactive widget gallery",
	Long: `Launch the interactive widget gallery.

The gallery runs in the alternate screen with mouse reporting enabled, so
every widget can be driven by keyboard or by click.`,
	Example: `  # Launch the gallery
  loom-gallery
  # Or explicitly:
  loom-gallery gallery

  # Trace focus and click resolution to stderr
  LOOM_LOG_LEVEL=debug loom-gallery 2>gallery.log`,
	RunE: runGallery,
}

func runGallery(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	theme, err := style.LoadTheme()
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}

	p := tea.NewProgram(gallery.New(theme),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("gallery error: %w", err)
	}
	return nil
}

// themeCmd groups the theme file commands
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the gallery color theme",
	Long: `Manage the color theme used by the gallery.

The theme lives in a YAML file under the platform configuration directory
and is picked up on the next launch.`,
}

var themeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default theme file",
	Long: `Write the default theme file for editing.

The defaults match the terminal background: a dark palette on dark
terminals, a light one otherwise. An existing file is left alone unless
--force is given.`,
	Example: `  # Create the theme file with the current defaults
  loom-gallery theme init

  # Reset a modified theme back to the defaults
  loom-gallery theme init --force`,
	RunE: runThemeInit,
}

func runThemeInit(cmd *cobra.Command, args []string) error {
	path, err := style.ThemePath()
	if err != nil {
		return err
	}

	if !themeForce {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Theme file already exists: %s\n", path)
			fmt.Println("Use --force to overwrite it with the defaults.")
			return nil
		}
	}

	theme := style.DefaultTheme()
	if err := theme.Save(); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}

	fmt.Printf("Wrote default theme to %s\n", path)
	return nil
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the theme file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := style.ThemePath()
		if err != nil {
			return fmt.Errorf("unable to determine theme path: %w", err)
		}
		fmt.Println(path)
		return nil
	},
}
