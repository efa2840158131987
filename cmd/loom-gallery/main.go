// Loom-gallery is an interactive showcase of the loom widget library.
//
// It renders every widget in a tabbed gallery: focus moves with tab and
// shift+tab, tabs switch with [ and ], and everything on screen responds to
// mouse clicks. Set LOOM_LOG_LEVEL=debug to trace focus transitions and
// click resolution on stderr.
//
// Usage:
//
//	loom-gallery [command] [flags]
//
// Running without arguments launches the gallery.
// See 'loom-gallery --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "loom-gallery",
	Short: "Loom widget gallery",
	Long: `An interactive showcase of the loom widget library.

Every widget is rendered in a tabbed gallery. Focus moves with tab and
shift+tab, tabs switch with [ and ], and everything responds to clicks.

If no command is specified, the gallery launches.`,
	Version: version.Version,
	RunE:    runGallery,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loom-gallery %s\n", version.Full())
	},
}
