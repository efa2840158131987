// Package logging provides structured logging for the loom gallery and
// debug tooling.
//
// This package wraps zap with convenience functions for the event-dispatch
// tracing the gallery does: focus transitions, click resolution, and key
// handling. Logging is silent by default so it never corrupts the rendered
// TUI; set LOOM_LOG_LEVEL to "debug", "info", "warn", or "error" to enable
// output on stderr.
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("click resolved",
//	    zap.Int("x", msg.X),
//	    zap.Int("y", msg.Y),
//	    zap.String("action", string(action)),
//	)
//
// # Specialized Logging
//
// The package provides helpers for the two dispatch paths every interactive
// container exercises:
//
//	logging.LogFocusChange("name", "email")
//	logging.LogClick(x, y, "submit", true)
//
// # Configuration
//
// Initialize logging at program startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(1)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
