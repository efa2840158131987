// Package gallery implements the interactive widget gallery for the
// loom-gallery command.
//
// The gallery is the reference consumer of the library's coordination
// primitives and shows the intended wiring:
//
//   - one focus.Manager holds the tab order of the focusable widgets on the
//     active tab; Tab/Shift+Tab cycle it and the gallery pushes the result
//     down onto the widgets' focus flags
//   - one mouse.Registry is cleared and rebuilt on every render pass from
//     the widgets' reported hotspots, translated to screen coordinates;
//     mouse clicks resolve through it to a widget action
//
// The two structures never touch each other: composition happens here, in
// the container, exactly as application code is expected to do it.
//
// # Screens
//
// Widgets are grouped into tabs (accordion, menu, form, split pane, text).
// A quit-confirm dialog demonstrates modal composition; while it is open it
// receives all input and resolves its own clicks.
//
// # Logging
//
// With LOOM_LOG_LEVEL=debug the gallery traces focus transitions, click
// resolution, and dialog results to stderr via internal/logging.
package gallery
