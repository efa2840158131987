// Package focus provides keyboard focus ordering for interactive widgets.
//
// A Manager maintains an ordered set of caller-defined focusable element
// identifiers and tracks which one currently holds focus. Widgets and
// containers register their focusable children once (registration order is
// navigation order) and then drive navigation from key events:
//
//	fm := focus.New[string]()
//	fm.RegisterAll("name", "email", "submit", "cancel")
//
//	// Tab / Shift+Tab
//	fm.Next()
//	fm.Prev()
//
//	if fm.IsFocused("submit") {
//	    // render the submit button highlighted
//	}
//
// The identifier type is anything comparable - typically a small int or
// string enum owned by the consumer. The manager never interprets it.
//
// # Total operations
//
// Every operation is defined for every input: navigating an empty manager,
// selecting an unknown identifier, or removing an element that was never
// registered are all silent no-ops. Callers in event handlers can invoke
// these methods unconditionally without guard checks.
//
// # Thread safety
//
// A Manager is a plain in-memory structure intended to be owned by a single
// Bubble Tea model and mutated only from its Update path. It performs no
// locking of its own.
package focus
