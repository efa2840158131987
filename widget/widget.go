// Package widget defines the contracts shared by every loom widget and a
// Base struct that carries the state common to all of them.
//
// Widgets follow the Bubble Tea component convention: a model struct with
// Update and View, embedded in a parent model. Base adds the focus flag and
// size bookkeeping so individual widgets only implement behavior.
package widget

import "github.com/loomui/loom/mouse"

// Focusable is implemented by widgets that participate in keyboard focus.
// Containers flip these from a focus.Manager; widgets only render their
// focused/blurred appearance.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// Sizable is implemented by widgets that adapt to an allotted area.
type Sizable interface {
	SetSize(width, height int)
}

// Clickable is implemented by widgets with clickable sub-areas. Hotspots
// returns rects relative to the widget's own origin; the container
// translates them into screen coordinates and registers them with its
// mouse.Registry each render pass.
type Clickable interface {
	Hotspots() []mouse.Rect
}

// Base provides the focus and size state every widget carries. Embed it by
// value and access it through its pointer methods.
type Base struct {
	focused bool
	width   int
	height  int
}

// Focused reports whether the widget holds keyboard focus.
func (b *Base) Focused() bool {
	return b.focused
}

// Focus marks the widget as holding keyboard focus.
func (b *Base) Focus() {
	b.focused = true
}

// Blur removes keyboard focus from the widget.
func (b *Base) Blur() {
	b.focused = false
}

// SetSize records the area allotted to the widget.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the allotted width in cells.
func (b *Base) Width() int {
	return b.width
}

// Height returns the allotted height in cells.
func (b *Base) Height() int {
	return b.height
}
