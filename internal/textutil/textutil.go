// Package textutil provides ANSI-aware text measurement and shaping helpers
// shared by the widget renderers. All width math accounts for escape
// sequences and wide runes; widgets never parse escapes themselves.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Width returns the display width of s in terminal cells, ignoring ANSI
// escape sequences and counting East Asian wide runes as two cells.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Truncate shortens s to at most width cells, appending tail (typically
// "…") when anything was cut. ANSI sequences are preserved and do not count
// toward the width.
func Truncate(s string, width int, tail string) string {
	if Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, tail)
}

// Wrap word-wraps s to the given width and returns the resulting lines.
// Words longer than the width are hard-broken. A non-positive width returns
// the input split on newlines only.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}

// PadRight pads s with spaces to exactly width cells, truncating first if s
// is already wider.
func PadRight(s string, width int) string {
	w := Width(s)
	if w > width {
		return Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

// Window returns a width-cell view of plain (escape-free) text starting at
// display column offset. Wide runes straddling either boundary are replaced
// by a space so the window stays exactly width cells. Used by the marquee
// for smooth per-cell scrolling.
func Window(s string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	clipped := runewidth.TruncateLeft(s, offset, "")
	clipped = runewidth.Truncate(clipped, width, "")
	return runewidth.FillRight(clipped, width)
}
