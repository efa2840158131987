package mouse

// Rect is an axis-aligned rectangle in screen cells. X grows right, Y grows
// down, matching Bubble Tea mouse event coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell at (x, y) lies inside the rectangle.
// Both axes are half-open: the right and bottom edges are exclusive, so a
// rect at (10, 5) sized 20x3 contains (29, 7) but not (30, 5) or (10, 8).
// Zero-width or zero-height rects contain nothing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Offset returns a copy of the rectangle translated by (dx, dy). Widgets
// report rects relative to their own origin; containers translate them into
// screen coordinates before registering.
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Region is a clickable screen area tagged with an action payload. The
// payload is returned verbatim from Registry.Hit; callers that need it past
// the next Clear should copy it out.
type Region[T any] struct {
	Rect Rect
	Data T
}

// NewRegion builds a region. No validation: degenerate zero-size rects are
// legal and simply never match.
func NewRegion[T any](rect Rect, data T) Region[T] {
	return Region[T]{Rect: rect, Data: data}
}

// Contains reports whether (x, y) falls within the region's bounds.
func (r Region[T]) Contains(x, y int) bool {
	return r.Rect.Contains(x, y)
}

// Registry accumulates clickable regions over a render pass and resolves
// pointer coordinates during event handling. Create one with NewRegistry or
// NewRegistryWithCapacity.
type Registry[T any] struct {
	regions []Region[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{}
}

// NewRegistryWithCapacity returns an empty registry with room pre-allocated
// for n regions.
func NewRegistryWithCapacity[T any](n int) *Registry[T] {
	return &Registry[T]{regions: make([]Region[T], 0, n)}
}

// Clear removes every region. Call at the start of each render pass.
func (g *Registry[T]) Clear() {
	g.regions = g.regions[:0]
}

// Register appends a clickable region. Registration order is resolution
// order for overlapping regions.
func (g *Registry[T]) Register(rect Rect, data T) {
	g.regions = append(g.regions, NewRegion(rect, data))
}

// Hit resolves (x, y) to the payload of the first region containing the
// point, in registration order. It is a pure query: repeated calls with the
// same coordinates return the same result.
func (g *Registry[T]) Hit(x, y int) (T, bool) {
	for _, r := range g.regions {
		if r.Contains(x, y) {
			return r.Data, true
		}
	}
	var zero T
	return zero, false
}

// Regions returns the registered regions in registration order. The slice is
// the registry's backing storage and must not be modified by the caller.
func (g *Registry[T]) Regions() []Region[T] {
	return g.regions
}

// Len returns the number of registered regions.
func (g *Registry[T]) Len() int {
	return len(g.regions)
}

// IsEmpty reports whether no regions are registered.
func (g *Registry[T]) IsEmpty() bool {
	return len(g.regions) == 0
}
