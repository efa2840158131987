package focus

// none marks the absence of a focused element.
const none = -1

// Manager tracks an ordered list of focusable elements and the index of the
// one currently holding focus. Create one with New or NewWithCapacity.
type Manager[T comparable] struct {
	elements []T
	current  int // index into elements, or none
}

// New returns an empty focus manager.
func New[T comparable]() *Manager[T] {
	return &Manager[T]{current: none}
}

// NewWithCapacity returns an empty focus manager with room pre-allocated for
// n elements.
func NewWithCapacity[T comparable](n int) *Manager[T] {
	return &Manager[T]{
		elements: make([]T, 0, n),
		current:  none,
	}
}

// Register appends element to the navigation order. Registering an element
// that is already present is a no-op, so render paths may re-register their
// children every frame. The very first registration focuses that element.
func (m *Manager[T]) Register(element T) {
	if m.indexOf(element) >= 0 {
		return
	}
	m.elements = append(m.elements, element)
	if len(m.elements) == 1 {
		m.current = 0
	}
}

// RegisterAll registers each element in order.
func (m *Manager[T]) RegisterAll(elements ...T) {
	for _, e := range elements {
		m.Register(e)
	}
}

// Current returns the focused element, or ok=false if nothing is focused.
func (m *Manager[T]) Current() (T, bool) {
	if m.current == none || m.current >= len(m.elements) {
		var zero T
		return zero, false
	}
	return m.elements[m.current], true
}

// CurrentIndex returns the index of the focused element, or ok=false if
// nothing is focused.
func (m *Manager[T]) CurrentIndex() (int, bool) {
	if m.current == none {
		return 0, false
	}
	return m.current, true
}

// IsFocused reports whether element currently holds focus.
func (m *Manager[T]) IsFocused(element T) bool {
	cur, ok := m.Current()
	return ok && cur == element
}

// Next moves focus to the following element, wrapping from the last back to
// the first. From an unfocused state focus lands on the first element.
// No-op when empty.
func (m *Manager[T]) Next() {
	if len(m.elements) == 0 {
		return
	}
	if m.current == none {
		m.current = 0
		return
	}
	m.current = (m.current + 1) % len(m.elements)
}

// Prev moves focus to the preceding element, wrapping from the first to the
// last. From an unfocused state focus lands on the first element, same as
// Next: starting navigation always begins at the top of the order, whichever
// direction the user pressed.
func (m *Manager[T]) Prev() {
	if len(m.elements) == 0 {
		return
	}
	if m.current == none {
		m.current = 0
		return
	}
	m.current = (m.current - 1 + len(m.elements)) % len(m.elements)
}

// Set focuses the given element. Unknown elements leave focus unchanged.
func (m *Manager[T]) Set(element T) {
	if i := m.indexOf(element); i >= 0 {
		m.current = i
	}
}

// SetIndex focuses the element at index. Out-of-range indices leave focus
// unchanged.
func (m *Manager[T]) SetIndex(index int) {
	if index >= 0 && index < len(m.elements) {
		m.current = index
	}
}

// First focuses the first element. No-op when empty.
func (m *Manager[T]) First() {
	if len(m.elements) > 0 {
		m.current = 0
	}
}

// Last focuses the last element. No-op when empty.
func (m *Manager[T]) Last() {
	if len(m.elements) > 0 {
		m.current = len(m.elements) - 1
	}
}

// Unfocus clears focus without altering the element order.
func (m *Manager[T]) Unfocus() {
	m.current = none
}

// HasFocus reports whether any element holds focus.
func (m *Manager[T]) HasFocus() bool {
	return m.current != none
}

// Len returns the number of registered elements.
func (m *Manager[T]) Len() int {
	return len(m.elements)
}

// IsEmpty reports whether no elements are registered.
func (m *Manager[T]) IsEmpty() bool {
	return len(m.elements) == 0
}

// Elements returns the registered elements in navigation order. The slice is
// the manager's backing storage and must not be modified by the caller.
func (m *Manager[T]) Elements() []T {
	return m.elements
}

// Remove deletes element from the navigation order and reports whether it
// was present. Focus is re-anchored so the current index always stays in
// bounds:
//
//   - removing the last remaining element clears focus entirely
//   - removing the focused element moves focus to the element that slid into
//     its slot, or to the new last element if the focused one was last
//   - removing an element before the focused one keeps the same logical
//     element focused by shifting the index down
func (m *Manager[T]) Remove(element T) bool {
	i := m.indexOf(element)
	if i < 0 {
		return false
	}
	m.elements = append(m.elements[:i], m.elements[i+1:]...)

	switch {
	case len(m.elements) == 0:
		m.current = none
	case m.current == none:
		// nothing focused, nothing to re-anchor
	case i == m.current && m.current >= len(m.elements):
		m.current = len(m.elements) - 1
	case i == m.current:
		// index unchanged: focus falls on the element that shifted down
	case i < m.current:
		m.current--
	}
	return true
}

// Clear removes every element and clears focus.
func (m *Manager[T]) Clear() {
	m.elements = m.elements[:0]
	m.current = none
}

// indexOf returns the position of element, or -1 if absent. Linear scan is
// deliberate: focus orders hold a handful of entries at most.
func (m *Manager[T]) indexOf(element T) int {
	for i, e := range m.elements {
		if e == element {
			return i
		}
	}
	return -1
}
