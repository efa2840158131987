package focus

import "testing"

// wantCurrent asserts the focused element.
func wantCurrent(t *testing.T, m *Manager[string], want string) {
	t.Helper()
	got, ok := m.Current()
	if !ok {
		t.Fatalf("Current() = none, want %q", want)
	}
	if got != want {
		t.Fatalf("Current() = %q, want %q", got, want)
	}
}

// wantUnfocused asserts nothing is focused.
func wantUnfocused(t *testing.T, m *Manager[string]) {
	t.Helper()
	if got, ok := m.Current(); ok {
		t.Fatalf("Current() = %q, want none", got)
	}
	if m.HasFocus() {
		t.Fatal("HasFocus() = true, want false")
	}
}

func TestRegister_FirstElementGainsFocus(t *testing.T) {
	m := New[string]()
	wantUnfocused(t, m)

	m.Register("a")
	wantCurrent(t, m, "a")

	m.Register("b")
	wantCurrent(t, m, "a") // later registrations don't steal focus
}

func TestRegister_DuplicatesIgnored(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b", "a", "c", "b", "a")

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	want := []string{"a", "b", "c"}
	for i, e := range m.Elements() {
		if e != want[i] {
			t.Fatalf("Elements()[%d] = %q, want %q (first-occurrence order)", i, e, want[i])
		}
	}
}

func TestNext_WrapsCyclically(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b", "c")

	// n calls to Next return to the starting element
	for i := 0; i < 3; i++ {
		m.Next()
	}
	wantCurrent(t, m, "a")

	m.Next()
	wantCurrent(t, m, "b")
}

func TestPrev_WrapsCyclically(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b", "c")

	m.Prev()
	wantCurrent(t, m, "c")

	for i := 0; i < 3; i++ {
		m.Prev()
	}
	wantCurrent(t, m, "c")
}

func TestNavigation_FromUnfocusedLandsOnFirst(t *testing.T) {
	// Both directions land on the first element from an unfocused state.
	// Prev deliberately does NOT land on the last element here.
	t.Run("next", func(t *testing.T) {
		m := New[string]()
		m.RegisterAll("a", "b", "c")
		m.Unfocus()
		m.Next()
		wantCurrent(t, m, "a")
	})
	t.Run("prev", func(t *testing.T) {
		m := New[string]()
		m.RegisterAll("a", "b", "c")
		m.Unfocus()
		m.Prev()
		wantCurrent(t, m, "a")
	})
}

func TestNavigation_EmptyManagerIsNoop(t *testing.T) {
	m := New[string]()
	m.Next()
	m.Prev()
	m.First()
	m.Last()
	m.SetIndex(0)
	m.Set("ghost")
	wantUnfocused(t, m)
	if m.Remove("ghost") {
		t.Fatal("Remove on empty manager returned true")
	}
}

func TestSet(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b", "c")

	m.Set("c")
	wantCurrent(t, m, "c")

	// unknown element leaves focus unchanged
	m.Set("nonexistent")
	wantCurrent(t, m, "c")
}

func TestSetIndex_OutOfRangeIsNoop(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b")

	m.SetIndex(1)
	wantCurrent(t, m, "b")

	m.SetIndex(2)
	wantCurrent(t, m, "b")
	m.SetIndex(-1)
	wantCurrent(t, m, "b")
}

func TestFirstLast(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b", "c")

	m.Last()
	wantCurrent(t, m, "c")
	m.First()
	wantCurrent(t, m, "a")
}

func TestUnfocus_KeepsElements(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b")
	m.Unfocus()

	wantUnfocused(t, m)
	if m.Len() != 2 {
		t.Fatalf("Len() = %d after Unfocus, want 2", m.Len())
	}
}

func TestRemove_ReanchorsFocus(t *testing.T) {
	tests := []struct {
		name    string
		focus   string // element focused before removal, "" for Unfocus
		remove  string
		want    string // focused element after removal, "" for none
		wantLen int
	}{
		{name: "focused head, removal shifts focus to next", focus: "a", remove: "a", want: "b", wantLen: 2},
		{name: "focused tail, removal moves focus to new tail", focus: "c", remove: "c", want: "b", wantLen: 2},
		{name: "removal before focus keeps logical element", focus: "c", remove: "a", want: "c", wantLen: 2},
		{name: "removal after focus keeps index", focus: "a", remove: "c", want: "a", wantLen: 2},
		{name: "removal while unfocused stays unfocused", focus: "", remove: "b", want: "", wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New[string]()
			m.RegisterAll("a", "b", "c")
			if tt.focus == "" {
				m.Unfocus()
			} else {
				m.Set(tt.focus)
			}

			if !m.Remove(tt.remove) {
				t.Fatalf("Remove(%q) = false, want true", tt.remove)
			}
			if m.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", m.Len(), tt.wantLen)
			}
			if tt.want == "" {
				wantUnfocused(t, m)
			} else {
				wantCurrent(t, m, tt.want)
			}
		})
	}
}

func TestRemove_LastElementClearsFocus(t *testing.T) {
	m := New[string]()
	m.Register("only")
	wantCurrent(t, m, "only")

	if !m.Remove("only") {
		t.Fatal("Remove returned false")
	}
	wantUnfocused(t, m)
	if !m.IsEmpty() {
		t.Fatal("IsEmpty() = false after removing last element")
	}
}

func TestRemove_AbsentElement(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b")
	m.Set("b")

	if m.Remove("z") {
		t.Fatal("Remove of absent element returned true")
	}
	wantCurrent(t, m, "b")
}

func TestClear(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b", "c")
	m.Clear()

	wantUnfocused(t, m)
	if !m.IsEmpty() {
		t.Fatal("IsEmpty() = false after Clear")
	}

	// manager is reusable after Clear
	m.Register("x")
	wantCurrent(t, m, "x")
}

func TestIsFocused(t *testing.T) {
	m := New[string]()
	m.RegisterAll("a", "b")

	if !m.IsFocused("a") {
		t.Fatal(`IsFocused("a") = false, want true`)
	}
	if m.IsFocused("b") {
		t.Fatal(`IsFocused("b") = true, want false`)
	}
	m.Unfocus()
	if m.IsFocused("a") {
		t.Fatal(`IsFocused("a") = true after Unfocus`)
	}
}

func TestCurrentIndex(t *testing.T) {
	m := New[string]()
	if _, ok := m.CurrentIndex(); ok {
		t.Fatal("CurrentIndex() ok = true on empty manager")
	}

	m.RegisterAll("a", "b", "c")
	m.Set("b")
	if i, ok := m.CurrentIndex(); !ok || i != 1 {
		t.Fatalf("CurrentIndex() = %d, %v, want 1, true", i, ok)
	}
}

// TestFormNavigation walks the focus order the way a form container would.
func TestFormNavigation(t *testing.T) {
	m := New[string]()
	m.RegisterAll("Name", "Email", "Submit", "Cancel")
	wantCurrent(t, m, "Name")

	for i := 0; i < 3; i++ {
		m.Next()
	}
	wantCurrent(t, m, "Cancel")

	m.Next()
	wantCurrent(t, m, "Name") // wrapped

	m.Set("Submit")
	wantCurrent(t, m, "Submit")

	m.Set("Nonexistent")
	wantCurrent(t, m, "Submit")
}
