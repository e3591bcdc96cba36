package ui

// FocusManager tracks which form field has focus and rotates through them.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Next moves focus forward, wrapping at the end. Returns the new focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.move(id)
	return true
}

// Focused reports whether id has focus.
func (f *FocusManager) Focused(id string) bool {
	return f.Current == id
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.indexOf(f.Current)
	if idx < 0 && delta < 0 {
		// Unknown focus behaves as if just before the first entry.
		idx = 0
	}
	f.move(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) move(to string) {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}
