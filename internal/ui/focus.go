package ui

import "slices"

// FocusManager tracks and rotates focus across the fields of a form.
type FocusManager struct {
	Current  string   // ID of the focused field
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Next moves focus to the next field, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous field, wrapping around.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	if idx < 0 && delta < 0 {
		idx = 0
	}
	next := ((idx+delta)%n + n) % n
	f.set(f.Order[next])
	return f.Current
}

// SetFocus focuses the given field.
// Returns false if the ID is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
