// Package selection holds the checklist state behind the interactive menus.
// It contains no I/O, so menus built on it can be driven from tests.
package selection

// Set tracks which items of an ordered universe are selected.
type Set struct {
	selected map[string]bool
	items    []string
}

// New creates a set over items with nothing selected.
func New(items []string) *Set {
	s := &Set{
		items:    append([]string(nil), items...),
		selected: make(map[string]bool, len(items)),
	}
	return s
}

// NewAllSelected creates a set over items with everything selected.
func NewAllSelected(items []string) *Set {
	s := New(items)
	s.SelectAll()
	return s
}

// Items returns the universe in display order.
func (s *Set) Items() []string {
	return append([]string(nil), s.items...)
}

// Len returns the size of the universe.
func (s *Set) Len() int {
	return len(s.items)
}

// IsSelected reports whether the item at zero-based index i is selected.
func (s *Set) IsSelected(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	return s.selected[s.items[i]]
}

// Contains reports whether name is selected.
func (s *Set) Contains(name string) bool {
	return s.selected[name]
}

// Toggle flips the item at zero-based index i. It reports false when i is out of range.
func (s *Set) Toggle(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	name := s.items[i]
	s.selected[name] = !s.selected[name]
	return true
}

// ToggleNumbers flips the items at the given one-based positions and returns
// the positions that were out of range.
func (s *Set) ToggleNumbers(numbers []int) []int {
	var invalid []int
	for _, n := range numbers {
		if !s.Toggle(n - 1) {
			invalid = append(invalid, n)
		}
	}
	return invalid
}

// SelectAll selects every item.
func (s *Set) SelectAll() {
	for _, name := range s.items {
		s.selected[name] = true
	}
}

// SelectNone clears the selection.
func (s *Set) SelectNone() {
	for _, name := range s.items {
		s.selected[name] = false
	}
}

// Add selects every given name that is part of the universe and returns how
// many of them were. Names already selected stay selected; nothing is removed.
func (s *Set) Add(names ...string) int {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	matched := 0
	for _, name := range s.items {
		if want[name] {
			s.selected[name] = true
			matched++
		}
	}
	return matched
}

// Selected returns the selected items in display order.
func (s *Set) Selected() []string {
	var out []string
	for _, name := range s.items {
		if s.selected[name] {
			out = append(out, name)
		}
	}
	return out
}

// Count returns the number of selected items.
func (s *Set) Count() int {
	return len(s.Selected())
}
