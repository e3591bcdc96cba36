package shortcut

import (
	"math"
	"sort"
)

// List is the in-memory ordered collection of shortcuts.
// Insertion order is the storage order; display order comes from SortedIndexes.
// A List has no persistence; see Store.
type List struct {
	shortcuts []Shortcut
}

// Len returns the number of shortcuts.
func (l *List) Len() int {
	return len(l.shortcuts)
}

// All returns a copy of the shortcuts in storage order.
func (l *List) All() []Shortcut {
	out := make([]Shortcut, len(l.shortcuts))
	copy(out, l.shortcuts)
	return out
}

// At returns the shortcut at index i, or false if i is out of range.
func (l *List) At(i int) (Shortcut, bool) {
	if i < 0 || i >= len(l.shortcuts) {
		return Shortcut{}, false
	}
	return l.shortcuts[i], true
}

// Add appends s. Duplicates are allowed.
func (l *List) Add(s Shortcut) {
	l.shortcuts = append(l.shortcuts, s)
}

// RemoveAt removes and returns the shortcut at index i.
// Returns false without touching the list if i is out of range.
// Later indices shift down by one, so rankings must be recomputed afterwards.
func (l *List) RemoveAt(i int) (Shortcut, bool) {
	if i < 0 || i >= len(l.shortcuts) {
		return Shortcut{}, false
	}
	removed := l.shortcuts[i]
	l.shortcuts = append(l.shortcuts[:i], l.shortcuts[i+1:]...)
	return removed, true
}

// IncrementLookupCount adds amount to the lookup count of the shortcut at index i.
// Invalid indices are ignored. A negative amount lowers the count, never below zero.
func (l *List) IncrementLookupCount(i int, amount int) {
	if i < 0 || i >= len(l.shortcuts) {
		return
	}
	l.shortcuts[i].LookupCount = addClamped(l.shortcuts[i].LookupCount, amount)
}

// SortedIndexes returns every index ordered by descending lookup count.
// Ties keep ascending index order. The result is computed on each call.
func (l *List) SortedIndexes() []int {
	idx := make([]int, len(l.shortcuts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return l.shortcuts[idx[a]].LookupCount > l.shortcuts[idx[b]].LookupCount
	})
	return idx
}

func addClamped(count uint, amount int) uint {
	if amount >= 0 {
		delta := uint(amount)
		if count > math.MaxUint-delta {
			return math.MaxUint
		}
		return count + delta
	}
	// amount+1 avoids overflow when negating math.MinInt.
	delta := uint(-(amount + 1)) + 1
	if delta >= count {
		return 0
	}
	return count - delta
}
