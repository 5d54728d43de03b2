// Package multiset provides an ordered collection that may store equal
// values more than once, backed by a red-black tree.
//
// It consumes only the tree's public surface and is, like the tree
// itself, not safe for concurrent use.
package multiset

import (
	"cmp"
	"iter"

	"github.com/emberhill/redblack/rbtree"
)

// Multiset is an ordered bag of values.
type Multiset[T any] struct {
	tree    *rbtree.Tree[T]
	compare rbtree.CompareFunc[T]
}

// New creates an empty multiset ordered by the given comparison function.
func New[T any](compare rbtree.CompareFunc[T]) *Multiset[T] {
	return &Multiset[T]{
		tree:    rbtree.New(compare),
		compare: compare,
	}
}

// NewOrdered creates an empty multiset for value types with a natural order.
func NewOrdered[T cmp.Ordered]() *Multiset[T] {
	return New(cmp.Compare[T])
}

// Add stores one occurrence of value.
func (m *Multiset[T]) Add(value T) {
	m.tree.Insert(value)
}

// Contains reports whether at least one occurrence of value is stored.
func (m *Multiset[T]) Contains(value T) bool {
	_, ok := m.tree.Find(value)
	return ok
}

// Count returns how many occurrences of value are stored.
func (m *Multiset[T]) Count(value T) int {
	count := 0
	for v := range m.tree.InOrder() {
		c := m.compare(v, value)
		if c > 0 {
			break
		}
		if c == 0 {
			count++
		}
	}
	return count
}

// Len returns the total number of stored occurrences.
func (m *Multiset[T]) Len() int {
	return m.tree.Len()
}

// Min returns the smallest stored value, if any.
func (m *Multiset[T]) Min() (T, bool) {
	return m.tree.Min()
}

// Values yields all occurrences in ascending order.
func (m *Multiset[T]) Values() iter.Seq[T] {
	return m.tree.InOrder()
}

// ForEach calls fn for every occurrence in ascending order until fn
// returns false.
func (m *Multiset[T]) ForEach(fn func(value T) bool) {
	for v := range m.tree.InOrder() {
		if !fn(v) {
			break
		}
	}
}
