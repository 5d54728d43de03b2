package rbtree

// Color of a tree node. New nodes start out Red; recoloring during
// insertion fixup is what keeps the tree balanced.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a single element of the tree. Links and color are managed
// exclusively by Tree; external code gets read access so that walkers
// and verification tools can inspect the structure.
type Node[T any] struct {
	value               T
	left, right, parent *Node[T]
	color               Color
}

func newNode[T any](value T) *Node[T] {
	return &Node[T]{value: value, color: Red}
}

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Parent returns the parent node. It is nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Color returns the node's color. A nil node is Black: absent
// positions count as black leaves.
func (n *Node[T]) Color() Color {
	if n == nil {
		return Black
	}
	return n.color
}
