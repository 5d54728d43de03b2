// Package rbtree implements a red-black tree: a self-balancing binary
// search tree that keeps its height logarithmic in the number of stored
// values under any insertion order.
//
// Values are placed by ordinary binary-search descent and the tree is
// repaired after every insertion by recoloring and rotation. Duplicate
// values are allowed and are routed into the right subtree.
//
// A Tree is not safe for concurrent use.
package rbtree

import (
	"cmp"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "rbtree")

// CompareFunc orders two values: negative if a orders before b, zero if
// they are equal, positive otherwise. It must define a total order and
// have no side effects.
type CompareFunc[T any] func(a, b T) int

// Tree is a red-black tree instance. Use New or NewOrdered to create one.
type Tree[T any] struct {
	root    *Node[T]
	size    int
	compare CompareFunc[T]
}

// New creates an empty tree ordered by the given comparison function.
func New[T any](compare CompareFunc[T]) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// NewOrdered creates an empty tree for value types with a natural order.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

// Root returns the root node, or nil for an empty tree. The whole
// structure is reachable from it through the Node accessors.
func (t *Tree[T]) Root() *Node[T] { return t.root }

// Len returns the number of values stored in the tree.
func (t *Tree[T]) Len() int { return t.size }

// Insert adds a value to the tree and rebalances it. Every value is
// insertable; duplicates go into the right subtree of their equal.
func (t *Tree[T]) Insert(value T) {
	n := newNode(value)
	t.size++

	if t.root == nil {
		// The root must be black, and a single black root already
		// satisfies every other property.
		n.color = Black
		t.root = n
		return
	}

	cur := t.root
	for {
		if t.compare(value, cur.value) < 0 {
			if cur.left == nil {
				cur.left = n
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				break
			}
			cur = cur.right
		}
	}
	n.parent = cur

	t.fixInsert(n)
}

// Find returns the stored value equal to value, if any.
func (t *Tree[T]) Find(value T) (T, bool) {
	cur := t.root
	for cur != nil {
		c := t.compare(value, cur.value)
		switch {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return cur.value, true
		}
	}
	var zero T
	return zero, false
}

// Min returns the smallest stored value, if any.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}
	return cur.value, true
}

// fixInsert repairs the red-black properties after n, a freshly
// attached red node, possibly created a red-red edge. The recolor case
// climbs toward the root; every rotation case terminates the repair.
func (t *Tree[T]) fixInsert(n *Node[T]) {
	for {
		if n == t.root {
			n.color = Black
			return
		}

		parent := n.parent
		if parent.color == Black {
			// A red node under a black parent is legal.
			return
		}

		// The parent is red, so it cannot be the root and always has a
		// parent of its own.
		grand := parent.parent
		var uncle *Node[T]
		if parent == grand.left {
			uncle = grand.right
		} else {
			uncle = grand.left
		}

		if uncle.Color() == Red {
			// Pushing the blackness of the grandparent down to both of
			// its children keeps every black-height intact and moves
			// the potential violation two levels up.
			parent.color = Black
			uncle.color = Black
			grand.color = Red
			n = grand
			continue
		}

		// Black (or absent) uncle: a single rotation pass around the
		// grandparent finishes the repair. The zig-zag shapes are first
		// straightened by a rotation around the parent.
		switch {
		case parent == grand.left && n == parent.right:
			log.Debug("left-right rebalance")
			t.rotateLeft(parent)
			t.liftLeft(grand)
		case parent == grand.left:
			log.Debug("left-left rebalance")
			t.liftLeft(grand)
		case n == parent.left:
			log.Debug("right-left rebalance")
			t.rotateRight(parent)
			t.liftRight(grand)
		default:
			log.Debug("right-right rebalance")
			t.liftRight(grand)
		}
		return
	}
}

// liftLeft resolves a red-red edge on the left spine under grand:
// rotate right around it, then the promoted node turns black and the
// demoted grandparent red, preserving the black count on every path.
func (t *Tree[T]) liftLeft(grand *Node[T]) *Node[T] {
	top := t.rotateRight(grand)
	top.color = Black
	top.right.color = Red
	return top
}

// liftRight is the mirror of liftLeft for the right spine.
func (t *Tree[T]) liftRight(grand *Node[T]) *Node[T] {
	top := t.rotateLeft(grand)
	top.color = Black
	top.left.color = Red
	return top
}

// rotateLeft lifts x's right child above x and returns it:
//
//	      P                P
//	      |                |
//	      x                y
//	     / \              / \
//	    A   y     →      x   C
//	       / \          / \
//	      B   C        A   B
//
// Only the links of x, y and the transplanted child B change; ordering
// is untouched. If x was the root, y becomes the new root.
func (t *Tree[T]) rotateLeft(x *Node[T]) *Node[T] {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	return y
}

// rotateRight is the mirror image of rotateLeft, pivoting on the left
// child.
func (t *Tree[T]) rotateRight(y *Node[T]) *Node[T] {
	x := y.left
	y.left = x.right
	if x.right != nil {
		x.right.parent = y
	}
	x.parent = y.parent
	if y.parent == nil {
		t.root = x
	} else if y == y.parent.right {
		y.parent.right = x
	} else {
		y.parent.left = x
	}
	x.right = y
	y.parent = x
	return x
}
