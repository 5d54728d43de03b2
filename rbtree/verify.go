package rbtree

import (
	"github.com/pkg/errors"
)

// Verify checks the red-black tree properties:
//  1. The root is black.
//  2. No red node has a red child.
//  3. From every node, each path down to an absent position crosses the
//     same number of black nodes (absent positions count as black).
//  4. An in-order walk visits values in non-decreasing order.
//
// A nil result means the structure is a valid red-black tree. Verify
// exists for tests and debugging: Insert must never leave the tree in a
// state where Verify fails.
func (t *Tree[T]) Verify() error {
	if t.root.Color() != Black {
		return errors.New("root is red")
	}
	if _, err := checkColors(t.root); err != nil {
		return err
	}
	return t.checkOrder()
}

// checkColors returns the black-height of the subtree at node, counting
// the absent positions below it as black.
func checkColors[T any](node *Node[T]) (int, error) {
	if node == nil {
		return 1, nil
	}

	if node.color == Red && (node.left.Color() == Red || node.right.Color() == Red) {
		return 0, errors.Errorf("red node %v has a red child", node.value)
	}

	leftHeight, err := checkColors(node.left)
	if err != nil {
		return 0, err
	}
	rightHeight, err := checkColors(node.right)
	if err != nil {
		return 0, err
	}
	if leftHeight != rightHeight {
		return 0, errors.Errorf("black-height mismatch at %v: left %d, right %d",
			node.value, leftHeight, rightHeight)
	}

	if node.color == Black {
		leftHeight++
	}
	return leftHeight, nil
}

func (t *Tree[T]) checkOrder() error {
	first := true
	var prev T
	for v := range t.InOrder() {
		if !first && t.compare(v, prev) < 0 {
			return errors.Errorf("order violation: %v yielded after %v", v, prev)
		}
		prev = v
		first = false
	}
	return nil
}
