package rbtree

import (
	"iter"
)

// InOrder yields the stored values in ascending order.
func (t *Tree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := []*Node[T]{}
		current := t.root
		for current != nil || len(stack) > 0 {

			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.value) {
				return
			}

			current = current.right
		}
	}
}

// PreOrder yields each value before the values of its subtrees.
func (t *Tree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if t.root == nil {
			return
		}
		stack := []*Node[T]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.value) {
				return
			}

			// Right is pushed first so the left subtree is visited first.
			if n.right != nil {
				stack = append(stack, n.right)
			}
			if n.left != nil {
				stack = append(stack, n.left)
			}
		}
	}
}

// PostOrder yields each value after the values of its subtrees.
func (t *Tree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*Node[T]
		var last *Node[T]
		current := t.root
		for current != nil || len(stack) > 0 {

			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			n := stack[len(stack)-1]
			if n.right != nil && last != n.right {
				current = n.right
				continue
			}

			if !yield(n.value) {
				return
			}

			last = n
			stack = stack[:len(stack)-1]
		}
	}
}
