package bst

import "fmt"

// node is a single vertex of a tree. left and right are owning slots: a child
// is reachable from exactly one slot of exactly one parent (or from the root
// slot of the tree).
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[T]) String() string {
	return fmt.Sprintf("(%v)", n.value)
}

// release clears a node which has been unlinked from its tree. Afterwards the
// node neither keeps its former children alive nor hands out its value.
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.left, n.right = nil, nil
}

// A slot is the address of an owning child pointer: either &tree.root or
// &parent.left / &parent.right. Re-linking a subtree means writing to its slot.

// leftmost follows left slots starting at s and returns the slot which holds
// the leftmost node of the subtree. s must not be empty.
func leftmost[T any](s **node[T]) **node[T] {
	assertThat(*s != nil, "leftmost called on empty slot")
	for (*s).left != nil {
		s = &(*s).left
	}
	return s
}

// rightmost is the mirror image of leftmost.
func rightmost[T any](s **node[T]) **node[T] {
	assertThat(*s != nil, "rightmost called on empty slot")
	for (*s).right != nil {
		s = &(*s).right
	}
	return s
}
