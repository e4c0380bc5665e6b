package bst

import (
	"github.com/npillmayer/linkage/maybe"
	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree. Create trees with New, NewEmpty or
// NewFunc; the zero value is not usable, as it lacks a comparator.
type Tree[T any] struct {
	root *node[T]
	cmp  func(a, b T) int
	size int
}

// New creates a tree with a single root node holding value.
func New[T constraints.Ordered](value T) *Tree[T] {
	tree := NewEmpty[T]()
	tree.root = newNode(value)
	tree.size = 1
	return tree
}

// NewEmpty creates a tree without any nodes.
func NewEmpty[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: compare[T]}
}

// NewFunc creates a tree for element types which are not ordered by Go's
// comparison operators. cmp has to return a negative number if a < b, a
// positive number if a > b, and 0 if a and b are to be considered equal.
// Values which cmp reports as equal are stored only once.
//
// Initial values are added in order:
//
//     tree := bst.NewFunc(byName, alice, bob, carol)   // alice is root
//
func NewFunc[T any](cmp func(a, b T) int, values ...T) *Tree[T] {
	assertThat(cmp != nil, "comparator for tree may not be nil")
	tree := &Tree[T]{cmp: cmp}
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// --- API -------------------------------------------------------------------

// Len returns the number of values in the tree.
func (tree *Tree[T]) Len() int {
	return tree.size
}

// IsEmpty is true for a tree without a root.
func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Add inserts value into the tree. If the tree is empty, value becomes the root.
// If an equal value is already present, the tree is left unchanged.
func (tree *Tree[T]) Add(value T) {
	tree.Insert(value)
}

// Insert is like Add, but reports whether a new node has been created.
func (tree *Tree[T]) Insert(value T) bool {
	s, found := tree.locate(value)
	if found {
		tracer().Debugf("insert: %v already present", value)
		return false
	}
	*s = newNode(value)
	tree.size++
	tracer().Debugf("insert: added %v, size=%d", value, tree.size)
	return true
}

// Get looks up value and returns the value stored in the tree, if any.
func (tree *Tree[T]) Get(value T) maybe.Maybe[T] {
	v, found := tree.Find(value)
	return maybe.From(v, found)
}

// Find is the comma-ok flavour of Get.
func (tree *Tree[T]) Find(value T) (T, bool) {
	if s, found := tree.locate(value); found {
		return (*s).value, true
	}
	var none T
	return none, false
}

// Contains is true if a value equal to value is stored in the tree.
func (tree *Tree[T]) Contains(value T) bool {
	_, found := tree.locate(value)
	return found
}

// Min returns the smallest value of the tree, or Nothing for an empty tree.
func (tree *Tree[T]) Min() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just((*leftmost(&tree.root)).value)
}

// Max returns the largest value of the tree, or Nothing for an empty tree.
func (tree *Tree[T]) Max() maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just((*rightmost(&tree.root)).value)
}

// Delete removes value from the tree. Deleting a value not present is a no-op.
func (tree *Tree[T]) Delete(value T) {
	tree.Remove(value)
}

// Remove is like Delete, but reports whether a value has been removed.
//
// Removal distinguishes three cases for the node n holding value:
//
// 1. n is a leaf: the slot holding n is cleared.
//
// 2. n has a single child: the child replaces n in n's slot, i.e. the child's
// subtree moves up one level.
//
// 3. n has two children: the leftmost node of n's right subtree (the in-order
// successor of n) is unlinked from its own slot using case 1 or 2 (it has no
// left child), and its value is copied into n. n stays where it is.
func (tree *Tree[T]) Remove(value T) bool {
	s, found := tree.locate(value)
	if !found {
		tracer().Debugf("delete: %v not present", value)
		return false
	}
	n := *s
	switch {
	case n.left == nil: // case 1 and case 2 with right child only
		tracer().Debugf("delete: %v has at most a right child", n.value)
		*s = n.right
	case n.right == nil: // case 2 with left child only
		tracer().Debugf("delete: %v has only a left child", n.value)
		*s = n.left
	default:
		succSlot := leftmost(&n.right)
		succ := *succSlot
		tracer().Debugf("delete: %v has two children, successor is %v", n.value, succ.value)
		assertThat(succ.left == nil, "in-order successor %v has a left child", succ.value)
		*succSlot = succ.right
		n.value = succ.value
		n = succ // successor node is the one to release
	}
	n.release()
	tree.size--
	return true
}

// Clear releases every node of the tree, leaving an empty tree.
func (tree *Tree[T]) Clear() {
	var released int
	tree.postOrder(func(n *node[T]) bool {
		n.release()
		released++
		return true
	})
	tracer().Debugf("clear: released %d nodes", released)
	tree.root = nil
	tree.size = 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (tree *Tree[T]) Height() int {
	if tree.root == nil {
		return 0
	}
	type entry struct {
		n     *node[T]
		depth int
	}
	height := 0
	stack := []entry{{tree.root, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.depth > height {
			height = e.depth
		}
		if e.n.left != nil {
			stack = append(stack, entry{e.n.left, e.depth + 1})
		}
		if e.n.right != nil {
			stack = append(stack, entry{e.n.right, e.depth + 1})
		}
	}
	return height
}

// --- Internals -------------------------------------------------------------

// locate walks from the root along the ordering of value. It returns the slot
// holding the node equal to value and found=true, or the empty slot where a
// node for value would have to be linked and found=false.
func (tree *Tree[T]) locate(value T) (**node[T], bool) {
	s := &tree.root
	for *s != nil {
		c := tree.cmp(value, (*s).value)
		switch {
		case c == 0:
			return s, true
		case c < 0:
			s = &(*s).left
		default:
			s = &(*s).right
		}
	}
	return s, false
}
