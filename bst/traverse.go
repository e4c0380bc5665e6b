package bst

import "iter"

// Traversals come in two flavours: visitor functions called once per value,
// and lazy sequences for range-over-func. Both are synchronous and read-only;
// the tree must not be modified while a traversal is in progress.

// InOrder calls visit for every value of the tree in ascending order
// (left subtree, node, right subtree).
func (tree *Tree[T]) InOrder(visit func(T)) {
	tree.inOrder(func(n *node[T]) bool {
		visit(n.value)
		return true
	})
}

// PreOrder calls visit for every value of the tree, visiting a node before
// its left and right subtrees.
func (tree *Tree[T]) PreOrder(visit func(T)) {
	tree.preOrder(func(n *node[T]) bool {
		visit(n.value)
		return true
	})
}

// PostOrder calls visit for every value of the tree, visiting a node after
// its left and right subtrees.
func (tree *Tree[T]) PostOrder(visit func(T)) {
	tree.postOrder(func(n *node[T]) bool {
		visit(n.value)
		return true
	})
}

// All returns the values of the tree in ascending order. It is a synonym for
// InOrderSeq.
//
//     for v := range tree.All() {
//         …
//     }
func (tree *Tree[T]) All() iter.Seq[T] {
	return tree.InOrderSeq()
}

// InOrderSeq returns a sequence of the values of the tree in in-order.
// The sequence may be ranged over more than once; each range starts a fresh walk.
func (tree *Tree[T]) InOrderSeq() iter.Seq[T] {
	return seq(tree.inOrder)
}

// PreOrderSeq returns a sequence of the values of the tree in pre-order.
func (tree *Tree[T]) PreOrderSeq() iter.Seq[T] {
	return seq(tree.preOrder)
}

// PostOrderSeq returns a sequence of the values of the tree in post-order.
func (tree *Tree[T]) PostOrderSeq() iter.Seq[T] {
	return seq(tree.postOrder)
}

func seq[T any](walk func(func(*node[T]) bool) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(func(n *node[T]) bool {
			return yield(n.value)
		})
	}
}

// --- Walkers ---------------------------------------------------------------

// The walkers below use an explicit stack, as an unbalanced tree may be as
// deep as it has nodes. Each of them stops as soon as fn returns false and
// then returns false itself.

func (tree *Tree[T]) inOrder(fn func(*node[T]) bool) bool {
	var stack []*node[T]
	n := tree.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return false
		}
		n = n.right
	}
	return true
}

func (tree *Tree[T]) preOrder(fn func(*node[T]) bool) bool {
	if tree.root == nil {
		return true
	}
	stack := []*node[T]{tree.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return false
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return true
}

// postOrder never touches a node again after fn has been called for it,
// therefore fn may release the node.
func (tree *Tree[T]) postOrder(fn func(*node[T]) bool) bool {
	var stack []*node[T]
	var last *node[T] // node most recently handed to fn
	n := tree.root
	for n != nil || len(stack) > 0 {
		if n != nil {
			stack = append(stack, n)
			n = n.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			n = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		if !fn(top) {
			return false
		}
		last = top
	}
	return true
}
