package bst

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// String renders the shape of the tree, mainly for debugging. Left children are
// tagged with '<', right children with '>'.
//
//     Tree(len=3, height=2)
//     (10)
//     ├── [<]  (5)
//     └── [>]  (15)
//
func (tree *Tree[T]) String() string {
	header := fmt.Sprintf("Tree(len=%d, height=%d)\n", tree.size, tree.Height())
	if tree.root == nil {
		return header
	}
	type pending struct {
		n      *node[T]
		branch tp.Tree
	}
	printer := tp.New()
	printer.SetValue(tree.root.String())
	stack := []pending{{tree.root, printer}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, ch := range [...]struct {
			n   *node[T]
			tag string
		}{{p.n.left, "<"}, {p.n.right, ">"}} {
			if ch.n == nil {
				continue
			}
			if ch.n.isLeaf() {
				p.branch.AddMetaNode(ch.tag, ch.n.String())
				continue
			}
			stack = append(stack, pending{ch.n, p.branch.AddMetaBranch(ch.tag, ch.n.String())})
		}
	}
	return header + printer.String()
}
