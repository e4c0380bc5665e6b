/*
Package bst implements an unbalanced binary search tree over an ordered element type.

Every node owns up to two children: all values reachable through the left child
compare less than the node's value, all values reachable through the right child
compare greater. Duplicates are not stored; adding a value already present is a
no-op. The tree never rebalances, so its height depends on insertion order and
may degenerate to O(n) for sorted input. For that reason all walks through the
tree are iterative.

	tree := bst.New(10)
	tree.Add(5)
	tree.Add(15)
	tree.InOrder(func(v int) { fmt.Println(v) })   // 5 10 15
	for v := range tree.PreOrderSeq() { … }         // 10 5 15

Absence is never an error: Get returns maybe.Nothing, Delete of a value not
present leaves the tree untouched.

A tree is owned by a single goroutine. Clients sharing a tree between goroutines
have to serialize access themselves. Visitor functions and iterators must not
modify the tree they are walking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkage.bst'.
func tracer() tracing.Trace {
	return tracing.Select("linkage.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
