/*
Package slist implements a singly linked list.

A list owns its head node; every node owns its successor. In addition the list
keeps a reference to its tail node and a size counter, which makes appending,
prepending and removing the first element O(1). Removing the last element needs
a scan from the head, as nodes do not know their predecessors.

	list := slist.NewEmpty[int]()
	list.Push(20)      // [20]
	list.Push(30)      // [20 30]
	list.Insert(10)    // [10 20 30]
	list.Pop()         // [10 20]
	list.GetLast()     // Just(20)

Operations never fail: removing from an empty list or indexing beyond the end
of a list is a no-op, and accessors return maybe.Nothing in these cases.

A list is owned by a single goroutine; it does no locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slist

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkage.slist'.
func tracer() tracing.Trace {
	return tracing.Select("linkage.slist")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("slist: "+msg, msgargs...)
		panic(msg)
	}
}
