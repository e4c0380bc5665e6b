package slist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/linkage/maybe"
)

// List is a singly linked list of comparable values.
//
// Invariants:
//   - following next-links from head reaches tail in exactly size-1 steps
//   - tail.next is nil
//   - size is 0 if and only if head and tail are nil
//
// The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *node[T] // owns the chain of nodes
	tail *node[T] // last node of the chain, owned by its predecessor (or head)
	size int
}

type node[T comparable] struct {
	value T
	next  *node[T]
}

// release clears a node which has been unlinked from its list.
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
}

// New creates a list with a single element.
func New[T comparable](value T) *List[T] {
	n := &node[T]{value: value}
	return &List[T]{head: n, tail: n, size: 1}
}

// NewEmpty creates a list without elements.
func NewEmpty[T comparable]() *List[T] {
	return &List[T]{}
}

// From creates a list containing values in the given order.
func From[T comparable](values ...T) *List[T] {
	list := NewEmpty[T]()
	for _, v := range values {
		list.Push(v)
	}
	return list
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements.
func (list *List[T]) Len() int {
	return list.size
}

// IsEmpty is true for a list without elements.
func (list *List[T]) IsEmpty() bool {
	return list.size == 0
}

// Push appends value at the end of the list in O(1).
func (list *List[T]) Push(value T) {
	n := &node[T]{value: value}
	if list.tail == nil {
		list.head, list.tail = n, n
	} else {
		assertThat(list.tail.next == nil, "tail %v has a successor", list.tail.value)
		list.tail.next = n
		list.tail = n
	}
	list.size++
	tracer().Debugf("push: appended %v, size=%d", value, list.size)
}

// Insert prepends value at the start of the list in O(1).
func (list *List[T]) Insert(value T) {
	list.head = &node[T]{value: value, next: list.head}
	if list.tail == nil {
		list.tail = list.head
	}
	list.size++
	tracer().Debugf("insert: prepended %v, size=%d", value, list.size)
}

// Pop removes the last element and returns it. Finding the new tail needs a
// scan from the head, so Pop is O(n). Popping from an empty list returns Nothing.
func (list *List[T]) Pop() maybe.Maybe[T] {
	if list.size == 0 {
		return maybe.Nothing[T]()
	}
	if list.head == list.tail {
		return maybe.Just(list.removeSingle())
	}
	prev := list.head
	for prev.next != list.tail {
		prev = prev.next
	}
	return maybe.Just(list.unlinkAfter(prev))
}

// RemoveFirst removes the first element in O(1) and returns it. On an empty
// list it returns Nothing.
func (list *List[T]) RemoveFirst() maybe.Maybe[T] {
	if list.size == 0 {
		return maybe.Nothing[T]()
	}
	if list.head == list.tail {
		return maybe.Just(list.removeSingle())
	}
	first := list.head
	value := first.value
	list.head = first.next
	first.release()
	list.size--
	tracer().Debugf("remove first: removed %v, size=%d", value, list.size)
	return maybe.Just(value)
}

// RemoveData removes the first element (counting from the head) equal to value.
// It reports whether an element has been removed.
func (list *List[T]) RemoveData(value T) bool {
	if list.size == 0 {
		return false
	}
	if list.head.value == value {
		list.RemoveFirst()
		return true
	}
	prev := list.head // trailing pointer
	for cur := prev.next; cur != nil; prev, cur = cur, cur.next {
		if cur.value == value {
			list.unlinkAfter(prev)
			return true
		}
	}
	tracer().Debugf("remove data: %v not found", value)
	return false
}

// RemoveAt removes the element at position index (0-based) and returns it.
// For an index out of range the list is left unchanged and Nothing is returned.
func (list *List[T]) RemoveAt(index int) maybe.Maybe[T] {
	if index < 0 || index >= list.size {
		tracer().Debugf("remove at: index %d out of range [0…%d)", index, list.size)
		return maybe.Nothing[T]()
	}
	switch index {
	case 0:
		return list.RemoveFirst()
	case list.size - 1:
		return list.Pop()
	}
	prev := list.head
	for i := 1; i < index; i++ {
		prev = prev.next
	}
	return maybe.Just(list.unlinkAfter(prev))
}

// GetFirst returns the first element, or Nothing for an empty list.
func (list *List[T]) GetFirst() maybe.Maybe[T] {
	if list.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(list.head.value)
}

// GetLast returns the last element in O(1), or Nothing for an empty list.
func (list *List[T]) GetLast() maybe.Maybe[T] {
	if list.tail == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(list.tail.value)
}

// Get returns the element at position index (0-based), or Nothing if index is
// out of range. The first and the last element are found in O(1).
func (list *List[T]) Get(index int) maybe.Maybe[T] {
	v, ok := list.At(index)
	return maybe.From(v, ok)
}

// At is the comma-ok flavour of Get.
func (list *List[T]) At(index int) (T, bool) {
	if n := list.nodeAt(index); n != nil {
		return n.value, true
	}
	var none T
	return none, false
}

// IndexOf returns the position of the first element equal to value, or -1.
func (list *List[T]) IndexOf(value T) int {
	i := 0
	for n := list.head; n != nil; n = n.next {
		if n.value == value {
			return i
		}
		i++
	}
	return -1
}

// Contains is true if an element equal to value is part of the list.
func (list *List[T]) Contains(value T) bool {
	return list.IndexOf(value) >= 0
}

// All returns the elements from head to tail. The list must not be modified
// while the sequence is being ranged over.
func (list *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := list.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns a copy of the elements as a slice.
func (list *List[T]) Values() []T {
	vals := make([]T, 0, list.size)
	for n := list.head; n != nil; n = n.next {
		vals = append(vals, n.value)
	}
	return vals
}

// Clear releases all nodes, leaving an empty list.
func (list *List[T]) Clear() {
	n := list.head
	for n != nil {
		next := n.next
		n.release()
		n = next
	}
	tracer().Debugf("clear: released %d nodes", list.size)
	list.head, list.tail, list.size = nil, nil, 0
}

func (list *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := list.head; n != nil; n = n.next {
		if n != list.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// --- Internals -------------------------------------------------------------

// removeSingle empties a list holding exactly one node and returns its value.
func (list *List[T]) removeSingle() T {
	assertThat(list.size == 1, "single-node removal from list of size %d", list.size)
	n := list.head
	value := n.value
	n.release()
	list.head, list.tail, list.size = nil, nil, 0
	tracer().Debugf("removed last remaining element %v", value)
	return value
}

// unlinkAfter removes the successor of prev, re-linking prev to the node after it.
// If the successor is the tail, prev becomes the new tail.
func (list *List[T]) unlinkAfter(prev *node[T]) T {
	victim := prev.next
	assertThat(victim != nil, "no node to unlink after %v", prev.value)
	prev.next = victim.next
	if victim == list.tail {
		list.tail = prev
	}
	value := victim.value
	victim.release()
	list.size--
	tracer().Debugf("unlinked %v after %v, size=%d", value, prev.value, list.size)
	return value
}

func (list *List[T]) nodeAt(index int) *node[T] {
	switch {
	case index < 0 || index >= list.size:
		return nil
	case index == 0:
		return list.head
	case index == list.size-1:
		return list.tail
	}
	n := list.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}
