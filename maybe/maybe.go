package maybe

import "fmt"

/*
A Maybe is the answer of every accessor in this module which may come up empty:
looking up a value in a tree, reading the first element of a list, indexing past
the end of a list. Absence is a value, not an error.

	v := list.GetFirst()
	var first int
	switch m := v.Match(); m {
	case m.Just(&first):
		…
	case m.Nothing():
		…
	}

Clients preferring Go's comma-ok idiom may call Get():

	if first, ok := list.GetFirst().Get(); ok { … }
*/

// Maybe holds either a single value of type T (Just) or nothing at all (Nothing).
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// From bridges the comma-ok idiom: From(x, true) is Just(x), From(x, false) is Nothing.
func From[T any](x T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault unwraps a Just or returns def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Get returns the wrapped value and true, or the zero value of T and false.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) String() string {
	if !m.tag {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// AndThen chains a computation which itself may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	return x.Map(f)
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over the two shapes of a Maybe. Exactly one of
// Just(…) and Nothing() returns the matcher itself, the other returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
