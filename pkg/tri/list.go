package tri

import (
	"iter"
	"reflect"
)

// List is an ordered container over exactly three distinct element types.
// Elements of all three types share a single insertion-order sequence, and
// each type owns an independent modifier chain that is applied to its
// elements whenever they are read. Stored payloads are never rewritten.
//
// Per-type operations go through the typed rails returned by First, Second
// and Third. A List is not safe for concurrent use.
type List[T1, T2, T3 any] struct {
	slots  []Value[T1, T2, T3]
	counts [3]int
	mods1  chain[T1]
	mods2  chain[T2]
	mods3  chain[T3]
}

// New returns an empty list. It panics when T1, T2 and T3 are not pairwise
// distinct, because duplicated element types would leave per-type operations
// without one unambiguous target.
func New[T1, T2, T3 any]() *List[T1, T2, T3] {
	mustBeDistinct[T1, T2, T3]()
	return &List[T1, T2, T3]{}
}

// Of returns a list pre-populated with the given tagged values, preserving
// their order. Like New, it panics when the element types are not pairwise
// distinct.
func Of[T1, T2, T3 any](vs ...Value[T1, T2, T3]) *List[T1, T2, T3] {
	l := New[T1, T2, T3]()
	l.Append(vs...)
	return l
}

// Append adds already-tagged values to the end of the sequence. Modifier
// chains are not consulted and not changed.
func (l *List[T1, T2, T3]) Append(vs ...Value[T1, T2, T3]) {
	l.slots = append(l.slots, vs...)
	for _, v := range vs {
		l.counts[v.tag]++
	}
}

// Len reports how many elements the list holds across all three types.
func (l *List[T1, T2, T3]) Len() int {
	return len(l.slots)
}

// Values iterates over every element in insertion order. Each element is
// produced by running its stored payload through the chain registered for
// its type at the moment it is yielded, so a Modify or Reset between pulls
// shows up in the elements still to come. The sequence may be ranged over
// any number of times; elements appended while iterating are reached once
// the iteration gets to them.
func (l *List[T1, T2, T3]) Values() iter.Seq[Value[T1, T2, T3]] {
	return func(yield func(Value[T1, T2, T3]) bool) {
		for i := 0; i < len(l.slots); i++ {
			if !yield(l.modified(l.slots[i])) {
				return
			}
		}
	}
}

// All is like Values but also yields each element's position in the
// sequence.
func (l *List[T1, T2, T3]) All() iter.Seq2[int, Value[T1, T2, T3]] {
	return func(yield func(int, Value[T1, T2, T3]) bool) {
		for i := 0; i < len(l.slots); i++ {
			if !yield(i, l.modified(l.slots[i])) {
				return
			}
		}
	}
}

// Backward iterates from the most recently appended element back to the
// oldest, applying live chains just like Values.
func (l *List[T1, T2, T3]) Backward() iter.Seq[Value[T1, T2, T3]] {
	return func(yield func(Value[T1, T2, T3]) bool) {
		for i := len(l.slots) - 1; i >= 0; i-- {
			if !yield(l.modified(l.slots[i])) {
				return
			}
		}
	}
}

// modified returns a copy of v with the payload run through its type's
// current chain.
func (l *List[T1, T2, T3]) modified(v Value[T1, T2, T3]) Value[T1, T2, T3] {
	switch v.tag {
	case TagFirst:
		v.first = l.mods1.apply(v.first)
	case TagSecond:
		v.second = l.mods2.apply(v.second)
	case TagThird:
		v.third = l.mods3.apply(v.third)
	}
	return v
}

func mustBeDistinct[T1, T2, T3 any]() {
	t1 := reflect.TypeFor[T1]()
	t2 := reflect.TypeFor[T2]()
	t3 := reflect.TypeFor[T3]()
	if t1 == t2 || t1 == t3 || t2 == t3 {
		panic("tri: element types must be pairwise distinct")
	}
}
