package tri

import (
	"iter"
	"slices"
)

// Rail is a typed handle on one of a list's three slots. Every per-type
// operation goes through a rail, so the compiler only admits values and
// modifiers of the exact element type bound to that slot. Methods that
// change the list return the rail itself for fluent chaining.
//
// Rails are obtained from List.First, List.Second and List.Third and stay
// valid for the life of the list. The zero Rail is not usable.
type Rail[T1, T2, T3, T any] struct {
	list *List[T1, T2, T3]
	tag  Tag
	ch   *chain[T]
	get  func(Value[T1, T2, T3]) T
	put  func(T) Value[T1, T2, T3]
}

// First returns the rail for elements of type T1.
func (l *List[T1, T2, T3]) First() Rail[T1, T2, T3, T1] {
	return Rail[T1, T2, T3, T1]{
		list: l,
		tag:  TagFirst,
		ch:   &l.mods1,
		get:  func(v Value[T1, T2, T3]) T1 { return v.first },
		put:  First[T1, T2, T3],
	}
}

// Second returns the rail for elements of type T2.
func (l *List[T1, T2, T3]) Second() Rail[T1, T2, T3, T2] {
	return Rail[T1, T2, T3, T2]{
		list: l,
		tag:  TagSecond,
		ch:   &l.mods2,
		get:  func(v Value[T1, T2, T3]) T2 { return v.second },
		put:  Second[T1, T2, T3],
	}
}

// Third returns the rail for elements of type T3.
func (l *List[T1, T2, T3]) Third() Rail[T1, T2, T3, T3] {
	return Rail[T1, T2, T3, T3]{
		list: l,
		tag:  TagThird,
		ch:   &l.mods3,
		get:  func(v Value[T1, T2, T3]) T3 { return v.third },
		put:  Third[T1, T2, T3],
	}
}

// Push appends raw values to the end of the list, tagged with the rail's
// type. Registered modifiers do not touch the stored payloads.
func (r Rail[T1, T2, T3, T]) Push(vs ...T) Rail[T1, T2, T3, T] {
	for _, v := range vs {
		r.list.slots = append(r.list.slots, r.put(v))
		r.list.counts[r.tag]++
	}
	return r
}

// Modify appends f to the rail's modifier chain. Every later read of an
// element of this type applies f after all modifiers registered before it.
// The other two chains and the stored payloads are unaffected.
func (r Rail[T1, T2, T3, T]) Modify(f Modifier[T]) Rail[T1, T2, T3, T] {
	r.ch.add(f)
	return r
}

// Reset discards the rail's modifier chain, returning reads of this type to
// the identity transformation. The other two chains keep their
// registrations.
func (r Rail[T1, T2, T3, T]) Reset() Rail[T1, T2, T3, T] {
	r.ch.reset()
	return r
}

// View returns a lazy view of this type's elements in their original
// relative order. Elements of the other two types are skipped without being
// computed. Each element is produced only when the consumer pulls it, by
// running the stored payload through the chain registered at that moment: a
// view is a lens over live state, not a snapshot. Ranging over the view
// again replays it against the then-current list.
func (r Rail[T1, T2, T3, T]) View() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(r.list.slots); i++ {
			if r.list.slots[i].tag != r.tag {
				continue
			}
			if !yield(r.ch.apply(r.get(r.list.slots[i]))) {
				return
			}
		}
	}
}

// Collect materializes the current view into a fresh slice. Later Modify,
// Reset or Push calls do not touch the returned slice.
func (r Rail[T1, T2, T3, T]) Collect() []T {
	return slices.Collect(r.View())
}

// Len reports how many elements of the rail's type the list holds.
func (r Rail[T1, T2, T3, T]) Len() int {
	return r.list.counts[r.tag]
}

// Registrations returns the metadata of this type's modifier chain in
// registration order. The returned slice is a copy; Reset empties the
// chain's history.
func (r Rail[T1, T2, T3, T]) Registrations() []Registration {
	return r.ch.history()
}
