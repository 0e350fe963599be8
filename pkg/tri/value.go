package tri

import "fmt"

// Tag discriminates which of the three element types a Value holds.
type Tag uint8

const (
	TagFirst Tag = iota
	TagSecond
	TagThird
)

func (t Tag) String() string {
	switch t {
	case TagFirst:
		return "first"
	case TagSecond:
		return "second"
	case TagThird:
		return "third"
	}
	return fmt.Sprintf("tri.Tag(%d)", uint8(t))
}

// Value is a tagged union over the three element types of a list. Exactly
// one payload is populated and the tag always names it. The zero Value reads
// as a first-slot element holding the zero value of T1.
type Value[T1, T2, T3 any] struct {
	tag    Tag
	first  T1
	second T2
	third  T3
}

// First wraps v as a first-slot tagged value.
func First[T1, T2, T3 any](v T1) Value[T1, T2, T3] {
	return Value[T1, T2, T3]{tag: TagFirst, first: v}
}

// Second wraps v as a second-slot tagged value.
func Second[T1, T2, T3 any](v T2) Value[T1, T2, T3] {
	return Value[T1, T2, T3]{tag: TagSecond, second: v}
}

// Third wraps v as a third-slot tagged value.
func Third[T1, T2, T3 any](v T3) Value[T1, T2, T3] {
	return Value[T1, T2, T3]{tag: TagThird, third: v}
}

func (v Value[T1, T2, T3]) Tag() Tag {
	return v.tag
}

func (v Value[T1, T2, T3]) IsFirst() bool {
	return v.tag == TagFirst
}

func (v Value[T1, T2, T3]) IsSecond() bool {
	return v.tag == TagSecond
}

func (v Value[T1, T2, T3]) IsThird() bool {
	return v.tag == TagThird
}

// First returns the first-slot payload, or the zero value of T1 when the
// value is tagged otherwise.
func (v Value[T1, T2, T3]) First() T1 {
	return v.first
}

// Second returns the second-slot payload, or the zero value of T2 when the
// value is tagged otherwise.
func (v Value[T1, T2, T3]) Second() T2 {
	return v.second
}

// Third returns the third-slot payload, or the zero value of T3 when the
// value is tagged otherwise.
func (v Value[T1, T2, T3]) Third() T3 {
	return v.third
}

// Visit calls the callback matching the value's tag. Nil callbacks are
// skipped.
func (v Value[T1, T2, T3]) Visit(onFirst func(T1), onSecond func(T2), onThird func(T3)) {
	switch v.tag {
	case TagSecond:
		if onSecond != nil {
			onSecond(v.second)
		}
	case TagThird:
		if onThird != nil {
			onThird(v.third)
		}
	default:
		if onFirst != nil {
			onFirst(v.first)
		}
	}
}

func (v Value[T1, T2, T3]) String() string {
	switch v.tag {
	case TagSecond:
		return fmt.Sprintf("second(%v)", v.second)
	case TagThird:
		return fmt.Sprintf("third(%v)", v.third)
	}
	return fmt.Sprintf("first(%v)", v.first)
}

// Match reduces a tagged value to a single result by dispatching on its tag.
func Match[T1, T2, T3, R any](v Value[T1, T2, T3],
	onFirst func(T1) R, onSecond func(T2) R, onThird func(T3) R) R {

	switch v.tag {
	case TagSecond:
		return onSecond(v.second)
	case TagThird:
		return onThird(v.third)
	default:
		return onFirst(v.first)
	}
}
