package tri

import (
	"fmt"
	"testing"
)

func TestConstructors_TagEachSlot(t *testing.T) {
	t.Parallel()
	f := First[int, string, bool](7)
	if f.Tag() != TagFirst || !f.IsFirst() || f.IsSecond() || f.IsThird() {
		t.Fatalf("expected first-slot value, got tag=%v", f.Tag())
	}
	if f.First() != 7 {
		t.Fatalf("expected payload 7, got %v", f.First())
	}

	s := Second[int, string, bool]("hi")
	if s.Tag() != TagSecond || !s.IsSecond() {
		t.Fatalf("expected second-slot value, got tag=%v", s.Tag())
	}
	if s.Second() != "hi" {
		t.Fatalf("expected payload %q, got %q", "hi", s.Second())
	}

	b := Third[int, string, bool](true)
	if b.Tag() != TagThird || !b.IsThird() {
		t.Fatalf("expected third-slot value, got tag=%v", b.Tag())
	}
	if !b.Third() {
		t.Fatalf("expected payload true, got %v", b.Third())
	}
}

func TestAccessors_ZeroForOtherSlots(t *testing.T) {
	t.Parallel()
	s := Second[int, string, bool]("x")
	if s.First() != 0 {
		t.Fatalf("expected zero int from a second-slot value, got %d", s.First())
	}
	if s.Third() {
		t.Fatalf("expected zero bool from a second-slot value, got true")
	}
}

func TestZeroValue_ReadsAsFirstSlot(t *testing.T) {
	t.Parallel()
	var v Value[int, string, bool]
	if !v.IsFirst() || v.First() != 0 {
		t.Fatalf("expected zero value tagged first with zero payload, got tag=%v val=%d", v.Tag(), v.First())
	}
}

func TestVisit_DispatchesOnTag(t *testing.T) {
	t.Parallel()
	var hit string
	onFirst := func(int) { hit = "first" }
	onSecond := func(string) { hit = "second" }
	onThird := func(bool) { hit = "third" }

	First[int, string, bool](1).Visit(onFirst, onSecond, onThird)
	if hit != "first" {
		t.Fatalf("expected first callback, got %q", hit)
	}

	Second[int, string, bool]("a").Visit(onFirst, onSecond, onThird)
	if hit != "second" {
		t.Fatalf("expected second callback, got %q", hit)
	}

	Third[int, string, bool](true).Visit(onFirst, onSecond, onThird)
	if hit != "third" {
		t.Fatalf("expected third callback, got %q", hit)
	}
}

func TestVisit_NilCallbacksAreSafe(t *testing.T) {
	t.Parallel()
	First[int, string, bool](1).Visit(nil, nil, nil)
	Second[int, string, bool]("a").Visit(nil, nil, nil)
	Third[int, string, bool](true).Visit(nil, nil, nil)
}

func TestMatch_ReducesEachSlot(t *testing.T) {
	t.Parallel()
	describe := func(v Value[int, string, bool]) string {
		return Match(v,
			func(n int) string { return fmt.Sprintf("int:%d", n) },
			func(s string) string { return "str:" + s },
			func(b bool) string { return fmt.Sprintf("bool:%v", b) },
		)
	}

	if got := describe(First[int, string, bool](3)); got != "int:3" {
		t.Fatalf("expected %q, got %q", "int:3", got)
	}
	if got := describe(Second[int, string, bool]("a")); got != "str:a" {
		t.Fatalf("expected %q, got %q", "str:a", got)
	}
	if got := describe(Third[int, string, bool](true)); got != "bool:true" {
		t.Fatalf("expected %q, got %q", "bool:true", got)
	}
}

func TestString_NamesTagAndPayload(t *testing.T) {
	t.Parallel()
	if got := First[int, string, bool](5).String(); got != "first(5)" {
		t.Fatalf("expected %q, got %q", "first(5)", got)
	}
	if got := Second[int, string, bool]("a").String(); got != "second(a)" {
		t.Fatalf("expected %q, got %q", "second(a)", got)
	}
	if got := Third[int, string, bool](true).String(); got != "third(true)" {
		t.Fatalf("expected %q, got %q", "third(true)", got)
	}
}

func TestTagString_KnownAndUnknown(t *testing.T) {
	t.Parallel()
	if TagFirst.String() != "first" || TagSecond.String() != "second" || TagThird.String() != "third" {
		t.Fatalf("unexpected tag names: %v %v %v", TagFirst, TagSecond, TagThird)
	}
	if got := Tag(9).String(); got != "tri.Tag(9)" {
		t.Fatalf("expected %q, got %q", "tri.Tag(9)", got)
	}
}
