package tri

import (
	"strings"
	"testing"
)

func TestIdentity_ReturnsArgument(t *testing.T) {
	t.Parallel()
	if got := Identity(42); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := Identity("x"); got != "x" {
		t.Fatalf("expected %q, got %q", "x", got)
	}
}

func TestCompose_AppliesInnerFirst(t *testing.T) {
	t.Parallel()
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	if got := Compose(double, inc)(5); got != 12 {
		t.Fatalf("expected Compose(double, inc)(5) == double(inc(5)) == 12, got %d", got)
	}
	if got := Compose(inc, double)(5); got != 11 {
		t.Fatalf("expected Compose(inc, double)(5) == inc(double(5)) == 11, got %d", got)
	}
}

func TestCompose_IdentityIsNeutral(t *testing.T) {
	t.Parallel()
	if got := Compose[string](strings.ToUpper, Identity[string])("go"); got != "GO" {
		t.Fatalf("expected %q, got %q", "GO", got)
	}
	if got := Compose[string](Identity[string], strings.ToUpper)("go"); got != "GO" {
		t.Fatalf("expected %q, got %q", "GO", got)
	}
}
