package tri

// Modifier is a pure, type-preserving transformation registered against one
// element type of a list. Modifiers must not depend on outside state that
// changes between reads: the same chain applied to the same payload is
// expected to produce the same result.
type Modifier[T any] func(T) T

// Identity returns its argument unchanged. A rail with no registered
// modifiers behaves exactly as if Identity were registered.
func Identity[T any](v T) T {
	return v
}

// Compose combines two modifiers into one that applies inner first and outer
// second, so Compose(g, f)(x) == g(f(x)).
func Compose[T any](outer, inner Modifier[T]) Modifier[T] {
	return func(v T) T {
		return outer(inner(v))
	}
}
