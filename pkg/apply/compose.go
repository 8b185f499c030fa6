package apply

// Compose returns the left-to-right composition of f and g, so that
// Compose(f, g)(v) == g(f(v)). Applying the composed function is
// equivalent to applying f and g in sequence:
//
//	Apply(Apply(v, f), g) == Apply(v, Compose(f, g))
func Compose[T, U, V any](f func(T) U, g func(U) V) func(T) V {
	return func(v T) V {
		return g(f(v))
	}
}

// ComposeErr composes two fallible functions left to right. The composed
// function stops at the first error and returns it unchanged.
func ComposeErr[T, U, V any](f func(T) (U, error), g func(U) (V, error)) func(T) (V, error) {
	return func(v T) (V, error) {
		u, err := f(v)
		if err != nil {
			var zero V
			return zero, err
		}
		return g(u)
	}
}

// Pipe applies fns to v in order. All functions share one type; use Apply
// or Compose when the type changes between steps.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Chain folds fns into a single reusable function. Chain(fns...)(v) is
// Pipe(v, fns...).
func Chain[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		return Pipe(v, fns...)
	}
}
