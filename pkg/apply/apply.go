package apply

// Apply calls f with v and returns whatever f returns.
//
// It is the method-position form of ordinary function application: where a
// method chain would otherwise be broken by a top-level function, the call
// site stays a suffix of the previous expression. Apply never inspects,
// wraps, or transforms the result, and it installs no error handling of its
// own: an error value returned through U travels untouched, and a panic
// inside f unwinds straight to the caller.
//
// Apply invokes f exactly once, synchronously. The value is handed over to
// f; when v is a single-use resource (an owned connection, a consumed
// reader), the caller must not use v after the call.
func Apply[T, U any](v T, f func(T) U) U {
	return f(v)
}

// Try is Apply for functions that follow the (value, error) convention.
// Both return values of f are passed through verbatim.
func Try[T, U any](v T, f func(T) (U, error)) (U, error) {
	return f(v)
}

// Tap calls effect with v and returns v unchanged. It exists for side
// effects in the middle of an expression, like logging an intermediate
// value.
func Tap[T any](v T, effect func(T)) T {
	effect(v)
	return v
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}
