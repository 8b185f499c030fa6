package chain

import (
	"context"

	"github.com/ib-77/apply/pkg/apply"
)

// Chain carries a value together with a context to enable fluent chaining
// of context-aware steps. The value moves through the chain; callers must
// not keep using a single-use value after handing it to a step.
type Chain[T any] struct {
	ctx   context.Context
	value T
}

// Start creates a new chain from a value.
func Start[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:   ctx,
		value: value,
	}
}

// Value returns the current value of the chain.
func (c *Chain[T]) Value() T {
	return c.value
}

// Context returns the context the chain was started with.
func (c *Chain[T]) Context() context.Context {
	return c.ctx
}

// To applies a function that changes the value type. Go methods cannot
// introduce type parameters, so the heterogeneous step is a free function.
func To[T, U any](c *Chain[T], f func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:   c.ctx,
		value: f(c.ctx, c.value),
	}
}

// ToTry applies a function that may fail. The chain form stops here: the
// result and error are returned as-is, in the (value, error) convention.
func ToTry[T, U any](c *Chain[T], f func(context.Context, T) (U, error)) (U, error) {
	return f(c.ctx, c.value)
}

// Apply applies a same-type function in method position.
func (c *Chain[T]) Apply(f func(context.Context, T) T) *Chain[T] {
	return &Chain[T]{
		ctx:   c.ctx,
		value: f(c.ctx, c.value),
	}
}

// Ensure performs a side effect without changing the value.
func (c *Chain[T]) Ensure(effect func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		value: apply.Tap(c.value, func(v T) {
			effect(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value.
func Finally[T, U any](c *Chain[T], f func(context.Context, T) U) U {
	return f(c.ctx, c.value)
}
