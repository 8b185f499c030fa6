package tiny

import (
	"github.com/ib-77/apply/pkg/apply"
)

type Chain[T any] struct {
	v T
}

func From[T any](v T) Chain[T] {
	return Chain[T]{v: v}
}

func (c Chain[T]) Value() T {
	return c.v
}

// Apply applies a same-type function in method position.
func (c Chain[T]) Apply(f func(t T) T) Chain[T] {
	return Chain[T]{v: apply.Apply(c.v, f)}
}

// Tap runs a side effect and keeps the value.
func (c Chain[T]) Tap(effect func(t T)) Chain[T] {
	return Chain[T]{v: apply.Tap(c.v, effect)}
}

// RepeatUntil applies f repeatedly until the predicate holds for the
// current value. f always runs at least once.
func (c Chain[T]) RepeatUntil(f func(t T) T, until func(t T) bool) Chain[T] {
	for {
		c = c.Apply(f)

		if until(c.v) {
			return c
		}
	}
}

// While applies f as long as the predicate holds for the current value.
// f may not run at all.
func (c Chain[T]) While(f func(t T) T, while func(t T) bool) Chain[T] {
	for while(c.v) {
		c = c.Apply(f)
	}
	return c
}

// To moves the chain to a new value type.
func To[T, U any](c Chain[T], f func(t T) U) Chain[U] {
	return Chain[U]{v: apply.Apply(c.v, f)}
}

// Finally collapses the chain to a final value.
func Finally[T, U any](c Chain[T], f func(t T) U) U {
	return apply.Apply(c.v, f)
}
