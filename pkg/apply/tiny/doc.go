// Package tiny provides a minimal fluent Chain[T] for method-position
// application of plain functions, without contexts.
//
// It parallels the chain package but keeps the API surface very small:
// - From: create a Chain from a value
// - Apply/Tap: apply a same-type function or run a side effect
// - RepeatUntil/While: loop a step against a predicate
// - To/Finally: switch value type or collapse to a final value
//
// Tiny is ideal for small transformations or tests where lightweight
// chaining improves readability without pulling in context plumbing.
package tiny
