// Package chain provides a fluent wrapper around a plain value for building
// method-position chains of context-aware steps.
//
// It puts apply.Apply into method position behind a Chain[T] type, so a
// sequence of transformations reads as a suffix chain instead of a stack of
// named intermediates.
//
// Key operations:
// - Start: begin a chain from a value and a context
// - To: move to a new value type via a function (free function)
// - ToTry: call a function (U, error) and end the chain with both
// - Apply: apply a same-type function in method position
// - Ensure: run side effects without changing the value
// - Finally: collapse the chain into a final value
//
// For chains that do not need a context, see package tiny.
package chain
