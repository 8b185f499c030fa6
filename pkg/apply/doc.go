// Package apply provides a single generic primitive, Apply, that calls an
// arbitrary one-argument function with a value and returns its result, plus
// the small set of combinators that make it useful in chains.
//
// Go has no way to attach a method to every type at once, so Apply is a free
// generic function rather than an extension method; the chain and tiny
// subpackages supply the fluent method-position form.
//
// Highlights:
// - Apply/Try: call a function (or a fallible one) with a value, untouched
// - Tap: run a side effect and keep the value
// - Compose/ComposeErr: left-to-right function composition
// - Pipe/Chain: variadic same-type pipelines, immediate or reusable
// - Identity/Constant: trivial combinators
//
// Apply is deliberately transparent: it never recovers panics, never wraps
// errors, and never copies beyond the ordinary argument pass. Values that
// may only be used once remain safe to push through a chain, provided the
// caller does not touch them again afterwards.
package apply
