// Package vars provides composable capability wrappers over effectful
// read/write access to an external mutable value.
//
// The package is a thin algebra, not a storage engine. Callers supply the
// effectful actions — a read is a func(context.Context) (T, error), a write
// is a func(context.Context, T) error — and this layer only composes them.
// Whatever the actions close over (a hardware register, a global counter, a
// UI-bound field, a remote cell) stays owned by the caller.
//
// # The three wrappers
//
//   - Gettable[T]: read-only capability around one read action.
//   - Settable[T]: write-only capability around one write action.
//   - Var[T]: a matched Gettable/Settable pair over the same underlying value.
//
// All three are immutable after construction. Every combinator returns a new
// wrapper and never mutates its inputs.
//
// # The combinators
//
// Reads form a covariant functor with an applicative structure: Map, Pure,
// Apply. Writes form a contravariant functor with fan-out and fan-in routing:
// Contramap, Divide, Conquer, Choose, Lose. Read-write pairs form an
// invariant functor: Imap.
//
// Each combinator obeys the usual laws, stated on its doc comment. The laws
// are behavioral: two wrappers are equivalent when no caller can tell them
// apart by invoking them.
//
// # What this layer does NOT do
//
// No error handling of its own: failures of the wrapped actions propagate
// unchanged. No locking: Var.Update is an unprotected read-apply-write and
// concurrent callers may interleave; exclusion, if needed, belongs to the
// caller or to the wrapped actions. No cancellation semantics beyond passing
// the caller's context to the actions verbatim.
package vars
