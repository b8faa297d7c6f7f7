package vars

import "context"

var _ Writable[struct{}] = Settable[struct{}]{}

// Settable is a write-only capability wrapper around one effectful write
// action. Immutable after construction.
type Settable[T any] struct {
	write WriteFn[T]
}

// NewSettable wraps the write action verbatim.
func NewSettable[T any](write WriteFn[T]) Settable[T] {
	return Settable[T]{write: write}
}

// Set executes the wrapped action with value. Effects and failures are
// exactly those of the action.
func (s Settable[T]) Set(ctx context.Context, value T) error {
	return s.write(ctx, value)
}

// Contramap returns a new Settable whose write action applies f to the
// incoming value before invoking s's action. Contramap makes Settable a
// contravariant functor; composition runs outside-in:
//
//	Contramap(iden, s)           ~ s
//	Contramap(f, Contramap(h, s)) ~ Contramap(func(x) { return h(f(x)) }, s)
func Contramap[U, T any](f func(U) T, s Settable[T]) Settable[U] {
	return NewSettable(func(ctx context.Context, value U) error {
		return s.write(ctx, f(value))
	})
}

// Divide fans one value out across two sinks: split tears the incoming value
// into a pair, the first component goes to s1, then the second to s2. The
// write to s1 strictly precedes the write to s2; if the first write fails,
// the second is never attempted.
func Divide[U, T1, T2 any](
	split func(U) (T1, T2),
	s1 Settable[T1],
	s2 Settable[T2],
) Settable[U] {
	return NewSettable(func(ctx context.Context, value U) error {
		v1, v2 := split(value)
		if err := s1.write(ctx, v1); err != nil {
			return err
		}
		return s2.write(ctx, v2)
	})
}

// Conquer is the identity element for Divide: a setter whose write performs
// no observable effect for any input and never fails.
func Conquer[T any]() Settable[T] {
	return NewSettable(func(context.Context, T) error {
		return nil
	})
}

// Choose routes one value into one of two sinks: route tags the incoming
// value, a Left goes to s1, a Right goes to s2. Exactly one of the two
// setters is invoked per call — never both, never neither.
func Choose[U, T1, T2 any](
	route func(U) Either[T1, T2],
	s1 Settable[T1],
	s2 Settable[T2],
) Settable[U] {
	return NewSettable(func(ctx context.Context, value U) error {
		e := route(value)
		if l, ok := e.Left(); ok {
			return s1.write(ctx, l)
		}
		r, _ := e.Right()
		return s2.write(ctx, r)
	})
}

// Lose is the vacuous identity for Choose: it accepts a witness that U is
// uninhabited (a total function into Never) and returns a setter that can
// never be invoked by well-typed code. It exists so that a Choose branch can
// be statically eliminated while the routing structure stays total.
func Lose[U any](f func(U) Never) Settable[U] {
	return NewSettable(func(_ context.Context, value U) error {
		f(value)
		// Reachable only under a type-system violation.
		panic("vars: Lose invoked with a value of an uninhabited type")
	})
}
