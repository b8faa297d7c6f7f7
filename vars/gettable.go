package vars

import "context"

var _ Readable[struct{}] = Gettable[struct{}]{}

// Gettable is a read-only capability wrapper around one effectful read
// action. It holds nothing beyond the action and is immutable after
// construction.
type Gettable[T any] struct {
	read ReadFn[T]
}

// NewGettable wraps the read action verbatim.
func NewGettable[T any](read ReadFn[T]) Gettable[T] {
	return Gettable[T]{read: read}
}

// Get executes the wrapped action. Effects and failures are exactly those of
// the action; nothing is caught or retried here.
func (g Gettable[T]) Get(ctx context.Context) (T, error) {
	return g.read(ctx)
}

// Map returns a new Gettable whose read action is g's action followed by f
// applied to the result. Map makes Gettable a covariant functor:
//
//	Map(iden, g)      ~ g
//	Map(f, Map(h, g)) ~ Map(func(x) { return f(h(x)) }, g)
func Map[T, U any](f func(T) U, g Gettable[T]) Gettable[U] {
	return NewGettable(func(ctx context.Context) (U, error) {
		v, err := g.read(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	})
}

// Pure wraps a constant: the read action yields value with no side effect.
func Pure[T any](value T) Gettable[T] {
	return NewGettable(func(context.Context) (T, error) {
		return value, nil
	})
}

// Apply runs gf's action, then ga's action, then applies the resulting
// function to the resulting value. The order is observable whenever either
// action has side effects, and is part of the contract. If gf's action
// fails, ga's action is never executed.
func Apply[T, U any](gf Gettable[func(T) U], ga Gettable[T]) Gettable[U] {
	return NewGettable(func(ctx context.Context) (U, error) {
		var zero U
		f, err := gf.read(ctx)
		if err != nil {
			return zero, err
		}
		v, err := ga.read(ctx)
		if err != nil {
			return zero, err
		}
		return f(v), nil
	})
}
