package vars

import "context"

var _ ReadWritable[struct{}] = Var[struct{}]{}

// Var is a read-write capability wrapper: one Gettable and one Settable
// treated as a matched pair over the same underlying external value.
//
// The pairing is a contract on the caller, not something Var checks: when
// the two actions were supplied consistently, a Set followed by a Get with
// no intervening external mutation observes the written value.
type Var[T any] struct {
	getter Gettable[T]
	setter Settable[T]
}

// New builds a Var from a raw read action and a raw write action.
func New[T any](read ReadFn[T], write WriteFn[T]) Var[T] {
	return Var[T]{getter: NewGettable(read), setter: NewSettable(write)}
}

// Pair builds a Var from an existing Gettable and Settable.
func Pair[T any](g Gettable[T], s Settable[T]) Var[T] {
	return Var[T]{getter: g, setter: s}
}

// Get delegates to the internal Gettable.
func (v Var[T]) Get(ctx context.Context) (T, error) {
	return v.getter.Get(ctx)
}

// Set delegates to the internal Settable.
func (v Var[T]) Set(ctx context.Context, value T) error {
	return v.setter.Set(ctx, value)
}

// Gettable returns the read half of the pair.
func (v Var[T]) Gettable() Gettable[T] {
	return v.getter
}

// Settable returns the write half of the pair.
func (v Var[T]) Settable() Settable[T] {
	return v.setter
}

// Update reads the current value, applies f, and writes the result back.
// See the package-level Update for the non-atomicity contract; the method
// form is subject to the same interleaving hazard.
func (v Var[T]) Update(ctx context.Context, f func(T) T) error {
	return Update[T](ctx, v, f)
}

// Imap produces a Var over a different value type by mapping the read side
// with ab and contramapping the write side with ba (invariant functor).
//
// No isomorphism between ab and ba is verified. If the two are not mutually
// inverse, round-tripping through the new Var reflects whatever they
// compute; keeping them coherent is the caller's responsibility.
func Imap[T, U any](ab func(T) U, ba func(U) T, v Var[T]) Var[U] {
	return Pair(Map(ab, v.getter), Contramap(ba, v.setter))
}
