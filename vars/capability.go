package vars

import "context"

// ReadFn is an effectful read action producing a T.
type ReadFn[T any] func(context.Context) (T, error)

// WriteFn is an effectful write action consuming a T.
type WriteFn[T any] func(context.Context, T) error

// Readable is the read capability: anything a value can be gotten from.
type Readable[T any] interface {
	Get(ctx context.Context) (T, error)
}

// Writable is the write capability: anything a value can be set into.
type Writable[T any] interface {
	Set(ctx context.Context, value T) error
}

// ReadWritable combines both capabilities over a single value type.
type ReadWritable[T any] interface {
	Readable[T]
	Writable[T]
}

// Get reads from any Readable. It is the free-function alias of the Get
// method, convenient as an argument to higher-order code.
func Get[T any](ctx context.Context, r Readable[T]) (T, error) {
	return r.Get(ctx)
}

// Set writes to any Writable. Free-function alias of the Set method.
func Set[T any](ctx context.Context, w Writable[T], value T) error {
	return w.Set(ctx, value)
}

// Update reads from rw, applies f, and writes the result back.
//
// Update is NOT atomic: no exclusion is held between the read and the write.
// Two concurrent Updates may interleave and lose one of the writes. This is
// the contract, not an oversight — callers that need atomicity must layer
// their own exclusion around the wrapped actions.
func Update[T any](ctx context.Context, rw ReadWritable[T], f func(T) T) error {
	cur, err := rw.Get(ctx)
	if err != nil {
		return err
	}
	return rw.Set(ctx, f(cur))
}
