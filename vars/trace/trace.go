// Package trace decorates vars wrappers with observability. A traced wrapper
// behaves exactly like the one it wraps — same effects, same failures, same
// ordering — and additionally logs each operation through zap and, when a
// sink is configured, emits a Record per operation.
//
// Traced wrappers are ordinary vars values, so they compose with every
// combinator: tracing a Gettable and then mapping it traces the inner read,
// not the mapped view.
package trace

import (
	"context"
	"time"

	"github.com/on-the-ground/var_ive_go/vars"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Op identifies which capability an operation exercised.
type Op string

const (
	OpGet Op = "get"
	OpSet Op = "set"
)

// Record is one observed operation on a traced wrapper.
type Record struct {
	VarID string // identity of the traced wrapper, stable across operations
	Label string
	Op    Op
	Value any
	Err   error
	Span  TimeSpan // bounds the wrapped action's execution
}

// Tracer carries the logger and the optional record sink shared by the
// wrappers it decorates.
type Tracer struct {
	logger *zap.Logger
	sink   chan<- Record
}

// TracerOption configures a Tracer.
type TracerOption func(*Tracer)

// WithSink makes the tracer emit a Record per operation. Sends never block:
// when the sink is full the record is dropped, the log line is not.
func WithSink(sink chan<- Record) TracerOption {
	return func(tr *Tracer) { tr.sink = sink }
}

// NewTracer builds a Tracer around the given logger.
func NewTracer(logger *zap.Logger, opts ...TracerOption) *Tracer {
	tr := &Tracer{logger: logger}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

func (tr *Tracer) emit(ctx context.Context, rec Record) {
	tr.logger.Debug("var operation",
		zap.String("varId", rec.VarID),
		zap.String("label", rec.Label),
		zap.String("op", string(rec.Op)),
		zap.Any("value", rec.Value),
		zap.Error(rec.Err),
		zap.Time("from", rec.Span.Start()),
		zap.Time("to", rec.Span.End()),
	)
	if tr.sink == nil {
		return
	}
	select {
	case <-ctx.Done():
	case tr.sink <- rec:
	default:
	}
}

// Gettable wraps g so that every Get is logged and recorded.
func Gettable[T any](tr *Tracer, label string, g vars.Gettable[T]) vars.Gettable[T] {
	return tracedGettable(tr, uuid.New().String(), label, g)
}

// Settable wraps s so that every Set is logged and recorded.
func Settable[T any](tr *Tracer, label string, s vars.Settable[T]) vars.Settable[T] {
	return tracedSettable(tr, uuid.New().String(), label, s)
}

// ReadWrite wraps both halves of v under one shared identity.
func ReadWrite[T any](tr *Tracer, label string, v vars.Var[T]) vars.Var[T] {
	id := uuid.New().String()
	return vars.Pair(
		tracedGettable(tr, id, label, v.Gettable()),
		tracedSettable(tr, id, label, v.Settable()),
	)
}

func tracedGettable[T any](tr *Tracer, id, label string, g vars.Gettable[T]) vars.Gettable[T] {
	return vars.NewGettable(func(ctx context.Context) (T, error) {
		from := time.Now()
		v, err := g.Get(ctx)
		tr.emit(ctx, Record{
			VarID: id,
			Label: label,
			Op:    OpGet,
			Value: v,
			Err:   err,
			Span:  NewTimeSpan(from, time.Now()),
		})
		return v, err
	})
}

func tracedSettable[T any](tr *Tracer, id, label string, s vars.Settable[T]) vars.Settable[T] {
	return vars.NewSettable(func(ctx context.Context, value T) error {
		from := time.Now()
		err := s.Set(ctx, value)
		tr.emit(ctx, Record{
			VarID: id,
			Label: label,
			Op:    OpSet,
			Value: value,
			Err:   err,
			Span:  NewTimeSpan(from, time.Now()),
		})
		return err
	})
}
