package vars

// Either is a tagged sum of L and R, consumed by Choose to route writes.
// The zero value is a Left holding L's zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// NewLeft tags a value for the left branch.
func NewLeft[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// NewRight tags a value for the right branch.
func NewRight[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Left returns the left value and whether this Either is a Left.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether this Either is a Right.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Never is the uninhabited type: it has an unexported method and no
// implementations, so no value of it can be constructed outside this
// package — and none is constructed inside it either. A func(U) Never
// argument is therefore a witness that U itself is uninhabited.
type Never interface {
	never()
}

// Absurd eliminates an impossible value. It is total over Never's zero
// inhabitants; reaching its body means the type system was subverted.
func Absurd[T any](Never) T {
	panic("vars: Absurd called; Never is uninhabited")
}
