package rop

import (
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

// Result holds a value of type T together with an ErrorBox[E]. It has a value
// exactly when the box is empty. Both slots are always present; on failure
// the value slot keeps T's zero value.
//
// The zero Result is a success carrying T's zero value.
type Result[T, E any] struct {
	value T
	box   ErrorBox[E]
}

func Default[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

// Of returns a successful Result carrying v.
func Of[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// OfAs returns a successful Result carrying v converted to T. Any U
// convertible to T is accepted.
func OfAs[T, E, U any](v U) (Result[T, E], error) {
	t, err := convertValue[T](v, false)
	if err != nil {
		return Result[T, E]{}, err
	}
	return Of[T, E](t), nil
}

// FromBox returns a Result in the failure case when box is active. An empty
// box gives the default Result.
func FromBox[T, E any](box ErrorBox[E]) Result[T, E] {
	return Result[T, E]{box: box}
}

// FromBoxAs is FromBox for a box whose payload must first be converted to E.
func FromBoxAs[T, E, U any](box ErrorBox[U]) (Result[T, E], error) {
	b, err := ConvertBox[E](box)
	if err != nil {
		return Result[T, E]{}, err
	}
	return FromBox[T](b), nil
}

func FromSuccess[T, E any](tag SuccessTag[T]) Result[T, E] {
	return Of[T, E](tag.Value)
}

func FromFailure[T, E any](tag FailureTag[E]) Result[T, E] {
	return FromBox[T](Err(tag.Err))
}

// FromSuccessAs is FromSuccess for a tag whose payload must first be
// converted to T.
func FromSuccessAs[T, E, U any](tag SuccessTag[U]) (Result[T, E], error) {
	return OfAs[T, E](tag.Value)
}

// FromFailureAs is FromFailure for a tag whose payload must first be
// converted to E.
func FromFailureAs[T, E, U any](tag FailureTag[U]) (Result[T, E], error) {
	return FromBoxAs[T, E](Err(tag.Err))
}

func Emplace[T, E any](ctor func() T) Result[T, E] {
	return Of[T, E](ctor())
}

func Emplace1[T, E, A any](ctor func(A) T, a A) Result[T, E] {
	return Of[T, E](ctor(a))
}

func Emplace2[T, E, A, B any](ctor func(A, B) T, a A, b B) Result[T, E] {
	return Of[T, E](ctor(a, b))
}

// EmplaceList builds the value from a sequence followed by one more argument.
// The Result owns a copy of list.
func EmplaceList[T, E, U, A any](ctor func([]U, A) T, list []U, a A) Result[T, E] {
	return Of[T, E](ctor(slices.Clone(list), a))
}

func (r Result[T, E]) HasValue() bool {
	return !r.box.active
}

func (r Result[T, E]) IsSuccess() bool {
	return r.HasValue()
}

func (r Result[T, E]) IsFailure() bool {
	return r.box.active
}

// GetValue returns a copy of the value slot without checking the case.
func (r Result[T, E]) GetValue() T {
	return r.value
}

// GetError returns a copy of the error payload without checking the case.
func (r Result[T, E]) GetError() E {
	return r.box.value
}

func (r Result[T, E]) Get() T {
	return r.value
}

// Ref gives mutable access to the value slot. It does not look at the error.
func (r *Result[T, E]) Ref() *T {
	return &r.value
}

func (r Result[T, E]) Box() ErrorBox[E] {
	return r.box
}

// Unpack decomposes r into its value slot and its error box, in that order.
func (r Result[T, E]) Unpack() (T, ErrorBox[E]) {
	return r.value, r.box
}

func (r Result[T, E]) MustValue() T {
	if r.box.active {
		panic(ErrNoValue.New("result holds an error: %v", r.box.value))
	}
	return r.value
}

func (r Result[T, E]) MustError() E {
	if !r.box.active {
		panic(ErrEmptyBox.New("result holds a value"))
	}
	return r.box.value
}

func (r Result[T, E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("has_value", r.HasValue())
	if r.HasValue() {
		return addPayload(enc, "value", r.value)
	}
	return addPayload(enc, "error", r.box.value)
}
