package rop

import (
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

// ErrorBox either carries no error or exactly one error value of type E.
// The zero ErrorBox is empty.
type ErrorBox[E any] struct {
	active bool
	value  E
}

// NoError returns an empty box.
func NoError[E any]() ErrorBox[E] {
	return ErrorBox[E]{}
}

// Err returns an active box carrying err.
func Err[E any](err E) ErrorBox[E] {
	return ErrorBox[E]{active: true, value: err}
}

// ErrAs returns an active box carrying err converted to E. The conversion is
// an explicit one: any U convertible to E is accepted.
func ErrAs[E, U any](err U) (ErrorBox[E], error) {
	v, cerr := convertValue[E](err, false)
	if cerr != nil {
		return ErrorBox[E]{}, cerr
	}
	return Err(v), nil
}

func ErrEmplace[E any](ctor func() E) ErrorBox[E] {
	return Err(ctor())
}

func ErrEmplace1[E, A any](ctor func(A) E, a A) ErrorBox[E] {
	return Err(ctor(a))
}

func ErrEmplace2[E, A, B any](ctor func(A, B) E, a A, b B) ErrorBox[E] {
	return Err(ctor(a, b))
}

// ErrEmplaceList builds the error from a sequence followed by one more
// argument. The box owns a copy of list.
func ErrEmplaceList[E, U, A any](ctor func([]U, A) E, list []U, a A) ErrorBox[E] {
	return Err(ctor(slices.Clone(list), a))
}

// Active reports whether the box carries an error.
func (b ErrorBox[E]) Active() bool {
	return b.active
}

// Get returns a copy of the payload. An empty box yields E's zero value.
func (b ErrorBox[E]) Get() E {
	return b.value
}

// Ref gives mutable access to the payload slot.
func (b *ErrorBox[E]) Ref() *E {
	return &b.value
}

func (b ErrorBox[E]) MustGet() E {
	if !b.active {
		panic(ErrEmptyBox.New("no error in box"))
	}
	return b.value
}

func (b ErrorBox[E]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("active", b.active)
	if !b.active {
		return nil
	}
	return addPayload(enc, "error", b.value)
}

// addPayload writes errors by message, the way zap.Error does; reflection
// would render most of them as an empty object.
func addPayload(enc zapcore.ObjectEncoder, key string, payload interface{}) error {
	if err, ok := payload.(error); ok {
		if IsNil(err) {
			return enc.AddReflected(key, nil)
		}
		enc.AddString(key, err.Error())
		return nil
	}
	return enc.AddReflected(key, payload)
}
