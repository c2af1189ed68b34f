package rop

// SuccessTag marks its payload as the success case of a Result.
type SuccessTag[T any] struct {
	Value T
}

// FailureTag marks its payload as the error case of a Result.
type FailureTag[E any] struct {
	Err E
}

func Success[T any](v T) SuccessTag[T] {
	return SuccessTag[T]{Value: v}
}

func Failure[E any](err E) FailureTag[E] {
	return FailureTag[E]{Err: err}
}
