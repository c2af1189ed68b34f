package solo

import (
	"context"

	"github.com/ib-77/xresult/pkg/rop"
)

// FromPair turns a (value, error) pair into a Result. A typed nil error
// counts as no error.
func FromPair[T any](value T, err error) rop.Result[T, error] {
	if rop.IsNil(err) {
		return rop.Of[T, error](value)
	}
	return rop.FromBox[T](rop.Err(err))
}

// ToPair is the inverse of FromPair. The value is T's zero value on failure.
func ToPair[T any](r rop.Result[T, error]) (T, error) {
	if r.HasValue() {
		return r.GetValue(), nil
	}
	var zero T
	return zero, r.GetError()
}

// Try runs try unless ctx is already done and captures its outcome.
func Try[T any](ctx context.Context, try func(ctx context.Context) (T, error)) rop.Result[T, error] {
	if err := ctx.Err(); err != nil {
		return rop.FromBox[T](rop.Err(err))
	}
	v, err := try(ctx)
	return FromPair(v, err)
}

func Finally[T, E, Out any](ctx context.Context, input rop.Outcome[T, E],
	onValue func(ctx context.Context, v T) Out,
	onError func(ctx context.Context, err E) Out) Out {

	if input.HasValue() {
		return onValue(ctx, input.GetValue())
	}
	return onError(ctx, input.GetError())
}

func IsCanceled[T any](r rop.Result[T, error]) bool {
	return r.IsFailure() && rop.IsCancellationError(r.GetError())
}
