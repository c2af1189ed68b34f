package solo

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/ib-77/xresult/pkg/rop"
)

func TestFromPair_Success(t *testing.T) {
	t.Parallel()
	r := FromPair(5, nil)
	if !r.HasValue() || r.Get() != 5 {
		t.Fatalf("expected success with 5, got: ok=%v, val=%v, err=%v", r.HasValue(), r.Get(), r.GetError())
	}
}

func TestFromPair_Failure(t *testing.T) {
	t.Parallel()
	r := FromPair(0, errors.New("boom"))
	if r.HasValue() || r.GetError() == nil || r.GetError().Error() != "boom" {
		t.Fatalf("expected failure 'boom', got: ok=%v, err=%v", r.HasValue(), r.GetError())
	}
}

func TestFromPair_TypedNil(t *testing.T) {
	t.Parallel()
	var pathErr *os.PathError
	r := FromPair("value", error(pathErr))
	if !r.HasValue() || r.Get() != "value" {
		t.Fatalf("typed nil error should count as success, got: ok=%v, err=%v", r.HasValue(), r.GetError())
	}
}

func TestToPair(t *testing.T) {
	t.Parallel()
	v, err := ToPair(rop.Of[int, error](3))
	if err != nil || v != 3 {
		t.Fatalf("expected (3, nil), got (%v, %v)", v, err)
	}

	v, err = ToPair(FromPair(7, errors.New("bad")))
	if err == nil || err.Error() != "bad" || v != 0 {
		t.Fatalf("expected (0, bad), got (%v, %v)", v, err)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := Try(ctx, func(ctx context.Context) (int, error) { return strconv.Atoi("42") })
	if !r.HasValue() || r.Get() != 42 {
		t.Fatalf("expected success with 42, got: ok=%v, val=%v, err=%v", r.HasValue(), r.Get(), r.GetError())
	}

	r = Try(ctx, func(ctx context.Context) (int, error) { return strconv.Atoi("bad") })
	if r.HasValue() || r.GetError() == nil {
		t.Fatalf("expected parse failure, got: ok=%v, val=%v", r.HasValue(), r.Get())
	}
}

func TestTry_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	r := Try(ctx, func(ctx context.Context) (int, error) {
		called = true
		return 1, nil
	})
	if called {
		t.Fatalf("try should not run on a done context")
	}
	if !IsCanceled(r) {
		t.Fatalf("expected canceled result, got: ok=%v, err=%v", r.HasValue(), r.GetError())
	}
	if IsCanceled(FromPair(0, errors.New("x"))) {
		t.Fatalf("plain failure is not a cancellation")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onValue := func(ctx context.Context, v int) string { return "val:" + strconv.Itoa(v) }
	onError := func(ctx context.Context, err string) string { return "err:" + err }

	if s := Finally[int, string](ctx, rop.Of[int, string](3), onValue, onError); s != "val:3" {
		t.Fatalf("expected val:3, got %s", s)
	}
	if s := Finally[int, string](ctx, rop.FromBox[int](rop.Err("x")), onValue, onError); s != "err:x" {
		t.Fatalf("expected err:x, got %s", s)
	}
}
