package task

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFuture_AwaitDeliversValue(t *testing.T) {
	t.Parallel()

	f := Go(func() (int, error) { return 42, nil })
	v, err := f.Await(context.Background())
	if err != nil || v != 42 {
		t.Fatalf("Await = %d, %v; want 42, nil", v, err)
	}

	// The result stays readable after the first await.
	v, err = f.Await(context.Background())
	if err != nil || v != 42 {
		t.Fatalf("second Await = %d, %v; want 42, nil", v, err)
	}
}

func TestFuture_AwaitPropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := Go(func() (string, error) { return "", boom })
	_, err := f.Await(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Await err = %v; want boom", err)
	}
}

func TestFuture_AwaitHonorsContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := Go(func() (int, error) { <-release; return 1, nil })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := f.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Await = %v; want deadline exceeded", err)
	}
	close(release)

	if v, err := f.Await(context.Background()); err != nil || v != 1 {
		t.Fatalf("Await after release = %d, %v; want 1, nil", v, err)
	}
}

func TestFuture_Poll(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := Go(func() (int, error) { <-release; return 7, nil })

	if _, ok := f.Poll(); ok {
		t.Fatalf("Poll reported done while operation in flight")
	}
	close(release)

	deadline := time.After(time.Second)
	for {
		if res, ok := f.Poll(); ok {
			if res.Err != nil || res.Value != 7 {
				t.Fatalf("Poll = %+v; want 7, nil", res)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("Poll never observed completion")
		default:
			time.Sleep(time.Millisecond)
		}
	}
}

func TestFuture_Done(t *testing.T) {
	t.Parallel()

	f := Go(func() (string, error) { return "ok", nil })
	select {
	case res := <-f.Done():
		if res.Err != nil || res.Value != "ok" {
			t.Fatalf("Done = %+v; want ok, nil", res)
		}
	case <-time.After(time.Second):
		t.Fatalf("Done never delivered")
	}
}
