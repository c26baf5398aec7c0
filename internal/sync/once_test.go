package sync

import (
	"errors"
	stdsync "sync"
	"sync/atomic"
	"testing"
)

func TestOnceErrRunsOnce(t *testing.T) {
	var calls atomic.Int32
	failure := errors.New("init failed")
	f := OnceErr(func() error {
		calls.Add(1)
		return failure
	})

	var wg stdsync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(); !errors.Is(err, failure) {
				t.Errorf("expected the cached error, got %v", err)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one invocation, got %d", got)
	}
}

func TestOnceValueCaches(t *testing.T) {
	var calls int
	f := OnceValue(func() (int, error) {
		calls++
		return 42, nil
	})

	for range 3 {
		v, err := f()
		if err != nil || v != 42 {
			t.Fatalf("expected (42, nil), got (%d, %v)", v, err)
		}
	}
	if calls != 1 {
		t.Fatalf("expected exactly one invocation, got %d", calls)
	}
}
