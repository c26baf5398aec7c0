package sync

import "sync"

// OnceValue is a wrapper around [sync.Once] that runs f only once and
// returns both a value (of type T) and an error. Every call after the first
// returns the cached pair, so a failed f is never retried.
func OnceValue[T any](f func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		v    T
		err  error
	)

	return func() (T, error) {
		once.Do(func() {
			v, err = f()
		})
		return v, err
	}
}

// OnceErr is OnceValue for side-effect-only initialization.
func OnceErr(f func() error) func() error {
	var (
		once sync.Once
		err  error
	)

	return func() error {
		once.Do(func() {
			err = f()
		})
		return err
	}
}
