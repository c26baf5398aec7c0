package com

import (
	"errors"
	"fmt"
	"syscall"
)

const errorGenFailure = syscall.Errno(31)

// Error records a foreign call that reported a failure status code. The code
// is carried, not interpreted: callers that care about specific HRESULTs can
// recover the numeric value with Win32FromError.
type Error struct {
	op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed in Win32: %s (0x%x)", e.op, e.Err, Win32FromError(e.Err))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with the name of the foreign operation that produced
// it.
func NewError(err error, op string) error {
	return &Error{op: op, Err: err}
}

// Win32FromError recovers the numeric Win32 error code from err, descending
// through wrapping. Errors with no code report ERROR_GEN_FAILURE.
func Win32FromError(err error) uint32 {
	if herr := (&Error{}); errors.As(err, &herr) {
		return Win32FromError(herr.Err)
	}
	if code := (syscall.Errno(0)); errors.As(err, &code) {
		return uint32(code)
	}
	return uint32(errorGenFailure)
}

// Is is a vectorized version of errors.Is. It returns true if err is one of
// errs.
func Is(err error, errs ...error) bool {
	for _, e := range errs {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// sFalse is the S_FALSE HRESULT. CoInitializeEx returns it when the runtime
// was already initialized on the calling thread.
const sFalse = syscall.Errno(1)

// coInitErr classifies a CoInitializeEx result. Already-initialized
// (S_FALSE) is success. Anything else non-nil is a typed error, including
// RPC_E_CHANGED_MODE when the thread is in a different apartment.
func coInitErr(err error) error {
	if err == nil || errors.Is(err, sFalse) {
		return nil
	}
	return NewError(err, "CoInitializeEx")
}
