package com

import (
	"errors"
	"syscall"
	"testing"
)

func TestErrorCarriesCode(t *testing.T) {
	err := NewError(syscall.Errno(1223), "IModalWindow::Show")

	if got := Win32FromError(err); got != 1223 {
		t.Fatalf("expected code 1223, got %d", got)
	}
	if !errors.Is(err, syscall.Errno(1223)) {
		t.Fatalf("expected the wrapped errno to unwrap, got %v", err)
	}

	// Nesting still resolves to the innermost code.
	wrapped := NewError(err, "outer")
	if got := Win32FromError(wrapped); got != 1223 {
		t.Fatalf("expected nested code 1223, got %d", got)
	}
}

func TestWin32FromErrorWithoutCode(t *testing.T) {
	if got := Win32FromError(errors.New("no code here")); got != uint32(errorGenFailure) {
		t.Fatalf("expected ERROR_GEN_FAILURE, got %d", got)
	}
}

func TestCoInitErr(t *testing.T) {
	if err := coInitErr(nil); err != nil {
		t.Fatalf("expected success to classify as nil, got %v", err)
	}

	// S_FALSE means the host already initialized the runtime on this
	// thread; the library must treat that as success, not a cached
	// failure.
	if err := coInitErr(syscall.Errno(1)); err != nil {
		t.Fatalf("expected already-initialized to classify as nil, got %v", err)
	}

	// RPC_E_CHANGED_MODE (thread in a different apartment) is a real,
	// typed error carrying its code.
	changedMode := syscall.Errno(0x80010106)
	err := coInitErr(changedMode)
	if err == nil {
		t.Fatal("expected a changed apartment mode to classify as an error")
	}
	if !errors.Is(err, changedMode) {
		t.Fatalf("expected the wrapped errno to unwrap, got %v", err)
	}
	if got := Win32FromError(err); got != uint32(changedMode) {
		t.Fatalf("expected code %#x, got %#x", uint32(changedMode), got)
	}
}

func TestIs(t *testing.T) {
	cancelled := syscall.Errno(1223)
	access := syscall.Errno(5)
	err := NewError(cancelled, "IModalWindow::Show")

	if !Is(err, access, cancelled) {
		t.Fatal("expected Is to match one of the targets")
	}
	if Is(err, access) {
		t.Fatal("expected Is to reject a non-matching target")
	}
}
