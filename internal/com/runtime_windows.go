//go:build windows

package com

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/winshell/filedialog/internal/sync"
	"github.com/winshell/filedialog/internal/winapi"
)

var startRuntime = sync.OnceErr(func() error {
	return coInitErr(windows.CoInitializeEx(0, windows.COINIT_MULTITHREADED|windows.COINIT_DISABLE_OLE1DDE))
})

// StartRuntime initializes the COM runtime for the process in the
// multithreaded apartment. It is safe to call from any number of call sites,
// concurrently; the initialization runs once and every caller observes the
// same outcome.
func StartRuntime() error {
	return startRuntime()
}

// CreateInstance activates the given class and wraps the resulting interface
// pointer. The factory reporting success with a null pointer panics in
// NewRef.
func CreateInstance(clsid *windows.GUID, iid *windows.GUID) (*Ref, error) {
	var ptr uintptr
	if err := winapi.CoCreateInstance(clsid, 0, winapi.CLSCTX_ALL, iid, &ptr); err != nil {
		return nil, NewError(err, "CoCreateInstance")
	}
	return FromUnknown(ptr), nil
}

// FromUnknown wraps an IUnknown-derived interface pointer whose single
// reference this process owns.
func FromUnknown(ptr uintptr) *Ref {
	return NewRef(ptr, releaseUnknown)
}

// ptr is a COM-heap address the Go runtime never manages, so converting it
// back to an unsafe.Pointer to read the vtable is stable across GC.
func releaseUnknown(ptr uintptr) {
	vtbl := *(**winapi.IUnknownVtbl)(unsafe.Pointer(ptr))
	syscall.SyscallN(vtbl.Release, ptr)
}

// ErrFromHResult converts a raw HRESULT returned by a vtable call into a
// typed error, or nil when the call succeeded. Win32-facility codes are
// unpacked to their errno the same way the generated bindings do.
func ErrFromHResult(hr uintptr, op string) error {
	if int32(hr) >= 0 {
		return nil
	}
	if hr&0x1fff0000 == 0x00070000 {
		hr &= 0xffff
	}
	return NewError(syscall.Errno(hr), op)
}
