//go:build windows

// Package interop handles strings allocated by the foreign side. Memory that
// Windows hands back through COM out-parameters belongs to the COM task
// allocator and must be returned through CoTaskMemFree, never treated as Go
// memory.
package interop

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/winshell/filedialog/internal/wstr"
)

// CoTaskMemString owns a nul-terminated UTF-16 buffer allocated by the COM
// task allocator. Close frees it through the matching deallocator; using the
// string after Close is a use-after-free.
type CoTaskMemString struct {
	p *uint16
}

// FromRaw wraps a buffer returned by a foreign call that reported success.
// It panics if p is nil, since success paired with a null result breaks the
// foreign contract.
func FromRaw(p *uint16) *CoTaskMemString {
	if p == nil {
		panic("interop: foreign call reported success but returned a null string")
	}
	return &CoTaskMemString{p: p}
}

// WideStr returns a view over the foreign buffer. The foreign side
// guarantees termination, so the view is wrapped unchecked. It is valid only
// until Close.
func (s *CoTaskMemString) WideStr() *wstr.WideStr {
	buf := unsafe.Slice(s.p, maxUnits)
	n := 0
	for buf[n] != 0 {
		n++
	}
	return wstr.WrapUnchecked(buf[: n+1 : n+1])
}

// String decodes the contents, duplicating into Go memory.
func (s *CoTaskMemString) String() string {
	return s.WideStr().String()
}

// Close returns the buffer to the COM task allocator.
func (s *CoTaskMemString) Close() error {
	if s.p != nil {
		windows.CoTaskMemFree(unsafe.Pointer(s.p))
		s.p = nil
	}
	return nil
}

// Upper bound used to reinterpret the foreign pointer as a slice before the
// terminator scan bounds it for real.
const maxUnits = 1 << 29
