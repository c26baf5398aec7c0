// Package com manages references to foreign reference-counted resources.
// The portable part is the ownership state machine; the windows files bind
// it to the COM runtime.
package com

// refState tracks which terminal action, if any, has been taken on a Ref.
// There is no transition out of a terminal state.
type refState uint8

const (
	stateUnreleased refState = iota
	stateReleased
	stateDisarmed
)

// Ref owns exactly one reference to a foreign reference-counted resource.
// Either Close releases the reference exactly once, or Handoff transfers it
// to the foreign side and the local release is suppressed forever.
//
// A Ref is not safe for concurrent use; treat it as confined to the thread
// that is driving the foreign calls.
type Ref struct {
	ptr     uintptr
	release func(uintptr)
	state   refState
}

// NewRef wraps a pointer returned by a foreign factory call that reported
// success. It panics if ptr is null: success paired with a null result means
// the foreign contract itself is broken, and proceeding would only corrupt
// state further.
func NewRef(ptr uintptr, release func(uintptr)) *Ref {
	if ptr == 0 {
		panic("com: foreign call reported success but returned a null pointer")
	}
	return &Ref{ptr: ptr, release: release}
}

// Ptr returns the wrapped pointer for use in a foreign call that borrows the
// reference. It panics once the reference has been released or handed off.
func (r *Ref) Ptr() uintptr {
	if r.state != stateUnreleased {
		panic("com: use of a released or handed-off reference")
	}
	return r.ptr
}

// Handoff transfers ownership of the single reference to the foreign side
// and returns the pointer for the consuming call. The Ref is permanently
// disarmed: Close becomes a no-op, which is what structurally prevents a
// double release after operations that consume their argument's reference.
//
// Handoff panics if the reference was already released or handed off.
func (r *Ref) Handoff() uintptr {
	if r.state != stateUnreleased {
		panic("com: hand-off of a released or already handed-off reference")
	}
	r.state = stateDisarmed
	return r.ptr
}

// Close releases the foreign reference. Only the first Close releases;
// closing again, or closing after Handoff, does nothing.
func (r *Ref) Close() error {
	if r.state != stateUnreleased {
		return nil
	}
	r.state = stateReleased
	r.release(r.ptr)
	return nil
}
