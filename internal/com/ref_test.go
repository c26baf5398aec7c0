package com

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime stands in for the foreign reference-counting runtime and
// counts every release it observes.
type fakeRuntime struct {
	releases int
}

func (rt *fakeRuntime) release(uintptr) {
	rt.releases++
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	rt := &fakeRuntime{}
	ref := NewRef(1, rt.release)

	require.NoError(t, ref.Close())
	assert.Equal(t, 1, rt.releases)

	// A second close must not release again.
	require.NoError(t, ref.Close())
	assert.Equal(t, 1, rt.releases)
}

func TestHandoffSuppressesLocalRelease(t *testing.T) {
	rt := &fakeRuntime{}
	ref := NewRef(1, rt.release)

	// A consuming operation takes the single reference: the foreign side
	// now owns it and performs the one release itself.
	ptr := ref.Handoff()
	rt.release(ptr)
	assert.Equal(t, 1, rt.releases)

	// The wrapper's close is disarmed; the total stays at one.
	require.NoError(t, ref.Close())
	assert.Equal(t, 1, rt.releases)
}

func TestNullPointerPanics(t *testing.T) {
	assert.Panics(t, func() { NewRef(0, func(uintptr) {}) })
}

func TestTerminalStatePanics(t *testing.T) {
	rt := &fakeRuntime{}

	closed := NewRef(1, rt.release)
	require.NoError(t, closed.Close())
	assert.Panics(t, func() { closed.Handoff() }, "hand-off after close")
	assert.Panics(t, func() { closed.Ptr() }, "use after close")

	handed := NewRef(1, rt.release)
	handed.Handoff()
	assert.Panics(t, func() { handed.Handoff() }, "double hand-off")
	assert.Panics(t, func() { handed.Ptr() }, "use after hand-off")
}

func TestPtrBorrowDoesNotChangeState(t *testing.T) {
	rt := &fakeRuntime{}
	ref := NewRef(42, rt.release)

	assert.Equal(t, uintptr(42), ref.Ptr())
	assert.Equal(t, uintptr(42), ref.Ptr())
	assert.Equal(t, 0, rt.releases)

	require.NoError(t, ref.Close())
	assert.Equal(t, 1, rt.releases)
}
