package shell

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winshell/filedialog/internal/wstr"
)

// derefWide reads a nul-terminated wide buffer back through its raw pointer,
// terminator included, the way the foreign side would.
func derefWide(p *uint16) []uint16 {
	var out []uint16
	for i := uintptr(0); ; i++ {
		c := *(*uint16)(unsafe.Add(unsafe.Pointer(p), i*2))
		out = append(out, c)
		if c == 0 {
			return out
		}
	}
}

func TestFilterListGrowsInLockStep(t *testing.T) {
	pairs := [][2]string{
		{"toml", "*.toml"},
		{"text", "*.txt;*.lbl"},
		{"all", "*.*"},
	}

	var list FilterList
	require.Equal(t, 0, list.Len())
	require.True(t, list.Empty())
	require.Empty(t, list.Specs())

	for n, pair := range pairs {
		list.AddStrings(pair[0], pair[1])
		require.Equal(t, n+1, list.Len())

		// Every descriptor appended so far still dereferences to a
		// terminator-valid buffer matching its stored pair.
		for i, spec := range list.Specs() {
			wantName, err := wstr.New(wstr.String(pairs[i][0]))
			require.NoError(t, err)
			wantPattern, err := wstr.New(wstr.String(pairs[i][1]))
			require.NoError(t, err)

			assert.Equal(t, wantName.UnitsWithNul(), derefWide(spec.Name), "name %d after %d appends", i, n+1)
			assert.Equal(t, wantPattern.UnitsWithNul(), derefWide(spec.Pattern), "pattern %d after %d appends", i, n+1)
		}
	}
}

func TestFilterListSingleEntry(t *testing.T) {
	var list FilterList
	list.AddStrings("toml", "*.toml")

	require.Equal(t, 1, list.Len())
	spec := list.Specs()[0]
	assert.Equal(t, "toml", wstr.WrapUnchecked(derefWide(spec.Name)).String())
	assert.Equal(t, "*.toml", wstr.WrapUnchecked(derefWide(spec.Pattern)).String())
}

func TestFilterListAddClones(t *testing.T) {
	name, err := wstr.New(wstr.String("toml"))
	require.NoError(t, err)
	pattern, err := wstr.New(wstr.String("*.toml"))
	require.NoError(t, err)

	var list FilterList
	list.Add(&name.WideStr, &pattern.WideStr)

	spec := list.Specs()[0]
	assert.NotEqual(t, uintptr(unsafe.Pointer(name.Ptr())), uintptr(unsafe.Pointer(spec.Name)),
		"descriptor must point at list-owned storage, not the caller's buffer")
	assert.Equal(t, name.UnitsWithNul(), derefWide(spec.Name))
	assert.Equal(t, pattern.UnitsWithNul(), derefWide(spec.Pattern))
}

func TestFilterListInteriorNulPanics(t *testing.T) {
	var list FilterList
	assert.Panics(t, func() { list.AddStrings("to\x00ml", "*.toml") })
	assert.Panics(t, func() { list.AddStrings("toml", "*.to\x00ml") })
	assert.Equal(t, 0, list.Len(), "a rejected filter must not be partially appended")
}
