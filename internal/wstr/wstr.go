// Package wstr implements nul-terminated UTF-16 strings for crossing into
// Windows wide-character APIs. It can be thought of as a wide analog of the
// C string handling in the standard library's syscall package, with the
// terminator invariant checked at construction instead of at every call
// site.
package wstr

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Source is text that can be widened into UTF-16 code units.
//
// Implementations return the code units with at least one element of spare
// capacity reserved for a terminator that has not been appended yet. The
// units may contain zeros; the validated constructors reject them.
type Source interface {
	wideUnits() []uint16
}

// String is UTF-8 text.
type String string

func (s String) wideUnits() []uint16 {
	runes := []rune(string(s))
	units := make([]uint16, 0, len(runes)+1)
	return append(units, utf16.Encode(runes)...)
}

// Path is a filesystem path. It is encoded the same way as String and exists
// so that call sites name what they are converting.
type Path string

func (p Path) wideUnits() []uint16 {
	return String(p).wideUnits()
}

// Units is an already-wide sequence of code units.
type Units []uint16

func (u Units) wideUnits() []uint16 {
	units := make([]uint16, 0, len(u)+1)
	return append(units, u...)
}

func (ws *WideStr) wideUnits() []uint16 {
	units := make([]uint16, 0, len(ws.u))
	return append(units, ws.Units()...)
}

// WideStr is a view over a sequence of UTF-16 code units whose last unit is
// the terminator and which contains no interior zeros. It never owns its
// storage; a WideStr is only valid while the WideString (or buffer) it was
// taken from is alive.
type WideStr struct {
	// Includes the terminator.
	u []uint16
}

// WideString owns a validated, nul-terminated UTF-16 buffer. The embedded
// WideStr makes every view accessor available on the owner.
type WideString struct {
	WideStr
}

// New converts src to wide code units, validates them, and appends the
// terminator.
//
// If the units contain a zero, New fails with a *NulError carrying the
// original, untouched units so the caller can inspect or reuse them.
func New(src Source) (*WideString, error) {
	units := src.wideUnits()
	for i, c := range units {
		if c == 0 {
			return nil, &NulError{Position: i, Data: units}
		}
	}
	units = append(units, 0)
	return FromUnitsUnchecked(units), nil
}

// FromUnits validates a buffer that is expected to already end in a
// terminator and takes ownership of it. The buffer is never modified: on
// failure the returned *UnitsError carries it unchanged.
func FromUnits(units []uint16) (*WideString, error) {
	nul := -1
	for i, c := range units {
		if c == 0 {
			nul = i
			break
		}
	}
	switch {
	case nul < 0:
		return nil, &UnitsError{Kind: NotNulTerminated, Position: -1, Data: units}
	case nul != len(units)-1:
		return nil, &UnitsError{Kind: InteriorNul, Position: nul, Data: units}
	}
	return FromUnitsUnchecked(units), nil
}

// FromUnitsUnchecked wraps a buffer that is already known to be
// nul-terminated with no interior nuls, without scanning it. Use it only for
// data whose validity is guaranteed elsewhere, such as the output of a
// foreign call that is contractually nul-terminated.
func FromUnitsUnchecked(units []uint16) *WideString {
	return &WideString{WideStr{u: units}}
}

// WrapUnchecked is the view form of FromUnitsUnchecked. The returned WideStr
// aliases units and is valid only as long as they are.
func WrapUnchecked(units []uint16) *WideStr {
	return &WideStr{u: units}
}

// Units returns the code units without the terminator.
func (ws *WideStr) Units() []uint16 {
	return ws.u[:len(ws.u)-1]
}

// UnitsWithNul returns the code units including the terminator.
func (ws *WideStr) UnitsWithNul() []uint16 {
	return ws.u
}

// Len returns the number of code units, terminator excluded.
func (ws *WideStr) Len() int {
	return len(ws.u) - 1
}

// Ptr returns the address of the first code unit for passing to a foreign
// call. The pointer is valid only while the owning buffer is alive; do not
// retain it past the call.
func (ws *WideStr) Ptr() *uint16 {
	return &ws.u[0]
}

// Suffix returns the view starting at code unit k, counted against the
// terminator-inclusive length. The result still contains the original
// terminator and therefore satisfies the same invariant.
//
// Suffix panics if k is out of bounds: an invalid offset is a logic error at
// the call site, like out-of-range slice indexing.
func (ws *WideStr) Suffix(k int) *WideStr {
	if k < 0 || k >= len(ws.u) {
		panic(fmt.Sprintf("wstr: suffix out of bounds: the len is %d but the index is %d", len(ws.u), k))
	}
	return &WideStr{u: ws.u[k:]}
}

// Runes decodes the string one Unicode scalar at a time. A decode failure
// (an unpaired surrogate) is reported per element as ErrUnpairedSurrogate
// with unicode.ReplacementChar as the value; enumeration continues past it.
// The sequence is restartable by ranging again.
func (ws *WideStr) Runes() iter.Seq2[rune, error] {
	units := ws.Units()
	return func(yield func(rune, error) bool) {
		for i := 0; i < len(units); {
			c := rune(units[i])
			if !utf16.IsSurrogate(c) {
				if !yield(c, nil) {
					return
				}
				i++
				continue
			}
			if i+1 < len(units) {
				if r := utf16.DecodeRune(c, rune(units[i+1])); r != unicode.ReplacementChar {
					if !yield(r, nil) {
						return
					}
					i += 2
					continue
				}
			}
			if !yield(unicode.ReplacementChar, ErrUnpairedSurrogate) {
				return
			}
			i++
		}
	}
}

// String decodes the contents, substituting U+FFFD for unpaired surrogates.
func (ws *WideStr) String() string {
	var b strings.Builder
	for r := range ws.Runes() {
		b.WriteRune(r)
	}
	return b.String()
}

// Equal reports whether two views hold identical code units.
func (ws *WideStr) Equal(other *WideStr) bool {
	if len(ws.u) != len(other.u) {
		return false
	}
	for i := range ws.u {
		if ws.u[i] != other.u[i] {
			return false
		}
	}
	return true
}

// Clone copies the view into a new owned WideString.
func (ws *WideStr) Clone() *WideString {
	units := make([]uint16, len(ws.u))
	copy(units, ws.u)
	return FromUnitsUnchecked(units)
}
