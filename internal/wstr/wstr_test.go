package wstr

import (
	"errors"
	"testing"
	"unicode"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
)

func wideStringsEqual(target, actual []uint16) bool {
	if len(target) != len(actual) {
		return false
	}
	for i := range target {
		if target[i] != actual[i] {
			return false
		}
	}
	return true
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected %s to panic", name)
		}
	}()
	f()
}

func TestNewRoundTrip(t *testing.T) {
	targets := []string{"", "abcde", "abcd\n", `C:\Test`, `\&_Test`, "héllo", "a\U0001F642b"}
	for _, target := range targets {
		ws, err := New(String(target))
		if err != nil {
			t.Fatalf("failed to convert %q: %v", target, err)
		}

		want := utf16.Encode([]rune(target))
		if !wideStringsEqual(want, ws.Units()) {
			t.Fatalf("expected units %v for %q, got %v", want, target, ws.Units())
		}
		if n := ws.UnitsWithNul(); n[len(n)-1] != 0 {
			t.Fatalf("expected %q to be nul terminated, got %v", target, n)
		}
		if ws.Len() != len(want) {
			t.Fatalf("expected len %d for %q, got %d", len(want), target, ws.Len())
		}
		if got := ws.String(); got != target {
			t.Fatalf("expected round trip %q, got %q", target, got)
		}
	}
}

func TestNewFromUnitsSource(t *testing.T) {
	units := []uint16{'t', 'o', 'm', 'l'}
	ws, err := New(Units(units))
	if err != nil {
		t.Fatalf("failed to convert units: %v", err)
	}
	if !wideStringsEqual(units, ws.Units()) {
		t.Fatalf("expected %v, got %v", units, ws.Units())
	}

	// Converting an existing view copies it.
	again, err := New(&ws.WideStr)
	if err != nil {
		t.Fatalf("failed to convert view: %v", err)
	}
	if !again.Equal(&ws.WideStr) {
		t.Fatalf("expected %v, got %v", ws.UnitsWithNul(), again.UnitsWithNul())
	}
	if again.Ptr() == ws.Ptr() {
		t.Fatal("expected the converted view to own fresh storage")
	}
}

func TestNewInteriorNul(t *testing.T) {
	tests := []struct {
		units []uint16
		pos   int
	}{
		{[]uint16{0}, 0},
		{[]uint16{0, 'a'}, 0},
		{[]uint16{'a', 0, 'b'}, 1},
		{[]uint16{'a', 'b', 0}, 2},
		{[]uint16{'a', 0, 'b', 0}, 1},
	}
	for _, tt := range tests {
		_, err := New(Units(tt.units))
		nerr := &NulError{}
		if !errors.As(err, &nerr) {
			t.Fatalf("expected a NulError for %v, got %v", tt.units, err)
		}
		if nerr.Position != tt.pos {
			t.Fatalf("expected nul position %d for %v, got %d", tt.pos, tt.units, nerr.Position)
		}
		// The rejected data is returned untouched, terminator not appended.
		if !wideStringsEqual(tt.units, nerr.Data) {
			t.Fatalf("expected rejected data %v, got %v", tt.units, nerr.Data)
		}
	}
}

func TestFromUnits(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		kind  UnitsErrorKind
		pos   int
	}{
		{"terminator only", []uint16{0}, -1, 0},
		{"valid", []uint16{'t', 'o', 'm', 'l', 0}, -1, 0},
		{"no terminator", []uint16{'t', 'o'}, NotNulTerminated, -1},
		{"empty", nil, NotNulTerminated, -1},
		{"interior nul", []uint16{'t', 0, 'l', 0}, InteriorNul, 1},
		{"leading nul", []uint16{0, 'a', 0}, InteriorNul, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]uint16, len(tt.units))
			copy(input, tt.units)

			ws, err := FromUnits(input)
			if tt.kind < 0 {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				if !wideStringsEqual(tt.units, ws.UnitsWithNul()) {
					t.Fatalf("expected %v unchanged, got %v", tt.units, ws.UnitsWithNul())
				}
				return
			}

			uerr := &UnitsError{}
			if !errors.As(err, &uerr) {
				t.Fatalf("expected a UnitsError, got %v", err)
			}
			if uerr.Kind != tt.kind || uerr.Position != tt.pos {
				t.Fatalf("expected kind %v at %d, got kind %v at %d", tt.kind, tt.pos, uerr.Kind, uerr.Position)
			}
			// Validation never mutates the caller's buffer.
			if !wideStringsEqual(tt.units, input) {
				t.Fatalf("expected input %v unmodified, got %v", tt.units, input)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	ws, err := New(String("abc"))
	if err != nil {
		t.Fatal(err)
	}

	for k := 0; k < len(ws.UnitsWithNul()); k++ {
		suffix := ws.Suffix(k)
		if !wideStringsEqual(ws.UnitsWithNul()[k:], suffix.UnitsWithNul()) {
			t.Fatalf("expected suffix %v at %d, got %v", ws.UnitsWithNul()[k:], k, suffix.UnitsWithNul())
		}
	}

	if got := ws.Suffix(3).String(); got != "" {
		t.Fatalf("expected the terminator-only suffix to decode empty, got %q", got)
	}
	if got := ws.Suffix(1).String(); got != "bc" {
		t.Fatalf("expected suffix %q, got %q", "bc", got)
	}

	mustPanic(t, "Suffix(4)", func() { ws.Suffix(4) })
	mustPanic(t, "Suffix(-1)", func() { ws.Suffix(-1) })
}

func TestRunes(t *testing.T) {
	ws, err := New(String("a\U0001F642b"))
	if err != nil {
		t.Fatal(err)
	}

	collect := func() ([]rune, []error) {
		var rs []rune
		var errs []error
		for r, err := range ws.Runes() {
			rs = append(rs, r)
			errs = append(errs, err)
		}
		return rs, errs
	}

	rs, errs := collect()
	if diff := cmp.Diff([]rune{'a', 0x1F642, 'b'}, rs); diff != "" {
		t.Fatalf("unexpected runes (-want +got):\n%s", diff)
	}
	for i, err := range errs {
		if err != nil {
			t.Fatalf("unexpected decode error at %d: %v", i, err)
		}
	}

	// The sequence restarts from the beginning when ranged again.
	again, _ := collect()
	if diff := cmp.Diff(rs, again); diff != "" {
		t.Fatalf("expected a restartable sequence (-first +second):\n%s", diff)
	}
}

func TestRunesUnpairedSurrogate(t *testing.T) {
	// High surrogate with no partner, then ordinary text.
	ws := FromUnitsUnchecked([]uint16{0xD800, 'x', 0})

	var rs []rune
	var errs []error
	for r, err := range ws.Runes() {
		rs = append(rs, r)
		errs = append(errs, err)
	}

	if len(rs) != 2 {
		t.Fatalf("expected 2 results, got %v", rs)
	}
	if rs[0] != unicode.ReplacementChar || !errors.Is(errs[0], ErrUnpairedSurrogate) {
		t.Fatalf("expected a per-element surrogate error, got %q %v", rs[0], errs[0])
	}
	if rs[1] != 'x' || errs[1] != nil {
		t.Fatalf("expected enumeration to continue past the error, got %q %v", rs[1], errs[1])
	}
}

func TestClone(t *testing.T) {
	ws, err := New(String("abc"))
	if err != nil {
		t.Fatal(err)
	}
	clone := ws.Clone()
	if !clone.Equal(&ws.WideStr) {
		t.Fatalf("expected clone %v, got %v", ws.UnitsWithNul(), clone.UnitsWithNul())
	}
	if clone.Ptr() == ws.Ptr() {
		t.Fatal("expected the clone to own fresh storage")
	}
}
