package wstr

import (
	"errors"
	"fmt"
)

// ErrUnpairedSurrogate is reported per element by WideStr.Runes when a
// surrogate code unit has no valid partner.
var ErrUnpairedSurrogate = errors.New("unpaired surrogate")

// NulError is returned by New when the converted units contain a zero. Data
// holds the original units with no terminator appended, so the rejected
// input can be inspected or reused.
type NulError struct {
	Position int
	Data     []uint16
}

func (e *NulError) Error() string {
	return fmt.Sprintf("nul code unit found in provided data at position %d", e.Position)
}

// UnitsErrorKind discriminates the ways a caller-supplied "already
// terminated" buffer can fail validation.
type UnitsErrorKind int

const (
	// NotNulTerminated means no zero unit was found anywhere.
	NotNulTerminated UnitsErrorKind = iota
	// InteriorNul means a zero unit was found before the final position.
	InteriorNul
)

// UnitsError is returned by FromUnits. Data holds the unmodified input
// buffer. Position is the index of the offending zero for InteriorNul and -1
// for NotNulTerminated.
type UnitsError struct {
	Kind     UnitsErrorKind
	Position int
	Data     []uint16
}

func (e *UnitsError) Error() string {
	switch e.Kind {
	case InteriorNul:
		return fmt.Sprintf("data provided contains an interior nul code unit at position %d", e.Position)
	default:
		return "data provided is not nul terminated"
	}
}
