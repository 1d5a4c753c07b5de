package characteristics

import (
	"errors"
	"fmt"
)

var (
	// ErrStartupMismatch is returned when the startup time and boost arrays differ in length.
	ErrStartupMismatch = errors.New("startup time and boost arrays must have equal length")
	// ErrStartupOrder is returned when startup times are not strictly ascending.
	ErrStartupOrder = errors.New("startup times must be strictly ascending")
)

// StartupBoost rewards a quick start: accelerating within Time[i] seconds of
// the start grants Boost[i]. An empty table grants nothing.
type StartupBoost struct {
	Time  []float64 `json:"time"`
	Boost []float64 `json:"boost"`
}

// Validate checks that the arrays line up, are finite and ascend.
func (s StartupBoost) Validate() error {
	if len(s.Time) != len(s.Boost) {
		return fmt.Errorf("time=%d boost=%d: %w", len(s.Time), len(s.Boost), ErrStartupMismatch)
	}
	for i, t := range s.Time {
		if !finite(t) || !finite(s.Boost[i]) {
			return fmt.Errorf("startup level %d: %w", i, ErrNonFinite)
		}
		if i > 0 && !(t > s.Time[i-1]) {
			return fmt.Errorf("startup level %d at %g: %w", i, t, ErrStartupOrder)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (s StartupBoost) Clone() StartupBoost {
	return StartupBoost{
		Time:  append([]float64(nil), s.Time...),
		Boost: append([]float64(nil), s.Boost...),
	}
}
