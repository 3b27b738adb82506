// Package clock provides the time source used by services so that
// time-sensitive rules (open shifts, same-day payments) are testable.
package clock

import "time"

type Clock interface {
	// Now returns the current instant in UTC.
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns the real clock.
func System() Clock { return systemClock{} }

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant.UTC() }
