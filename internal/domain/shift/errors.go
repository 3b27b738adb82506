package shift

import "errors"

// Shift domain errors
var (
	// Lifecycle errors
	ErrShiftAlreadyOpen   = errors.New("employee already has an open shift")
	ErrShiftAlreadyClosed = errors.New("shift is already closed")
	ErrShiftStillOpen     = errors.New("shift is still open")
	ErrEndBeforeStart     = errors.New("shift end must be after its start")

	// Payment errors
	ErrShiftAlreadyPaid = errors.New("shift has already been paid")

	// General errors
	ErrShiftNotFound = errors.New("shift not found")
)
