package workhours

import "errors"

var (
	ErrHoursRecordNotFound    = errors.New("hours record not found")
	ErrOvertimeRecordNotFound = errors.New("overtime record not found")
	ErrShiftNotClosed         = errors.New("cannot derive hours for an open shift")
)
