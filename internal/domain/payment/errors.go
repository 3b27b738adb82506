package payment

import "errors"

// Daily payment domain errors
var (
	// Pay requires both evidence pieces before anything is written.
	ErrEvidenceMissing = errors.New("signature and photo evidence are required before paying")

	ErrNoPayableShift  = errors.New("employee has no closed unpaid shift for this day")
	ErrPaymentNotFound = errors.New("daily payment not found")
)
