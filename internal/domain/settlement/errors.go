package settlement

import "errors"

// Settlement domain errors
var (
	// Commit errors
	ErrEmptyScope      = errors.New("settlement scope contains no payable records")
	ErrAlreadyConsumed = errors.New("a linked record was already paid by a concurrent operation")

	// Status errors
	ErrSettlementAlreadyVoided = errors.New("settlement is already voided")
	ErrInvalidStatus           = errors.New("settlement status does not allow this operation")

	// General errors
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrDetailNotFound     = errors.New("settlement detail not found")
)
