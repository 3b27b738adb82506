package discount

import "errors"

// Discount domain errors
var (
	ErrDiscountNotFound    = errors.New("discount not found")
	ErrDiscountAlreadyPaid = errors.New("discount has already been processed")
	ErrUnknownType         = errors.New("unknown discount type")

	ErrConsumptionNotFound         = errors.New("account consumption not found")
	ErrConsumptionAlreadyCollected = errors.New("account consumption has already been collected")
)
