package shift

import (
	"context"
)

// ShiftService defines business logic for the shift lifecycle
type ShiftService interface {
	// Open starts a shift for an employee; fails if one is already open
	Open(ctx context.Context, req OpenShiftRequest) (ShiftResponse, error)

	// Close ends an open shift and triggers hours/overtime derivation
	Close(ctx context.Context, req CloseShiftRequest) (ShiftResponse, error)

	// CreateManual records a back-dated, already-closed shift
	CreateManual(ctx context.Context, req CreateManualShiftRequest) (ShiftResponse, error)

	// Update rewrites the times of an unpaid shift and re-derives
	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// Delete removes an unpaid shift together with its derived records
	Delete(ctx context.Context, id string) error

	// GetShift retrieves a single shift by ID
	GetShift(ctx context.Context, id string) (ShiftResponse, error)

	// ListOpen retrieves all currently open shifts
	ListOpen(ctx context.Context) ([]ShiftResponse, error)

	// ListClosedUnpaid retrieves settlement-eligible shifts
	ListClosedUnpaid(ctx context.Context, filter ShiftFilter) ([]ShiftResponse, error)
}
