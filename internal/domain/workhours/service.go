package workhours

import (
	"context"

	"github.com/surtimax/payroll-backend/internal/domain/shift"
)

// WorkHoursService derives hours and overtime from closed shifts.
type WorkHoursService interface {
	// DeriveForShift computes and upserts the hours record for a closed
	// shift, plus the overtime record when the shift exceeds the standard
	// day. Idempotent per shift.
	DeriveForShift(ctx context.Context, s shift.Shift) error

	// RemoveForShift deletes derived rows when a shift is deleted
	RemoveForShift(ctx context.Context, shiftID string) error

	// SyncRange re-derives every closed shift in range that has no hours
	// record yet. Returns the number of shifts derived.
	SyncRange(ctx context.Context, req SyncRangeRequest) (SyncRangeResponse, error)
}
