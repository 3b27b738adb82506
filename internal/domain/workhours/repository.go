package workhours

import (
	"context"
	"time"
)

// WorkHoursRepository defines data access for derived hours and overtime.
// Derivation writes are upserts keyed by shift id so re-deriving never
// duplicates rows.
type WorkHoursRepository interface {
	// Hours
	UpsertHours(ctx context.Context, rec HoursRecord) (HoursRecord, error)
	GetHoursByShift(ctx context.Context, shiftID string) (HoursRecord, error)
	ListHoursByShiftIDs(ctx context.Context, shiftIDs []string) ([]HoursRecord, error)
	DeleteHoursByShift(ctx context.Context, shiftID string) error

	// Overtime
	UpsertOvertime(ctx context.Context, rec OvertimeRecord) (OvertimeRecord, error)
	GetOvertimeByShift(ctx context.Context, shiftID string) (OvertimeRecord, error)
	DeleteOvertimeByShift(ctx context.Context, shiftID string) error
	ListUnpaidOvertime(ctx context.Context, from, to *time.Time, employeeIDs []string) ([]OvertimeRecord, error)

	// MarkOvertimePaidBySettlement marks overtime rows paid and linked,
	// touching only rows still unpaid. Returns rows affected.
	MarkOvertimePaidBySettlement(ctx context.Context, ids []string, settlementID string) (int64, error)

	// MarkOvertimePaidByPayment links a single shift's overtime to a daily
	// payment. Shifts without overtime are a no-op.
	MarkOvertimePaidByPayment(ctx context.Context, shiftID string, paymentID string) error

	// ReleaseOvertime clears paid and payment references on overtime rows
	ReleaseOvertime(ctx context.Context, ids []string) error

	// ReleaseOvertimeByPayment releases the overtime consumed by a payment
	ReleaseOvertimeByPayment(ctx context.Context, paymentID string) error

	// ListUnderivedShiftIDs returns closed shifts in range lacking an hours
	// record, for the batch re-derive pass
	ListUnderivedShiftIDs(ctx context.Context, from, to time.Time) ([]string, error)
}
