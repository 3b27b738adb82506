package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shifts.
type ShiftRepository interface {
	// Create creates a new shift record
	Create(ctx context.Context, s Shift) (Shift, error)

	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetOpenByEmployee retrieves the employee's open shift, if any.
	// Used to enforce the one-open-shift rule.
	GetOpenByEmployee(ctx context.Context, employeeID string) (*Shift, error)

	// SetEnd closes an open shift
	SetEnd(ctx context.Context, id string, end time.Time) error

	// UpdateTimes rewrites start/end of an unpaid shift
	UpdateTimes(ctx context.Context, id string, start time.Time, end *time.Time) error

	// Delete removes an unpaid shift
	Delete(ctx context.Context, id string) error

	// ListOpen retrieves all currently open shifts
	ListOpen(ctx context.Context) ([]Shift, error)

	// ListClosedUnpaid retrieves closed unpaid shifts within a range,
	// optionally restricted to a set of employees
	ListClosedUnpaid(ctx context.Context, from, to *time.Time, employeeIDs []string) ([]Shift, error)

	// GetClosedUnpaidByEmployeeOnDay retrieves the employee's closed unpaid
	// shift that started within [dayStart, dayEnd)
	GetClosedUnpaidByEmployeeOnDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (Shift, error)

	// MarkPaidBySettlement marks the given shifts paid and linked to a
	// settlement, touching only rows still unpaid. Returns rows affected so
	// the caller can detect a concurrent consumption.
	MarkPaidBySettlement(ctx context.Context, ids []string, settlementID string) (int64, error)

	// MarkPaidByPayment marks one shift paid and linked to a daily payment,
	// guarded the same way.
	MarkPaidByPayment(ctx context.Context, id string, paymentID string) (int64, error)

	// Release clears paid and both payment references. Rows already unpaid
	// are left untouched.
	Release(ctx context.Context, ids []string) error
}
