package shift

import (
	"time"
)

// Shift is one clock-in/clock-out interval for an employee.
// EndAt == nil means the shift is still open. A paid shift carries exactly
// one payment source: a period settlement or a daily payment.
type Shift struct {
	ID           string
	EmployeeID   string
	StartAt      time.Time
	EndAt        *time.Time
	Paid         bool
	SettlementID *string
	PaymentID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
}

func (s Shift) IsOpen() bool {
	return s.EndAt == nil
}

// SourceKind discriminates how a shift was paid.
type SourceKind string

const (
	SourceNone       SourceKind = "none"
	SourceSettlement SourceKind = "settlement"
	SourcePayment    SourceKind = "daily_payment"
)

// PaymentSource is the tagged union over the two payment mechanisms.
// ID is empty when Kind is SourceNone.
type PaymentSource struct {
	Kind SourceKind
	ID   string
}

// Source reports which mechanism, if any, consumed this shift. A row with
// both references set is corrupt and reported as such by the caller.
func (s Shift) Source() PaymentSource {
	switch {
	case s.SettlementID != nil:
		return PaymentSource{Kind: SourceSettlement, ID: *s.SettlementID}
	case s.PaymentID != nil:
		return PaymentSource{Kind: SourcePayment, ID: *s.PaymentID}
	default:
		return PaymentSource{Kind: SourceNone}
	}
}
