package settlement

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusVoided  Status = "voided"
)

// Settlement is one batch payroll run over a date range. Its totals are
// always the sum over its details; after any detail edit they are recomputed,
// never trusted.
type Settlement struct {
	ID            string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Status        Status
	GrossTotal    decimal.Decimal
	DiscountTotal decimal.Decimal
	NetTotal      decimal.Decimal
	Observations  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SettlementDetail is the per-employee line of a settlement. The linked id
// lists are what the void/delete cascade releases; SubsidyPercent is the
// configuration snapshot taken at commit time.
type SettlementDetail struct {
	ID               string
	SettlementID     string
	EmployeeID       string
	DaysWorked       int
	HoursWorked      decimal.Decimal
	OvertimeHours    decimal.Decimal
	DailyWage        decimal.Decimal
	OvertimeValue    decimal.Decimal
	GrossSubtotal    decimal.Decimal
	MealGross        decimal.Decimal
	SubsidyPercent   decimal.Decimal
	MealNet          decimal.Decimal
	OtherDiscounts   decimal.Decimal
	TotalDiscounts   decimal.Decimal
	ManualAdjustment decimal.Decimal
	NetTotal         decimal.Decimal
	Observations     string
	ShiftIDs         []string
	OvertimeIDs      []string
	DiscountIDs      []string

	// Joined fields
	EmployeeName *string
}

// Draft carries the pre-commit manual adjustments keyed by employee. It is
// passed explicitly into preview building; there is no ambient draft state.
type Draft struct {
	Adjustments map[string]decimal.Decimal
}

// AdjustmentFor returns the draft adjustment for an employee, zero when none
// was entered.
func (d Draft) AdjustmentFor(employeeID string) decimal.Decimal {
	if d.Adjustments == nil {
		return decimal.Zero
	}
	if adj, ok := d.Adjustments[employeeID]; ok {
		return adj
	}
	return decimal.Zero
}
