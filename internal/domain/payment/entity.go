package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPayment settles a single closed shift on the day it was worked.
// It requires signed and photographed evidence; the core stores only the
// presence flags, never the bytes.
type DailyPayment struct {
	ID               string
	EmployeeID       string
	ShiftID          string
	WorkDate         time.Time
	DailyWage        decimal.Decimal
	HoursWorked      decimal.Decimal
	OvertimeHours    decimal.Decimal
	OvertimeValue    decimal.Decimal
	GrossSubtotal    decimal.Decimal
	MealGross        decimal.Decimal
	SubsidyPercent   decimal.Decimal
	MealNet          decimal.Decimal
	DeferredTotal    decimal.Decimal
	CollectedOnAccnt decimal.Decimal
	OtherDiscounts   decimal.Decimal
	TotalDiscounts   decimal.Decimal
	NetTotal         decimal.Decimal
	SignaturePresent bool
	PhotoPresent     bool
	Observations     string
	CreatedAt        time.Time

	// Joined fields
	EmployeeName *string
}
