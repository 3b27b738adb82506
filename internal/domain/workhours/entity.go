package workhours

import (
	"time"

	"github.com/shopspring/decimal"
)

// Standard working day and the overtime premium applied beyond it.
// These are fixed terms of the pay agreement, not configuration.
const OvertimeThresholdHours = 8

var (
	standardDay        = decimal.NewFromInt(OvertimeThresholdHours)
	overtimeMultiplier = decimal.RequireFromString("1.25")
)

// HoursRecord is derived from a closed shift, one row per shift.
type HoursRecord struct {
	ID          string
	ShiftID     string
	EmployeeID  string
	WorkDate    time.Time
	HoursWorked decimal.Decimal
	CreatedAt   time.Time
}

// OvertimeRecord exists only for shifts longer than the standard day.
// It is consumed by settlements and payments independently of the shift row.
type OvertimeRecord struct {
	ID            string
	ShiftID       string
	EmployeeID    string
	WorkDate      time.Time
	OvertimeHours decimal.Decimal
	Paid          bool
	SettlementID  *string
	PaymentID     *string
	CreatedAt     time.Time
}

// HoursBetween returns the fractional hours between two instants.
func HoursBetween(start, end time.Time) decimal.Decimal {
	seconds := decimal.NewFromFloat(end.Sub(start).Seconds())
	return seconds.Div(decimal.NewFromInt(3600))
}

// OvertimeHours returns the portion of worked hours beyond the standard day,
// never negative.
func OvertimeHours(hoursWorked decimal.Decimal) decimal.Decimal {
	over := hoursWorked.Sub(standardDay)
	if over.IsNegative() {
		return decimal.Zero
	}
	return over
}

// HourlyRate derives the hourly rate from a daily wage.
func HourlyRate(dailyWage decimal.Decimal) decimal.Decimal {
	return dailyWage.Div(standardDay)
}

// OvertimeValue prices overtime hours at the premium rate.
func OvertimeValue(overtimeHours, dailyWage decimal.Decimal) decimal.Decimal {
	return overtimeHours.Mul(HourlyRate(dailyWage)).Mul(overtimeMultiplier)
}
