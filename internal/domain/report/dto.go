package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type PeriodRequest struct {
	From       string  `json:"from"` // YYYY-MM-DD
	To         string  `json:"to"`   // YYYY-MM-DD
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}

	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Period resolves the bounds as UTC instants, upper bound exclusive.
func (r *PeriodRequest) Period() (from, to time.Time) {
	from, _ = validator.IsValidDate(r.From)
	d, _ := validator.IsValidDate(r.To)
	return from, d.AddDate(0, 0, 1)
}

type HoursSummaryRow struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	DaysWorked    int             `json:"days_worked"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type DiscountSummaryRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Type         string          `json:"type"`
	TotalValue   decimal.Decimal `json:"total_value"`
	PaidValue    decimal.Decimal `json:"paid_value"`
	UnpaidValue  decimal.Decimal `json:"unpaid_value"`
}

type AccountBalanceRow struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	Items        int             `json:"items"`
}
