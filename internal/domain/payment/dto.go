package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
)

// ========================================
// DAILY PAYMENT DTOs
// ========================================

// Evidence carries the presence flags reported by the capture device.
type Evidence struct {
	SignaturePresent bool `json:"signature_present"`
	PhotoPresent     bool `json:"photo_present"`
}

func (e Evidence) Complete() bool {
	return e.SignaturePresent && e.PhotoPresent
}

// Deferral defers one same-day discount to the employee's account instead of
// deducting it from this payment.
type Deferral struct {
	DiscountID  string `json:"discount_id"`
	Description string `json:"description"`
}

type PayRequest struct {
	EmployeeID string `json:"employee_id"`
	// Date is the business day being paid; defaults to today.
	Date     *string  `json:"date,omitempty"` // YYYY-MM-DD
	Evidence Evidence `json:"evidence"`
	// DiscountIDs are the same-day discounts deducted from this payment.
	DiscountIDs []string `json:"discount_ids,omitempty"`
	// Deferrals move same-day consumptions to the account instead.
	Deferrals []Deferral `json:"deferrals,omitempty"`
	// CollectConsumptionIDs are outstanding account consumptions collected
	// by this payment.
	CollectConsumptionIDs []string `json:"collect_consumption_ids,omitempty"`
	Observations          string   `json:"observations"`
}

func (r *PayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	for _, d := range r.Deferrals {
		if validator.IsEmpty(d.DiscountID) {
			errs = append(errs, validator.ValidationError{
				Field:   "deferrals",
				Message: "deferral discount_id is required",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PreviewRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PreviewDiscount is one same-day discount the cashier can deduct or defer.
type PreviewDiscount struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Detail   string          `json:"detail"`
	Value    decimal.Decimal `json:"value"`
	NetValue decimal.Decimal `json:"net_value"`
}

// PreviewConsumption is one outstanding on-account row collectable today.
type PreviewConsumption struct {
	ID          string          `json:"id"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
}

// PreviewResponse is the read-only breakdown shown before paying. NetTotal
// assumes every listed discount is deducted and nothing is deferred or
// collected; Pay recomputes from the cashier's actual choices.
type PreviewResponse struct {
	EmployeeID     string               `json:"employee_id"`
	ShiftID        string               `json:"shift_id"`
	WorkDate       string               `json:"work_date"`
	DailyWage      decimal.Decimal      `json:"daily_wage"`
	HoursWorked    decimal.Decimal      `json:"hours_worked"`
	OvertimeHours  decimal.Decimal      `json:"overtime_hours"`
	OvertimeValue  decimal.Decimal      `json:"overtime_value"`
	GrossSubtotal  decimal.Decimal      `json:"gross_subtotal"`
	SubsidyPercent decimal.Decimal      `json:"subsidy_percent"`
	Discounts      []PreviewDiscount    `json:"discounts"`
	Consumptions   []PreviewConsumption `json:"consumptions"`
	TotalDiscounts decimal.Decimal      `json:"total_discounts"`
	NetTotal       decimal.Decimal      `json:"net_total"`
}

type EditPaymentRequest struct {
	PaymentID       string          `json:"-"`
	NewNetTotal     decimal.Decimal `json:"new_net_total"`
	NewObservations string          `json:"new_observations"`
}

func (r *EditPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PaymentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_id",
			Message: "payment_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PaymentResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	ShiftID          string          `json:"shift_id"`
	WorkDate         string          `json:"work_date"`
	DailyWage        decimal.Decimal `json:"daily_wage"`
	HoursWorked      decimal.Decimal `json:"hours_worked"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	OvertimeValue    decimal.Decimal `json:"overtime_value"`
	GrossSubtotal    decimal.Decimal `json:"gross_subtotal"`
	MealGross        decimal.Decimal `json:"meal_gross"`
	SubsidyPercent   decimal.Decimal `json:"subsidy_percent"`
	MealNet          decimal.Decimal `json:"meal_net"`
	DeferredTotal    decimal.Decimal `json:"deferred_total"`
	CollectedOnAccnt decimal.Decimal `json:"collected_on_account"`
	OtherDiscounts   decimal.Decimal `json:"other_discounts"`
	TotalDiscounts   decimal.Decimal `json:"total_discounts"`
	NetTotal         decimal.Decimal `json:"net_total"`
	SignaturePresent bool            `json:"signature_present"`
	PhotoPresent     bool            `json:"photo_present"`
	Observations     string          `json:"observations"`
	CreatedAt        string          `json:"created_at"`
}

func ToResponse(p DailyPayment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     p.EmployeeName,
		ShiftID:          p.ShiftID,
		WorkDate:         p.WorkDate.Format("2006-01-02"),
		DailyWage:        p.DailyWage,
		HoursWorked:      p.HoursWorked,
		OvertimeHours:    p.OvertimeHours,
		OvertimeValue:    p.OvertimeValue,
		GrossSubtotal:    p.GrossSubtotal,
		MealGross:        p.MealGross,
		SubsidyPercent:   p.SubsidyPercent,
		MealNet:          p.MealNet,
		DeferredTotal:    p.DeferredTotal,
		CollectedOnAccnt: p.CollectedOnAccnt,
		OtherDiscounts:   p.OtherDiscounts,
		TotalDiscounts:   p.TotalDiscounts,
		NetTotal:         p.NetTotal,
		SignaturePresent: p.SignaturePresent,
		PhotoPresent:     p.PhotoPresent,
		Observations:     p.Observations,
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
}
