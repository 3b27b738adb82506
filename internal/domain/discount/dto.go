package discount

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
)

// ========================================
// DISCOUNT DTOs
// ========================================

type AddDiscountRequest struct {
	EmployeeID string          `json:"employee_id"`
	Type       string          `json:"type"`
	Detail     string          `json:"detail"`
	Value      decimal.Decimal `json:"value"`
	Date       string          `json:"date"` // YYYY-MM-DD
}

func (r *AddDiscountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, ValidTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: meal_consumption, assumed_loss, loan, advance, other",
		})
	}

	if !validator.IsPositive(r.Value) {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be greater than zero",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeferToAccountRequest struct {
	DiscountID  string `json:"-"`
	Description string `json:"description"`
}

func (r *DeferToAccountRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DiscountID) {
		errs = append(errs, validator.ValidationError{
			Field:   "discount_id",
			Message: "discount_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DiscountFilter struct {
	From        *string  `json:"from,omitempty"` // YYYY-MM-DD
	To          *string  `json:"to,omitempty"`   // YYYY-MM-DD
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (f *DiscountFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != nil && *f.From != "" {
		if _, valid := validator.IsValidDate(*f.From); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}

	if f.To != nil && *f.To != "" {
		if _, valid := validator.IsValidDate(*f.To); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Range resolves the filter bounds as UTC instants, upper bound exclusive.
func (f *DiscountFilter) Range() (from, to *time.Time) {
	if f.From != nil && *f.From != "" {
		if d, ok := validator.IsValidDate(*f.From); ok {
			from = &d
		}
	}
	if f.To != nil && *f.To != "" {
		if d, ok := validator.IsValidDate(*f.To); ok {
			next := d.AddDate(0, 0, 1)
			to = &next
		}
	}
	return from, to
}

type DiscountResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Type         string          `json:"type"`
	Detail       string          `json:"detail"`
	Value        decimal.Decimal `json:"value"`
	Date         string          `json:"date"`
	Paid         bool            `json:"paid"`
	SettlementID *string         `json:"settlement_id,omitempty"`
	PaymentID    *string         `json:"payment_id,omitempty"`
}

func ToResponse(d Discount) DiscountResponse {
	return DiscountResponse{
		ID:           d.ID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		Type:         string(d.Type),
		Detail:       d.Detail,
		Value:        d.Value,
		Date:         d.Date.Format("2006-01-02"),
		Paid:         d.Paid,
		SettlementID: d.SettlementID,
		PaymentID:    d.PaymentID,
	}
}

type ConsumptionResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	DiscountID  *string         `json:"discount_id,omitempty"`
	Value       decimal.Decimal `json:"value"`
	Description string          `json:"description"`
	Paid        bool            `json:"paid"`
	PaymentID   *string         `json:"payment_id,omitempty"`
}

func ToConsumptionResponse(c AccountConsumption) ConsumptionResponse {
	return ConsumptionResponse{
		ID:          c.ID,
		EmployeeID:  c.EmployeeID,
		DiscountID:  c.DiscountID,
		Value:       c.Value,
		Description: c.Description,
		Paid:        c.Paid,
		PaymentID:   c.PaymentID,
	}
}

type AccountBalanceResponse struct {
	EmployeeID   string                `json:"employee_id"`
	Total        decimal.Decimal       `json:"total"`
	Consumptions []ConsumptionResponse `json:"consumptions"`
}
