package settlement

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
)

// ========================================
// PREVIEW DTOs
// ========================================

type BuildPreviewRequest struct {
	From        string   `json:"from"` // YYYY-MM-DD
	To          string   `json:"to"`   // YYYY-MM-DD
	EmployeeIDs []string `json:"employee_ids,omitempty"`
	// Adjustments is the manual adjustment per employee, applied before
	// commit. Missing employees default to zero.
	Adjustments map[string]decimal.Decimal `json:"adjustments,omitempty"`
}

func (r *BuildPreviewRequest) Validate() error {
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

// Period resolves the request bounds as UTC instants, upper bound exclusive.
func (r *BuildPreviewRequest) Period() (from, to time.Time) {
	from, _ = validator.IsValidDate(r.From)
	d, _ := validator.IsValidDate(r.To)
	return from, d.AddDate(0, 0, 1)
}

// Draft builds the adjustment value object carried by the preview.
func (r *BuildPreviewRequest) Draft() Draft {
	return Draft{Adjustments: r.Adjustments}
}

// PreviewRow is the computed line for one employee. The id lists are carried
// through to commit so the consumed records can be marked and later released.
type PreviewRow struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	DaysWorked       int             `json:"days_worked"`
	HoursWorked      decimal.Decimal `json:"hours_worked"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	DailyWage        decimal.Decimal `json:"daily_wage"`
	OvertimeValue    decimal.Decimal `json:"overtime_value"`
	GrossSubtotal    decimal.Decimal `json:"gross_subtotal"`
	MealGross        decimal.Decimal `json:"meal_gross"`
	SubsidyPercent   decimal.Decimal `json:"subsidy_percent"`
	MealNet          decimal.Decimal `json:"meal_net"`
	OtherDiscounts   decimal.Decimal `json:"other_discounts"`
	TotalDiscounts   decimal.Decimal `json:"total_discounts"`
	ManualAdjustment decimal.Decimal `json:"manual_adjustment"`
	NetTotal         decimal.Decimal `json:"net_total"`
	ShiftIDs         []string        `json:"shift_ids"`
	OvertimeIDs      []string        `json:"overtime_ids"`
	DiscountIDs      []string        `json:"discount_ids"`
}

type Preview struct {
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	Rows          []PreviewRow    `json:"rows"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
}

// ========================================
// SETTLEMENT DTOs
// ========================================

type CommitRequest struct {
	Preview      Preview `json:"preview"`
	Observations string  `json:"observations"`
}

type EditDetailRequest struct {
	DetailID        string          `json:"-"`
	NewAdjustment   decimal.Decimal `json:"new_adjustment"`
	NewObservations string          `json:"new_observations"`
}

func (r *EditDetailRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DetailID) {
		errs = append(errs, validator.ValidationError{
			Field:   "detail_id",
			Message: "detail_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettlementFilter struct {
	Status *string `json:"status,omitempty"`
	From   *string `json:"from,omitempty"` // YYYY-MM-DD
	To     *string `json:"to,omitempty"`   // YYYY-MM-DD
}

func (f *SettlementFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		valid := []string{string(StatusPending), string(StatusPaid), string(StatusVoided)}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, paid, voided",
			})
		}
	}

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

type DetailResponse struct {
	ID               string          `json:"id"`
	SettlementID     string          `json:"settlement_id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	DaysWorked       int             `json:"days_worked"`
	HoursWorked      decimal.Decimal `json:"hours_worked"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	DailyWage        decimal.Decimal `json:"daily_wage"`
	OvertimeValue    decimal.Decimal `json:"overtime_value"`
	GrossSubtotal    decimal.Decimal `json:"gross_subtotal"`
	MealGross        decimal.Decimal `json:"meal_gross"`
	SubsidyPercent   decimal.Decimal `json:"subsidy_percent"`
	MealNet          decimal.Decimal `json:"meal_net"`
	OtherDiscounts   decimal.Decimal `json:"other_discounts"`
	TotalDiscounts   decimal.Decimal `json:"total_discounts"`
	ManualAdjustment decimal.Decimal `json:"manual_adjustment"`
	NetTotal         decimal.Decimal `json:"net_total"`
	Observations     string          `json:"observations"`
}

func ToDetailResponse(d SettlementDetail) DetailResponse {
	return DetailResponse{
		ID:               d.ID,
		SettlementID:     d.SettlementID,
		EmployeeID:       d.EmployeeID,
		EmployeeName:     d.EmployeeName,
		DaysWorked:       d.DaysWorked,
		HoursWorked:      d.HoursWorked,
		OvertimeHours:    d.OvertimeHours,
		DailyWage:        d.DailyWage,
		OvertimeValue:    d.OvertimeValue,
		GrossSubtotal:    d.GrossSubtotal,
		MealGross:        d.MealGross,
		SubsidyPercent:   d.SubsidyPercent,
		MealNet:          d.MealNet,
		OtherDiscounts:   d.OtherDiscounts,
		TotalDiscounts:   d.TotalDiscounts,
		ManualAdjustment: d.ManualAdjustment,
		NetTotal:         d.NetTotal,
		Observations:     d.Observations,
	}
}

type SettlementResponse struct {
	ID            string           `json:"id"`
	PeriodStart   string           `json:"period_start"`
	PeriodEnd     string           `json:"period_end"`
	Status        string           `json:"status"`
	GrossTotal    decimal.Decimal  `json:"gross_total"`
	DiscountTotal decimal.Decimal  `json:"discount_total"`
	NetTotal      decimal.Decimal  `json:"net_total"`
	Observations  string           `json:"observations"`
	CreatedAt     string           `json:"created_at"`
	Details       []DetailResponse `json:"details,omitempty"`
}

func ToResponse(s Settlement, details []SettlementDetail) SettlementResponse {
	resp := SettlementResponse{
		ID:            s.ID,
		PeriodStart:   s.PeriodStart.Format("2006-01-02"),
		PeriodEnd:     s.PeriodEnd.Format("2006-01-02"),
		Status:        string(s.Status),
		GrossTotal:    s.GrossTotal,
		DiscountTotal: s.DiscountTotal,
		NetTotal:      s.NetTotal,
		Observations:  s.Observations,
		CreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}
	for _, d := range details {
		resp.Details = append(resp.Details, ToDetailResponse(d))
	}
	return resp
}
