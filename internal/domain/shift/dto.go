package shift

import (
	"time"

	"github.com/surtimax/payroll-backend/internal/pkg/validator"
)

// ========================================
// SHIFT DTOs
// ========================================

type OpenShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	// At overrides the clock-in instant; defaults to now.
	At *string `json:"at,omitempty"` // RFC3339
}

func (r *OpenShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.At != nil && *r.At != "" {
		if _, valid := validator.IsValidDateTime(*r.At); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "at",
				Message: "at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CloseShiftRequest struct {
	ShiftID string `json:"-"`
	// At overrides the clock-out instant; defaults to now.
	At *string `json:"at,omitempty"` // RFC3339
}

func (r *CloseShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if r.At != nil && *r.At != "" {
		if _, valid := validator.IsValidDateTime(*r.At); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "at",
				Message: "at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateManualShiftRequest is the back-dated entry path for shifts that were
// never clocked through the terminal.
type CreateManualShiftRequest struct {
	EmployeeID string `json:"employee_id"`
	StartAt    string `json:"start_at"` // RFC3339
	EndAt      string `json:"end_at"`   // RFC3339
}

func (r *CreateManualShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDateTime(r.StartAt)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_at",
			Message: "start_at must be an RFC3339 timestamp",
		})
	}

	end, endOK := validator.IsValidDateTime(r.EndAt)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be an RFC3339 timestamp",
		})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be after start_at",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	ShiftID string  `json:"-"`
	StartAt *string `json:"start_at,omitempty"` // RFC3339
	EndAt   *string `json:"end_at,omitempty"`   // RFC3339
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if r.StartAt == nil && r.EndAt == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_at",
			Message: "at least one of start_at or end_at must be provided",
		})
	}

	if r.StartAt != nil {
		if _, valid := validator.IsValidDateTime(*r.StartAt); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_at",
				Message: "start_at must be an RFC3339 timestamp",
			})
		}
	}

	if r.EndAt != nil {
		if _, valid := validator.IsValidDateTime(*r.EndAt); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_at",
				Message: "end_at must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftFilter narrows closed-unpaid listings to a date range and an optional
// employee subset.
type ShiftFilter struct {
	From        *string  `json:"from,omitempty"` // YYYY-MM-DD
	To          *string  `json:"to,omitempty"`   // YYYY-MM-DD
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (f *ShiftFilter) Validate() error {
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

// Range resolves the filter bounds as UTC instants. The upper bound is
// exclusive (start of the day after To).
func (f *ShiftFilter) Range() (from, to *time.Time) {
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

type ShiftResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	StartAt       string  `json:"start_at"`
	EndAt         *string `json:"end_at,omitempty"`
	Paid          bool    `json:"paid"`
	PaymentSource string  `json:"payment_source"`
	SettlementID  *string `json:"settlement_id,omitempty"`
	PaymentID     *string `json:"payment_id,omitempty"`
}

func ToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:            s.ID,
		EmployeeID:    s.EmployeeID,
		EmployeeName:  s.EmployeeName,
		StartAt:       s.StartAt.Format(time.RFC3339),
		Paid:          s.Paid,
		PaymentSource: string(s.Source().Kind),
		SettlementID:  s.SettlementID,
		PaymentID:     s.PaymentID,
	}
	if s.EndAt != nil {
		end := s.EndAt.Format(time.RFC3339)
		resp.EndAt = &end
	}
	return resp
}
