package payconfig

import (
	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
)

type SetConfigRequest struct {
	Name  string          `json:"-"`
	Value decimal.Decimal `json:"value"`
}

func (r *SetConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingResponse struct {
	Name   string          `json:"name"`
	Value  decimal.Decimal `json:"value"`
	Active bool            `json:"active"`
}

func ToResponse(s Setting) SettingResponse {
	return SettingResponse{
		Name:   s.Name,
		Value:  s.Value,
		Active: s.Active,
	}
}
