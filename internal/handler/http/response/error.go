package response

import (
	"errors"
	"net/http"

	"github.com/surtimax/payroll-backend/internal/domain/discount"
	"github.com/surtimax/payroll-backend/internal/domain/employee"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
	"github.com/surtimax/payroll-backend/internal/domain/payment"
	"github.com/surtimax/payroll-backend/internal/domain/settlement"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftAlreadyOpen):
		Conflict(w, "Employee already has an open shift")
	case errors.Is(err, shift.ErrShiftAlreadyClosed):
		Conflict(w, "Shift is already closed")
	case errors.Is(err, shift.ErrShiftStillOpen):
		Conflict(w, "Shift is still open")
	case errors.Is(err, shift.ErrShiftAlreadyPaid):
		Conflict(w, "Shift has already been paid")
	case errors.Is(err, shift.ErrEndBeforeStart):
		BadRequest(w, "Shift end must be after its start", nil)

	// Work hours domain errors
	case errors.Is(err, workhours.ErrShiftNotClosed):
		Conflict(w, "Shift must be closed before hours can be derived")
	case errors.Is(err, workhours.ErrHoursRecordNotFound):
		NotFound(w, "Hours record not found")
	case errors.Is(err, workhours.ErrOvertimeRecordNotFound):
		NotFound(w, "Overtime record not found")

	// Discount domain errors
	case errors.Is(err, discount.ErrDiscountNotFound):
		NotFound(w, "Discount not found")
	case errors.Is(err, discount.ErrDiscountAlreadyPaid):
		Conflict(w, "Discount has already been processed")
	case errors.Is(err, discount.ErrUnknownType):
		BadRequest(w, "Unknown discount type", nil)
	case errors.Is(err, discount.ErrConsumptionNotFound):
		NotFound(w, "Account consumption not found")
	case errors.Is(err, discount.ErrConsumptionAlreadyCollected):
		Conflict(w, "Account consumption has already been collected")

	// Config domain errors
	case errors.Is(err, payconfig.ErrSettingNotFound):
		NotFound(w, "Config setting not found")

	// Settlement domain errors
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")
	case errors.Is(err, settlement.ErrDetailNotFound):
		NotFound(w, "Settlement detail not found")
	case errors.Is(err, settlement.ErrEmptyScope):
		BadRequest(w, "No pending shifts in the selected scope", nil)
	case errors.Is(err, settlement.ErrAlreadyConsumed):
		Conflict(w, "Some records were already consumed by another settlement or payment")
	case errors.Is(err, settlement.ErrSettlementAlreadyVoided):
		Conflict(w, "Settlement is already voided")
	case errors.Is(err, settlement.ErrInvalidStatus):
		Conflict(w, "Settlement status does not allow this operation")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Daily payment not found")
	case errors.Is(err, payment.ErrEvidenceMissing):
		PreconditionFailed(w, "Signature and photo evidence are required")
	case errors.Is(err, payment.ErrNoPayableShift):
		NotFound(w, "No closed unpaid shift for the employee on that day")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
