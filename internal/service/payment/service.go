package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/domain/discount"
	"github.com/surtimax/payroll-backend/internal/domain/employee"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
	"github.com/surtimax/payroll-backend/internal/domain/payment"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/pkg/clock"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
	"github.com/surtimax/payroll-backend/internal/repository/postgresql"
)

type PaymentServiceImpl struct {
	paymentRepo   payment.PaymentRepository
	shiftRepo     shift.ShiftRepository
	workHoursRepo workhours.WorkHoursRepository
	discountRepo  discount.DiscountRepository
	employeeRepo  employee.EmployeeRepository
	configSvc     payconfig.ConfigService
	clock         clock.Clock
	loc           *time.Location
	runTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewPaymentService(
	db *database.DB,
	paymentRepo payment.PaymentRepository,
	shiftRepo shift.ShiftRepository,
	workHoursRepo workhours.WorkHoursRepository,
	discountRepo discount.DiscountRepository,
	employeeRepo employee.EmployeeRepository,
	configSvc payconfig.ConfigService,
	clk clock.Clock,
	loc *time.Location,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:   paymentRepo,
		shiftRepo:     shiftRepo,
		workHoursRepo: workHoursRepo,
		discountRepo:  discountRepo,
		employeeRepo:  employeeRepo,
		configSvc:     configSvc,
		clock:         clk,
		loc:           loc,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// dayBounds resolves a business day in the configured zone to UTC instants.
func (s *PaymentServiceImpl) dayBounds(date *string) (time.Time, time.Time) {
	var day time.Time
	if date != nil && *date != "" {
		if d, ok := validator.IsValidDate(*date); ok {
			day = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
		}
	}
	if day.IsZero() {
		now := s.clock.Now().In(s.loc)
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	}
	return day.UTC(), day.AddDate(0, 0, 1).UTC()
}

// BuildPreview gathers everything payable for the employee's business day.
// It never writes; Pay prices again from the cashier's actual choices.
func (s *PaymentServiceImpl) BuildPreview(ctx context.Context, req payment.PreviewRequest) (payment.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PreviewResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payment.PreviewResponse{}, err
	}

	dayStart, dayEnd := s.dayBounds(req.Date)

	sh, err := s.shiftRepo.GetClosedUnpaidByEmployeeOnDay(ctx, req.EmployeeID, dayStart, dayEnd)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return payment.PreviewResponse{}, payment.ErrNoPayableShift
		}
		return payment.PreviewResponse{}, err
	}

	hoursRec, err := s.workHoursRepo.GetHoursByShift(ctx, sh.ID)
	if err != nil {
		return payment.PreviewResponse{}, err
	}

	subsidyPercent, err := s.configSvc.Get(ctx, payconfig.KeyMealSubsidyPercent)
	if err != nil {
		return payment.PreviewResponse{}, err
	}

	overtimeHours := decimal.Zero
	otRec, err := s.workHoursRepo.GetOvertimeByShift(ctx, sh.ID)
	if err == nil {
		overtimeHours = otRec.OvertimeHours
	} else if !errors.Is(err, workhours.ErrOvertimeRecordNotFound) {
		return payment.PreviewResponse{}, err
	}
	overtimeValue := workhours.OvertimeValue(overtimeHours, emp.DailyWage)
	grossSubtotal := emp.DailyWage.Add(overtimeValue)

	dayDiscounts, err := s.discountRepo.ListUnpaidByEmployeeOnDay(ctx, req.EmployeeID, dayStart, dayEnd)
	if err != nil {
		return payment.PreviewResponse{}, err
	}

	resp := payment.PreviewResponse{
		EmployeeID:     emp.ID,
		ShiftID:        sh.ID,
		WorkDate:       dayStart.Format("2006-01-02"),
		DailyWage:      emp.DailyWage,
		HoursWorked:    hoursRec.HoursWorked,
		OvertimeHours:  overtimeHours,
		OvertimeValue:  overtimeValue,
		GrossSubtotal:  grossSubtotal,
		SubsidyPercent: subsidyPercent,
		Discounts:      []payment.PreviewDiscount{},
		Consumptions:   []payment.PreviewConsumption{},
		TotalDiscounts: decimal.Zero,
	}

	for _, d := range dayDiscounts {
		net := discount.NetValue(d, subsidyPercent)
		resp.Discounts = append(resp.Discounts, payment.PreviewDiscount{
			ID:       d.ID,
			Type:     string(d.Type),
			Detail:   d.Detail,
			Value:    d.Value,
			NetValue: net,
		})
		resp.TotalDiscounts = resp.TotalDiscounts.Add(net)
	}

	consumptions, err := s.discountRepo.ListUnpaidConsumptions(ctx, req.EmployeeID)
	if err != nil {
		return payment.PreviewResponse{}, err
	}
	for _, c := range consumptions {
		resp.Consumptions = append(resp.Consumptions, payment.PreviewConsumption{
			ID:          c.ID,
			Value:       c.Value,
			Description: c.Description,
		})
	}

	resp.NetTotal = grossSubtotal.Sub(resp.TotalDiscounts)
	return resp, nil
}

func (s *PaymentServiceImpl) Pay(ctx context.Context, req payment.PayRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	// Evidence gates the whole operation; nothing below runs without it.
	if !req.Evidence.Complete() {
		return payment.PaymentResponse{}, payment.ErrEvidenceMissing
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	dayStart, dayEnd := s.dayBounds(req.Date)

	sh, err := s.shiftRepo.GetClosedUnpaidByEmployeeOnDay(ctx, req.EmployeeID, dayStart, dayEnd)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return payment.PaymentResponse{}, payment.ErrNoPayableShift
		}
		return payment.PaymentResponse{}, err
	}

	hoursRec, err := s.workHoursRepo.GetHoursByShift(ctx, sh.ID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	subsidyPercent, err := s.configSvc.Get(ctx, payconfig.KeyMealSubsidyPercent)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	dayDiscounts, err := s.discountRepo.ListUnpaidByEmployeeOnDay(ctx, req.EmployeeID, dayStart, dayEnd)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	discountByID := make(map[string]discount.Discount, len(dayDiscounts))
	for _, d := range dayDiscounts {
		discountByID[d.ID] = d
	}

	// Price the breakdown from stored records; client-sent figures are
	// never trusted.
	overtimeHours := decimal.Zero
	otRec, err := s.workHoursRepo.GetOvertimeByShift(ctx, sh.ID)
	if err == nil {
		overtimeHours = otRec.OvertimeHours
	} else if !errors.Is(err, workhours.ErrOvertimeRecordNotFound) {
		return payment.PaymentResponse{}, err
	}
	overtimeValue := workhours.OvertimeValue(overtimeHours, emp.DailyWage)
	grossSubtotal := emp.DailyWage.Add(overtimeValue)

	mealGross, mealNet := decimal.Zero, decimal.Zero
	otherDiscounts := decimal.Zero
	for _, id := range req.DiscountIDs {
		d, ok := discountByID[id]
		if !ok {
			return payment.PaymentResponse{}, discount.ErrDiscountNotFound
		}
		if d.Type == discount.TypeMealConsumption {
			mealGross = mealGross.Add(d.Value)
			mealNet = mealNet.Add(discount.NetValue(d, subsidyPercent))
		} else {
			otherDiscounts = otherDiscounts.Add(d.Value)
		}
	}

	deferredTotal := decimal.Zero
	for _, def := range req.Deferrals {
		d, ok := discountByID[def.DiscountID]
		if !ok {
			return payment.PaymentResponse{}, discount.ErrDiscountNotFound
		}
		deferredTotal = deferredTotal.Add(d.Value)
	}

	collectedTotal := decimal.Zero
	for _, id := range req.CollectConsumptionIDs {
		c, err := s.discountRepo.GetConsumptionByID(ctx, id)
		if err != nil {
			return payment.PaymentResponse{}, err
		}
		if c.EmployeeID != req.EmployeeID {
			return payment.PaymentResponse{}, discount.ErrConsumptionNotFound
		}
		if c.Paid {
			return payment.PaymentResponse{}, discount.ErrConsumptionAlreadyCollected
		}
		collectedTotal = collectedTotal.Add(c.Value)
	}

	totalDiscounts := mealNet.Add(otherDiscounts).Add(collectedTotal)
	netTotal := grossSubtotal.Sub(totalDiscounts)

	p := payment.DailyPayment{
		ID:               uuid.NewString(),
		EmployeeID:       emp.ID,
		ShiftID:          sh.ID,
		WorkDate:         dayStart,
		DailyWage:        emp.DailyWage,
		HoursWorked:      hoursRec.HoursWorked,
		OvertimeHours:    overtimeHours,
		OvertimeValue:    overtimeValue,
		GrossSubtotal:    grossSubtotal,
		MealGross:        mealGross,
		SubsidyPercent:   subsidyPercent,
		MealNet:          mealNet,
		DeferredTotal:    deferredTotal,
		CollectedOnAccnt: collectedTotal,
		OtherDiscounts:   otherDiscounts,
		TotalDiscounts:   totalDiscounts,
		NetTotal:         netTotal,
		SignaturePresent: req.Evidence.SignaturePresent,
		PhotoPresent:     req.Evidence.PhotoPresent,
		Observations:     req.Observations,
	}

	var created payment.DailyPayment
	err = s.runTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.paymentRepo.Create(txCtx, p)
		if txErr != nil {
			return txErr
		}

		// Guarded claim of the shift; losing the race aborts everything.
		affected, txErr := s.shiftRepo.MarkPaidByPayment(txCtx, sh.ID, created.ID)
		if txErr != nil {
			return txErr
		}
		if affected != 1 {
			return shift.ErrShiftAlreadyPaid
		}

		if txErr := s.workHoursRepo.MarkOvertimePaidByPayment(txCtx, sh.ID, created.ID); txErr != nil {
			return txErr
		}

		if len(req.DiscountIDs) > 0 {
			affected, txErr := s.discountRepo.MarkPaidByPayment(txCtx, req.DiscountIDs, created.ID)
			if txErr != nil {
				return txErr
			}
			if affected != int64(len(req.DiscountIDs)) {
				return discount.ErrDiscountAlreadyPaid
			}
		}

		for _, def := range req.Deferrals {
			d := discountByID[def.DiscountID]
			if txErr := s.discountRepo.MarkDeferred(txCtx, d.ID); txErr != nil {
				return txErr
			}
			description := def.Description
			if validator.IsEmpty(description) {
				description = d.Detail
			}
			if _, txErr := s.discountRepo.CreateConsumption(txCtx, discount.AccountConsumption{
				ID:          uuid.NewString(),
				EmployeeID:  emp.ID,
				DiscountID:  &d.ID,
				Value:       d.Value,
				Description: description,
			}); txErr != nil {
				return txErr
			}
		}

		if len(req.CollectConsumptionIDs) > 0 {
			affected, txErr := s.discountRepo.CollectConsumptions(txCtx, req.CollectConsumptionIDs, created.ID)
			if txErr != nil {
				return txErr
			}
			if affected != int64(len(req.CollectConsumptionIDs)) {
				return discount.ErrConsumptionAlreadyCollected
			}
		}

		return nil
	})
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return payment.ToResponse(created), nil
}

// Delete reverses the payment's effects. Deferrals it created are left in
// place: the consumption moved to the account when the discount was
// processed, not when this payment row was written.
func (s *PaymentServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.shiftRepo.Release(txCtx, []string{current.ShiftID}); err != nil {
			return err
		}
		if err := s.workHoursRepo.ReleaseOvertimeByPayment(txCtx, current.ID); err != nil {
			return err
		}
		if err := s.discountRepo.ReleaseByPayment(txCtx, current.ID); err != nil {
			return err
		}
		if err := s.discountRepo.ReleaseConsumptionsByPayment(txCtx, current.ID); err != nil {
			return err
		}
		return s.paymentRepo.Delete(txCtx, current.ID)
	})
}

// Edit overwrites the stored net total without recomputing the breakdown.
func (s *PaymentServiceImpl) Edit(ctx context.Context, req payment.EditPaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	current, err := s.paymentRepo.GetByID(ctx, req.PaymentID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	if err := s.paymentRepo.UpdateNetTotal(ctx, current.ID, req.NewNetTotal, req.NewObservations); err != nil {
		return payment.PaymentResponse{}, err
	}

	current.NetTotal = req.NewNetTotal
	current.Observations = req.NewObservations
	return payment.ToResponse(current), nil
}

func (s *PaymentServiceImpl) GetPayment(ctx context.Context, id string) (payment.PaymentResponse, error) {
	found, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return payment.ToResponse(found), nil
}

func (s *PaymentServiceImpl) ListByDate(ctx context.Context, date string) ([]payment.PaymentResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	dayStart, dayEnd := s.dayBounds(&date)
	payments, err := s.paymentRepo.ListByDate(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, payment.ToResponse(p))
	}
	return responses, nil
}
