package settlement

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/domain/discount"
	"github.com/surtimax/payroll-backend/internal/domain/employee"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
	"github.com/surtimax/payroll-backend/internal/domain/settlement"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
	"github.com/surtimax/payroll-backend/internal/repository/postgresql"
)

type SettlementServiceImpl struct {
	settlementRepo settlement.SettlementRepository
	shiftRepo      shift.ShiftRepository
	workHoursRepo  workhours.WorkHoursRepository
	discountRepo   discount.DiscountRepository
	employeeRepo   employee.EmployeeRepository
	configSvc      payconfig.ConfigService
	runTx          func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewSettlementService(
	db *database.DB,
	settlementRepo settlement.SettlementRepository,
	shiftRepo shift.ShiftRepository,
	workHoursRepo workhours.WorkHoursRepository,
	discountRepo discount.DiscountRepository,
	employeeRepo employee.EmployeeRepository,
	configSvc payconfig.ConfigService,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		settlementRepo: settlementRepo,
		shiftRepo:      shiftRepo,
		workHoursRepo:  workHoursRepo,
		discountRepo:   discountRepo,
		employeeRepo:   employeeRepo,
		configSvc:      configSvc,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ========== PREVIEW ==========

// BuildPreview reads the unpaid closed shifts, overtime and discounts in
// range, groups them per employee and prices each line. It never writes.
func (s *SettlementServiceImpl) BuildPreview(ctx context.Context, req settlement.BuildPreviewRequest) (settlement.Preview, error) {
	if err := req.Validate(); err != nil {
		return settlement.Preview{}, err
	}

	from, to := req.Period()
	draft := req.Draft()

	shifts, err := s.shiftRepo.ListClosedUnpaid(ctx, &from, &to, req.EmployeeIDs)
	if err != nil {
		return settlement.Preview{}, err
	}
	if len(shifts) == 0 {
		return settlement.Preview{}, settlement.ErrEmptyScope
	}

	overtime, err := s.workHoursRepo.ListUnpaidOvertime(ctx, &from, &to, req.EmployeeIDs)
	if err != nil {
		return settlement.Preview{}, err
	}

	discounts, err := s.discountRepo.ListUnpaid(ctx, &from, &to, req.EmployeeIDs)
	if err != nil {
		return settlement.Preview{}, err
	}

	subsidyPercent, err := s.configSvc.Get(ctx, payconfig.KeyMealSubsidyPercent)
	if err != nil {
		return settlement.Preview{}, err
	}

	shiftIDs := make([]string, 0, len(shifts))
	for _, sh := range shifts {
		shiftIDs = append(shiftIDs, sh.ID)
	}
	hoursRecords, err := s.workHoursRepo.ListHoursByShiftIDs(ctx, shiftIDs)
	if err != nil {
		return settlement.Preview{}, err
	}
	hoursByShift := make(map[string]decimal.Decimal, len(hoursRecords))
	for _, h := range hoursRecords {
		hoursByShift[h.ShiftID] = h.HoursWorked
	}

	// Group inputs per employee
	type group struct {
		shifts    []shift.Shift
		overtime  []workhours.OvertimeRecord
		discounts []discount.Discount
	}
	groups := make(map[string]*group)
	groupFor := func(employeeID string) *group {
		g, ok := groups[employeeID]
		if !ok {
			g = &group{}
			groups[employeeID] = g
		}
		return g
	}
	for _, sh := range shifts {
		g := groupFor(sh.EmployeeID)
		g.shifts = append(g.shifts, sh)
	}
	for _, ot := range overtime {
		g := groupFor(ot.EmployeeID)
		g.overtime = append(g.overtime, ot)
	}
	for _, d := range discounts {
		g := groupFor(d.EmployeeID)
		g.discounts = append(g.discounts, d)
	}

	employeeIDs := make([]string, 0, len(groups))
	for id := range groups {
		employeeIDs = append(employeeIDs, id)
	}
	sort.Strings(employeeIDs)

	preview := settlement.Preview{
		PeriodStart:   from,
		PeriodEnd:     to,
		GrossTotal:    decimal.Zero,
		DiscountTotal: decimal.Zero,
		NetTotal:      decimal.Zero,
	}

	for _, employeeID := range employeeIDs {
		g := groups[employeeID]
		if len(g.shifts) == 0 {
			// Overtime and discounts follow their shifts; an employee with
			// no payable shift in range is settled when the shifts are.
			continue
		}

		emp, err := s.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return settlement.Preview{}, err
		}

		row := computeRow(emp, g.shifts, hoursByShift, g.overtime, g.discounts, subsidyPercent, draft.AdjustmentFor(employeeID))
		preview.Rows = append(preview.Rows, row)
		preview.GrossTotal = preview.GrossTotal.Add(row.GrossSubtotal)
		preview.DiscountTotal = preview.DiscountTotal.Add(row.TotalDiscounts)
		preview.NetTotal = preview.NetTotal.Add(row.NetTotal)
	}

	if len(preview.Rows) == 0 {
		return settlement.Preview{}, settlement.ErrEmptyScope
	}

	return preview, nil
}

func computeRow(
	emp employee.Employee,
	shifts []shift.Shift,
	hoursByShift map[string]decimal.Decimal,
	overtime []workhours.OvertimeRecord,
	discounts []discount.Discount,
	subsidyPercent decimal.Decimal,
	adjustment decimal.Decimal,
) settlement.PreviewRow {
	row := settlement.PreviewRow{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.FullName,
		DailyWage:        emp.DailyWage,
		SubsidyPercent:   subsidyPercent,
		HoursWorked:      decimal.Zero,
		OvertimeHours:    decimal.Zero,
		MealGross:        decimal.Zero,
		MealNet:          decimal.Zero,
		OtherDiscounts:   decimal.Zero,
		ManualAdjustment: adjustment,
	}

	for _, sh := range shifts {
		row.ShiftIDs = append(row.ShiftIDs, sh.ID)
		if h, ok := hoursByShift[sh.ID]; ok {
			row.HoursWorked = row.HoursWorked.Add(h)
		}
	}
	row.DaysWorked = len(shifts)

	for _, ot := range overtime {
		row.OvertimeIDs = append(row.OvertimeIDs, ot.ID)
		row.OvertimeHours = row.OvertimeHours.Add(ot.OvertimeHours)
	}
	row.OvertimeValue = workhours.OvertimeValue(row.OvertimeHours, emp.DailyWage)

	base := emp.DailyWage.Mul(decimal.NewFromInt(int64(row.DaysWorked)))
	row.GrossSubtotal = base.Add(row.OvertimeValue)

	for _, d := range discounts {
		row.DiscountIDs = append(row.DiscountIDs, d.ID)
		if d.Type == discount.TypeMealConsumption {
			row.MealGross = row.MealGross.Add(d.Value)
			row.MealNet = row.MealNet.Add(discount.NetValue(d, subsidyPercent))
		} else {
			row.OtherDiscounts = row.OtherDiscounts.Add(d.Value)
		}
	}
	row.TotalDiscounts = row.MealNet.Add(row.OtherDiscounts)
	row.NetTotal = row.GrossSubtotal.Sub(row.TotalDiscounts).Add(adjustment)

	return row
}

// ========== COMMIT ==========

func (s *SettlementServiceImpl) Commit(ctx context.Context, req settlement.CommitRequest) (settlement.SettlementResponse, error) {
	preview := req.Preview
	if len(preview.Rows) == 0 {
		return settlement.SettlementResponse{}, settlement.ErrEmptyScope
	}

	var created settlement.Settlement
	var details []settlement.SettlementDetail

	err := s.runTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.settlementRepo.Create(txCtx, settlement.Settlement{
			ID:            uuid.NewString(),
			PeriodStart:   preview.PeriodStart,
			PeriodEnd:     preview.PeriodEnd,
			Status:        settlement.StatusPending,
			GrossTotal:    preview.GrossTotal,
			DiscountTotal: preview.DiscountTotal,
			NetTotal:      preview.NetTotal,
			Observations:  req.Observations,
		})
		if err != nil {
			return err
		}

		var allShiftIDs, allOvertimeIDs, allDiscountIDs []string
		for _, row := range preview.Rows {
			detail, err := s.settlementRepo.CreateDetail(txCtx, settlement.SettlementDetail{
				ID:               uuid.NewString(),
				SettlementID:     created.ID,
				EmployeeID:       row.EmployeeID,
				DaysWorked:       row.DaysWorked,
				HoursWorked:      row.HoursWorked,
				OvertimeHours:    row.OvertimeHours,
				DailyWage:        row.DailyWage,
				OvertimeValue:    row.OvertimeValue,
				GrossSubtotal:    row.GrossSubtotal,
				MealGross:        row.MealGross,
				SubsidyPercent:   row.SubsidyPercent,
				MealNet:          row.MealNet,
				OtherDiscounts:   row.OtherDiscounts,
				TotalDiscounts:   row.TotalDiscounts,
				ManualAdjustment: row.ManualAdjustment,
				NetTotal:         row.NetTotal,
				ShiftIDs:         row.ShiftIDs,
				OvertimeIDs:      row.OvertimeIDs,
				DiscountIDs:      row.DiscountIDs,
			})
			if err != nil {
				return err
			}
			details = append(details, detail)
			allShiftIDs = append(allShiftIDs, row.ShiftIDs...)
			allOvertimeIDs = append(allOvertimeIDs, row.OvertimeIDs...)
			allDiscountIDs = append(allDiscountIDs, row.DiscountIDs...)
		}

		// The concurrency guard: each mark touches only rows still unpaid.
		// A shortfall means another settlement or payment got there first,
		// and the whole commit rolls back.
		if len(allShiftIDs) > 0 {
			affected, err := s.shiftRepo.MarkPaidBySettlement(txCtx, allShiftIDs, created.ID)
			if err != nil {
				return err
			}
			if affected != int64(len(allShiftIDs)) {
				return settlement.ErrAlreadyConsumed
			}
		}
		if len(allOvertimeIDs) > 0 {
			affected, err := s.workHoursRepo.MarkOvertimePaidBySettlement(txCtx, allOvertimeIDs, created.ID)
			if err != nil {
				return err
			}
			if affected != int64(len(allOvertimeIDs)) {
				return settlement.ErrAlreadyConsumed
			}
		}
		if len(allDiscountIDs) > 0 {
			affected, err := s.discountRepo.MarkPaidBySettlement(txCtx, allDiscountIDs, created.ID)
			if err != nil {
				return err
			}
			if affected != int64(len(allDiscountIDs)) {
				return settlement.ErrAlreadyConsumed
			}
		}

		return nil
	})
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return settlement.ToResponse(created, details), nil
}

// ========== STATUS ==========

func (s *SettlementServiceImpl) MarkPaid(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	affected, err := s.settlementRepo.UpdateStatus(ctx, id, settlement.StatusPending, settlement.StatusPaid)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	if affected == 0 {
		// Either absent or not pending; report precisely.
		if _, err := s.settlementRepo.GetByID(ctx, id); err != nil {
			return settlement.SettlementResponse{}, err
		}
		return settlement.SettlementResponse{}, settlement.ErrInvalidStatus
	}

	return s.GetSettlement(ctx, id)
}

func (s *SettlementServiceImpl) Void(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	current, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	if current.Status == settlement.StatusVoided {
		return settlement.SettlementResponse{}, settlement.ErrSettlementAlreadyVoided
	}

	details, err := s.settlementRepo.ListDetails(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.releaseLinked(txCtx, details); err != nil {
			return err
		}
		affected, err := s.settlementRepo.UpdateStatus(txCtx, id, current.Status, settlement.StatusVoided)
		if err != nil {
			return err
		}
		if affected == 0 {
			return settlement.ErrInvalidStatus
		}
		return nil
	})
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return s.GetSettlement(ctx, id)
}

func (s *SettlementServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.settlementRepo.GetByID(ctx, id); err != nil {
		return err
	}

	details, err := s.settlementRepo.ListDetails(ctx, id)
	if err != nil {
		return err
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.releaseLinked(txCtx, details); err != nil {
			return err
		}
		if err := s.settlementRepo.DeleteDetails(txCtx, id); err != nil {
			return err
		}
		return s.settlementRepo.Delete(txCtx, id)
	})
}

// releaseLinked returns every record referenced by the details to the unpaid
// pool. Release is idempotent at the repository level, so a detail whose
// records were already released is harmless.
func (s *SettlementServiceImpl) releaseLinked(ctx context.Context, details []settlement.SettlementDetail) error {
	var shiftIDs, overtimeIDs, discountIDs []string
	for _, d := range details {
		shiftIDs = append(shiftIDs, d.ShiftIDs...)
		overtimeIDs = append(overtimeIDs, d.OvertimeIDs...)
		discountIDs = append(discountIDs, d.DiscountIDs...)
	}

	if len(shiftIDs) > 0 {
		if err := s.shiftRepo.Release(ctx, shiftIDs); err != nil {
			return err
		}
	}
	if len(overtimeIDs) > 0 {
		if err := s.workHoursRepo.ReleaseOvertime(ctx, overtimeIDs); err != nil {
			return err
		}
	}
	if len(discountIDs) > 0 {
		if err := s.discountRepo.Release(ctx, discountIDs); err != nil {
			return err
		}
	}
	return nil
}

// ========== EDIT ==========

func (s *SettlementServiceImpl) EditDetail(ctx context.Context, req settlement.EditDetailRequest) (settlement.DetailResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.DetailResponse{}, err
	}

	detail, err := s.settlementRepo.GetDetailByID(ctx, req.DetailID)
	if err != nil {
		return settlement.DetailResponse{}, err
	}

	parent, err := s.settlementRepo.GetByID(ctx, detail.SettlementID)
	if err != nil {
		return settlement.DetailResponse{}, err
	}
	if parent.Status == settlement.StatusVoided {
		return settlement.DetailResponse{}, settlement.ErrInvalidStatus
	}

	newNet := detail.GrossSubtotal.Sub(detail.TotalDiscounts).Add(req.NewAdjustment)

	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.settlementRepo.UpdateDetailAdjustment(txCtx, detail.ID, req.NewAdjustment, newNet, req.NewObservations); err != nil {
			return err
		}

		// The stored aggregates are never trusted after an edit; re-sum the
		// details and overwrite them.
		details, err := s.settlementRepo.ListDetails(txCtx, detail.SettlementID)
		if err != nil {
			return err
		}
		gross, discounts, net := decimal.Zero, decimal.Zero, decimal.Zero
		for _, d := range details {
			gross = gross.Add(d.GrossSubtotal)
			discounts = discounts.Add(d.TotalDiscounts)
			net = net.Add(d.NetTotal)
		}
		return s.settlementRepo.UpdateTotals(txCtx, detail.SettlementID, gross, discounts, net)
	})
	if err != nil {
		return settlement.DetailResponse{}, err
	}

	detail.ManualAdjustment = req.NewAdjustment
	detail.NetTotal = newNet
	detail.Observations = req.NewObservations
	return settlement.ToDetailResponse(detail), nil
}

// ========== QUERIES ==========

func (s *SettlementServiceImpl) GetSettlement(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	found, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	details, err := s.settlementRepo.ListDetails(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	return settlement.ToResponse(found, details), nil
}

func (s *SettlementServiceImpl) ListSettlements(ctx context.Context, filter settlement.SettlementFilter) ([]settlement.SettlementResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var status *settlement.Status
	if filter.Status != nil && *filter.Status != "" {
		st := settlement.Status(*filter.Status)
		status = &st
	}

	var from, to *time.Time
	if filter.From != nil && *filter.From != "" {
		if d, ok := validator.IsValidDate(*filter.From); ok {
			from = &d
		}
	}
	if filter.To != nil && *filter.To != "" {
		if d, ok := validator.IsValidDate(*filter.To); ok {
			next := d.AddDate(0, 0, 1)
			to = &next
		}
	}

	settlements, err := s.settlementRepo.List(ctx, status, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]settlement.SettlementResponse, 0, len(settlements))
	for _, st := range settlements {
		responses = append(responses, settlement.ToResponse(st, nil))
	}
	return responses, nil
}
