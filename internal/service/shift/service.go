package shift

import (
	"context"

	"github.com/google/uuid"
	"github.com/surtimax/payroll-backend/internal/domain/employee"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/pkg/clock"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
	"github.com/surtimax/payroll-backend/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	workHoursSvc workhours.WorkHoursService
	clock        clock.Clock
	runTx        func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewShiftService(
	db *database.DB,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	workHoursSvc workhours.WorkHoursService,
	clk clock.Clock,
) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		workHoursSvc: workHoursSvc,
		clock:        clk,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ========== LIFECYCLE ==========

func (s *ShiftServiceImpl) Open(ctx context.Context, req shift.OpenShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !emp.Active {
		return shift.ShiftResponse{}, employee.ErrEmployeeInactive
	}

	open, err := s.shiftRepo.GetOpenByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if open != nil {
		return shift.ShiftResponse{}, shift.ErrShiftAlreadyOpen
	}

	start := s.clock.Now()
	if req.At != nil && *req.At != "" {
		if t, ok := validator.IsValidDateTime(*req.At); ok {
			start = t.UTC()
		}
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		StartAt:    start,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(created), nil
}

func (s *ShiftServiceImpl) Close(ctx context.Context, req shift.CloseShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	current, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !current.IsOpen() {
		return shift.ShiftResponse{}, shift.ErrShiftAlreadyClosed
	}

	end := s.clock.Now()
	if req.At != nil && *req.At != "" {
		if t, ok := validator.IsValidDateTime(*req.At); ok {
			end = t.UTC()
		}
	}
	if !end.After(current.StartAt) {
		return shift.ShiftResponse{}, shift.ErrEndBeforeStart
	}

	// Close and derive together so an hours record always exists for a
	// closed shift.
	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.shiftRepo.SetEnd(txCtx, current.ID, end); err != nil {
			return err
		}
		closed := current
		closed.EndAt = &end
		return s.workHoursSvc.DeriveForShift(txCtx, closed)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	current.EndAt = &end
	return shift.ToResponse(current), nil
}

func (s *ShiftServiceImpl) CreateManual(ctx context.Context, req shift.CreateManualShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !emp.Active {
		return shift.ShiftResponse{}, employee.ErrEmployeeInactive
	}

	start, _ := validator.IsValidDateTime(req.StartAt)
	end, _ := validator.IsValidDateTime(req.EndAt)
	start = start.UTC()
	endUTC := end.UTC()

	var created shift.Shift
	err = s.runTx(ctx, func(txCtx context.Context) error {
		created, err = s.shiftRepo.Create(txCtx, shift.Shift{
			ID:         uuid.NewString(),
			EmployeeID: req.EmployeeID,
			StartAt:    start,
			EndAt:      &endUTC,
		})
		if err != nil {
			return err
		}
		return s.workHoursSvc.DeriveForShift(txCtx, created)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(created), nil
}

func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	current, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if current.Paid {
		return shift.ShiftResponse{}, shift.ErrShiftAlreadyPaid
	}

	start := current.StartAt
	if req.StartAt != nil {
		if t, ok := validator.IsValidDateTime(*req.StartAt); ok {
			start = t.UTC()
		}
	}
	end := current.EndAt
	if req.EndAt != nil {
		if t, ok := validator.IsValidDateTime(*req.EndAt); ok {
			u := t.UTC()
			end = &u
		}
	}
	if end != nil && !end.After(start) {
		return shift.ShiftResponse{}, shift.ErrEndBeforeStart
	}

	err = s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.shiftRepo.UpdateTimes(txCtx, current.ID, start, end); err != nil {
			return err
		}
		if end == nil {
			return nil
		}
		updated := current
		updated.StartAt = start
		updated.EndAt = end
		return s.workHoursSvc.DeriveForShift(txCtx, updated)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	current.StartAt = start
	current.EndAt = end
	return shift.ToResponse(current), nil
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Paid {
		return shift.ErrShiftAlreadyPaid
	}

	return s.runTx(ctx, func(txCtx context.Context) error {
		if err := s.workHoursSvc.RemoveForShift(txCtx, current.ID); err != nil {
			return err
		}
		return s.shiftRepo.Delete(txCtx, current.ID)
	})
}

// ========== QUERIES ==========

func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(found), nil
}

func (s *ShiftServiceImpl) ListOpen(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(shifts), nil
}

func (s *ShiftServiceImpl) ListClosedUnpaid(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from, to := filter.Range()
	shifts, err := s.shiftRepo.ListClosedUnpaid(ctx, from, to, filter.EmployeeIDs)
	if err != nil {
		return nil, err
	}
	return toResponses(shifts), nil
}

func toResponses(shifts []shift.Shift) []shift.ShiftResponse {
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses
}
