package workhours

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
	"github.com/surtimax/payroll-backend/internal/pkg/validator"
	"github.com/surtimax/payroll-backend/internal/repository/postgresql"
)

type WorkHoursServiceImpl struct {
	workHoursRepo workhours.WorkHoursRepository
	shiftRepo     shift.ShiftRepository
	runTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewWorkHoursService(
	db *database.DB,
	workHoursRepo workhours.WorkHoursRepository,
	shiftRepo shift.ShiftRepository,
) workhours.WorkHoursService {
	return &WorkHoursServiceImpl{
		workHoursRepo: workHoursRepo,
		shiftRepo:     shiftRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// DeriveForShift upserts the hours record keyed by shift id, so deriving the
// same shift twice updates in place. The overtime row follows the hours: it
// is upserted when the shift exceeds the standard day and removed when a
// corrected shift no longer does. Paid overtime is never touched here; a
// paid shift cannot be edited in the first place.
func (s *WorkHoursServiceImpl) DeriveForShift(ctx context.Context, sh shift.Shift) error {
	if sh.IsOpen() {
		return workhours.ErrShiftNotClosed
	}

	hours := workhours.HoursBetween(sh.StartAt, *sh.EndAt)
	workDate := sh.StartAt.Truncate(24 * time.Hour)

	_, err := s.workHoursRepo.UpsertHours(ctx, workhours.HoursRecord{
		ID:          uuid.NewString(),
		ShiftID:     sh.ID,
		EmployeeID:  sh.EmployeeID,
		WorkDate:    workDate,
		HoursWorked: hours,
	})
	if err != nil {
		return err
	}

	overtime := workhours.OvertimeHours(hours)
	if overtime.IsZero() {
		if err := s.workHoursRepo.DeleteOvertimeByShift(ctx, sh.ID); err != nil &&
			!errors.Is(err, workhours.ErrOvertimeRecordNotFound) {
			return err
		}
		return nil
	}

	_, err = s.workHoursRepo.UpsertOvertime(ctx, workhours.OvertimeRecord{
		ID:            uuid.NewString(),
		ShiftID:       sh.ID,
		EmployeeID:    sh.EmployeeID,
		WorkDate:      workDate,
		OvertimeHours: overtime,
	})
	return err
}

func (s *WorkHoursServiceImpl) RemoveForShift(ctx context.Context, shiftID string) error {
	if err := s.workHoursRepo.DeleteOvertimeByShift(ctx, shiftID); err != nil &&
		!errors.Is(err, workhours.ErrOvertimeRecordNotFound) {
		return err
	}
	if err := s.workHoursRepo.DeleteHoursByShift(ctx, shiftID); err != nil &&
		!errors.Is(err, workhours.ErrHoursRecordNotFound) {
		return err
	}
	return nil
}

func (s *WorkHoursServiceImpl) SyncRange(ctx context.Context, req workhours.SyncRangeRequest) (workhours.SyncRangeResponse, error) {
	if err := req.Validate(); err != nil {
		return workhours.SyncRangeResponse{}, err
	}

	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)
	to = to.AddDate(0, 0, 1)

	shiftIDs, err := s.workHoursRepo.ListUnderivedShiftIDs(ctx, from, to)
	if err != nil {
		return workhours.SyncRangeResponse{}, err
	}

	derived := 0
	err = s.runTx(ctx, func(txCtx context.Context) error {
		for _, id := range shiftIDs {
			sh, err := s.shiftRepo.GetByID(txCtx, id)
			if err != nil {
				return err
			}
			if sh.IsOpen() {
				continue
			}
			if err := s.DeriveForShift(txCtx, sh); err != nil {
				return err
			}
			derived++
		}
		return nil
	})
	if err != nil {
		return workhours.SyncRangeResponse{}, err
	}

	return workhours.SyncRangeResponse{ShiftsDerived: derived}, nil
}
