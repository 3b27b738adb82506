package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/surtimax/payroll-backend/internal/domain/shift"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.start_at, s.end_at, s.paid,
	s.settlement_id, s.payment_id, s.created_at, s.updated_at,
	e.full_name AS employee_name
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var sh shift.Shift
	err := row.Scan(
		&sh.ID, &sh.EmployeeID, &sh.StartAt, &sh.EndAt, &sh.Paid,
		&sh.SettlementID, &sh.PaymentID, &sh.CreatedAt, &sh.UpdatedAt,
		&sh.EmployeeName,
	)
	return sh, err
}

// Create implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO shifts (id, employee_id, start_at, end_at)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.ID, newShift.EmployeeID, newShift.StartAt, newShift.EndAt,
	).Scan(&newShift.CreatedAt, &newShift.UpdatedAt)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// GetByID implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	sh, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return sh, nil
}

// GetOpenByEmployee implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID string) (*shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		  AND s.end_at IS NULL
		ORDER BY s.start_at DESC
		LIMIT 1
	`

	sh, err := scanShift(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open shift: %w", err)
	}

	return &sh, nil
}

// SetEnd implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) SetEnd(ctx context.Context, id string, end time.Time) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET end_at = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, end, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to close shift: %w", err)
	}

	return nil
}

// UpdateTimes implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) UpdateTimes(ctx context.Context, id string, start time.Time, end *time.Time) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET start_at = $1, end_at = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, start, end, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift times: %w", err)
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// ListOpen implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) ListOpen(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.end_at IS NULL
		ORDER BY s.start_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListClosedUnpaid implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) ListClosedUnpaid(ctx context.Context, from, to *time.Time, employeeIDs []string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.end_at IS NOT NULL
		  AND s.paid = false
		  AND ($1::timestamptz IS NULL OR s.start_at >= $1)
		  AND ($2::timestamptz IS NULL OR s.start_at < $2)
		  AND ($3::text[] IS NULL OR s.employee_id = ANY($3))
		ORDER BY s.employee_id, s.start_at
	`

	var ids []string
	if len(employeeIDs) > 0 {
		ids = employeeIDs
	}

	rows, err := q.Query(ctx, query, from, to, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed unpaid shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// GetClosedUnpaidByEmployeeOnDay implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) GetClosedUnpaidByEmployeeOnDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (shift.Shift, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		LEFT JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1
		  AND s.end_at IS NOT NULL
		  AND s.paid = false
		  AND s.start_at >= $2
		  AND s.start_at < $3
		ORDER BY s.start_at DESC
		LIMIT 1
	`

	sh, err := scanShift(q.QueryRow(ctx, query, employeeID, dayStart, dayEnd))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get payable shift: %w", err)
	}

	return sh, nil
}

// MarkPaidBySettlement implements shift.ShiftRepository. The paid = false
// guard makes concurrent consumption visible through the affected-row count.
func (s *shiftRepositoryImpl) MarkPaidBySettlement(ctx context.Context, ids []string, settlementID string) (int64, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET paid = true, settlement_id = $1, updated_at = NOW()
		WHERE id = ANY($2)
		  AND paid = false
	`

	tag, err := q.Exec(ctx, query, settlementID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark shifts paid by settlement: %w", err)
	}

	return tag.RowsAffected(), nil
}

// MarkPaidByPayment implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) MarkPaidByPayment(ctx context.Context, id string, paymentID string) (int64, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET paid = true, payment_id = $1, updated_at = NOW()
		WHERE id = $2
		  AND paid = false
	`

	tag, err := q.Exec(ctx, query, paymentID, id)
	if err != nil {
		return 0, fmt.Errorf("failed to mark shift paid by payment: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Release implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) Release(ctx context.Context, ids []string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shifts
		SET paid = false, settlement_id = NULL, payment_id = NULL, updated_at = NOW()
		WHERE id = ANY($1)
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to release shifts: %w", err)
	}

	return nil
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}
