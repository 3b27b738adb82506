package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
)

type workHoursRepositoryImpl struct {
	db *database.DB
}

func NewWorkHoursRepository(db *database.DB) workhours.WorkHoursRepository {
	return &workHoursRepositoryImpl{db: db}
}

// UpsertHours implements workhours.WorkHoursRepository. Keyed by shift_id so
// re-deriving a corrected shift rewrites its row.
func (w *workHoursRepositoryImpl) UpsertHours(ctx context.Context, rec workhours.HoursRecord) (workhours.HoursRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO hours_records (id, shift_id, employee_id, work_date, hours_worked)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (shift_id) DO UPDATE
		SET work_date = EXCLUDED.work_date, hours_worked = EXCLUDED.hours_worked
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.ShiftID, rec.EmployeeID, rec.WorkDate, rec.HoursWorked,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return workhours.HoursRecord{}, fmt.Errorf("failed to upsert hours record: %w", err)
	}

	return rec, nil
}

// GetHoursByShift implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) GetHoursByShift(ctx context.Context, shiftID string) (workhours.HoursRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, shift_id, employee_id, work_date, hours_worked, created_at
		FROM hours_records
		WHERE shift_id = $1
	`

	var rec workhours.HoursRecord
	err := q.QueryRow(ctx, query, shiftID).Scan(
		&rec.ID, &rec.ShiftID, &rec.EmployeeID, &rec.WorkDate, &rec.HoursWorked, &rec.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return workhours.HoursRecord{}, workhours.ErrHoursRecordNotFound
		}
		return workhours.HoursRecord{}, fmt.Errorf("failed to get hours record: %w", err)
	}

	return rec, nil
}

// ListHoursByShiftIDs implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) ListHoursByShiftIDs(ctx context.Context, shiftIDs []string) ([]workhours.HoursRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, shift_id, employee_id, work_date, hours_worked, created_at
		FROM hours_records
		WHERE shift_id = ANY($1)
	`

	rows, err := q.Query(ctx, query, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list hours records: %w", err)
	}
	defer rows.Close()

	var records []workhours.HoursRecord
	for rows.Next() {
		var rec workhours.HoursRecord
		if err := rows.Scan(
			&rec.ID, &rec.ShiftID, &rec.EmployeeID, &rec.WorkDate, &rec.HoursWorked, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hours record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// DeleteHoursByShift implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) DeleteHoursByShift(ctx context.Context, shiftID string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM hours_records WHERE shift_id = $1`, shiftID)
	if err != nil {
		return fmt.Errorf("failed to delete hours record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workhours.ErrHoursRecordNotFound
	}

	return nil
}

// UpsertOvertime implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) UpsertOvertime(ctx context.Context, rec workhours.OvertimeRecord) (workhours.OvertimeRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO overtime_records (id, shift_id, employee_id, work_date, overtime_hours)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (shift_id) DO UPDATE
		SET work_date = EXCLUDED.work_date, overtime_hours = EXCLUDED.overtime_hours
		RETURNING id, paid, created_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.ShiftID, rec.EmployeeID, rec.WorkDate, rec.OvertimeHours,
	).Scan(&rec.ID, &rec.Paid, &rec.CreatedAt)
	if err != nil {
		return workhours.OvertimeRecord{}, fmt.Errorf("failed to upsert overtime record: %w", err)
	}

	return rec, nil
}

// GetOvertimeByShift implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) GetOvertimeByShift(ctx context.Context, shiftID string) (workhours.OvertimeRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, shift_id, employee_id, work_date, overtime_hours,
			   paid, settlement_id, payment_id, created_at
		FROM overtime_records
		WHERE shift_id = $1
	`

	var rec workhours.OvertimeRecord
	err := q.QueryRow(ctx, query, shiftID).Scan(
		&rec.ID, &rec.ShiftID, &rec.EmployeeID, &rec.WorkDate, &rec.OvertimeHours,
		&rec.Paid, &rec.SettlementID, &rec.PaymentID, &rec.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return workhours.OvertimeRecord{}, workhours.ErrOvertimeRecordNotFound
		}
		return workhours.OvertimeRecord{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return rec, nil
}

// DeleteOvertimeByShift implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) DeleteOvertimeByShift(ctx context.Context, shiftID string) error {
	q := GetQuerier(ctx, w.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_records WHERE shift_id = $1`, shiftID)
	if err != nil {
		return fmt.Errorf("failed to delete overtime record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workhours.ErrOvertimeRecordNotFound
	}

	return nil
}

// ListUnpaidOvertime implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) ListUnpaidOvertime(ctx context.Context, from, to *time.Time, employeeIDs []string) ([]workhours.OvertimeRecord, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT id, shift_id, employee_id, work_date, overtime_hours,
			   paid, settlement_id, payment_id, created_at
		FROM overtime_records
		WHERE paid = false
		  AND ($1::timestamptz IS NULL OR work_date >= $1)
		  AND ($2::timestamptz IS NULL OR work_date < $2)
		  AND ($3::text[] IS NULL OR employee_id = ANY($3))
		ORDER BY employee_id, work_date
	`

	var ids []string
	if len(employeeIDs) > 0 {
		ids = employeeIDs
	}

	rows, err := q.Query(ctx, query, from, to, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid overtime: %w", err)
	}
	defer rows.Close()

	var records []workhours.OvertimeRecord
	for rows.Next() {
		var rec workhours.OvertimeRecord
		if err := rows.Scan(
			&rec.ID, &rec.ShiftID, &rec.EmployeeID, &rec.WorkDate, &rec.OvertimeHours,
			&rec.Paid, &rec.SettlementID, &rec.PaymentID, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// MarkOvertimePaidBySettlement implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) MarkOvertimePaidBySettlement(ctx context.Context, ids []string, settlementID string) (int64, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE overtime_records
		SET paid = true, settlement_id = $1
		WHERE id = ANY($2)
		  AND paid = false
	`

	tag, err := q.Exec(ctx, query, settlementID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overtime paid by settlement: %w", err)
	}

	return tag.RowsAffected(), nil
}

// MarkOvertimePaidByPayment implements workhours.WorkHoursRepository. A shift
// without an overtime row is a no-op.
func (w *workHoursRepositoryImpl) MarkOvertimePaidByPayment(ctx context.Context, shiftID string, paymentID string) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE overtime_records
		SET paid = true, payment_id = $1
		WHERE shift_id = $2
		  AND paid = false
	`

	if _, err := q.Exec(ctx, query, paymentID, shiftID); err != nil {
		return fmt.Errorf("failed to mark overtime paid by payment: %w", err)
	}

	return nil
}

// ReleaseOvertime implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) ReleaseOvertime(ctx context.Context, ids []string) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE overtime_records
		SET paid = false, settlement_id = NULL, payment_id = NULL
		WHERE id = ANY($1)
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to release overtime records: %w", err)
	}

	return nil
}

// ReleaseOvertimeByPayment implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) ReleaseOvertimeByPayment(ctx context.Context, paymentID string) error {
	q := GetQuerier(ctx, w.db)

	query := `
		UPDATE overtime_records
		SET paid = false, payment_id = NULL
		WHERE payment_id = $1
	`

	if _, err := q.Exec(ctx, query, paymentID); err != nil {
		return fmt.Errorf("failed to release overtime by payment: %w", err)
	}

	return nil
}

// ListUnderivedShiftIDs implements workhours.WorkHoursRepository.
func (w *workHoursRepositoryImpl) ListUnderivedShiftIDs(ctx context.Context, from, to time.Time) ([]string, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT s.id
		FROM shifts s
		LEFT JOIN hours_records h ON h.shift_id = s.id
		WHERE s.end_at IS NOT NULL
		  AND h.id IS NULL
		  AND s.start_at >= $1
		  AND s.start_at < $2
		ORDER BY s.start_at
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list underived shifts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan shift id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
