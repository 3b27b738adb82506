package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/domain/settlement"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
)

type settlementRepositoryImpl struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepositoryImpl{db: db}
}

// Create implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) Create(ctx context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settlements (
			id, period_start, period_end, status,
			gross_total, discount_total, net_total, observations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID, s.PeriodStart, s.PeriodEnd, s.Status,
		s.GrossTotal, s.DiscountTotal, s.NetTotal, s.Observations,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return settlement.Settlement{}, fmt.Errorf("failed to create settlement: %w", err)
	}

	return s, nil
}

// GetByID implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) GetByID(ctx context.Context, id string) (settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, status,
			   gross_total, discount_total, net_total, observations,
			   created_at, updated_at
		FROM settlements
		WHERE id = $1
	`

	var s settlement.Settlement
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.PeriodStart, &s.PeriodEnd, &s.Status,
		&s.GrossTotal, &s.DiscountTotal, &s.NetTotal, &s.Observations,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.Settlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.Settlement{}, fmt.Errorf("failed to get settlement by id: %w", err)
	}

	return s, nil
}

// List implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) List(ctx context.Context, status *settlement.Status, from, to *time.Time) ([]settlement.Settlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_start, period_end, status,
			   gross_total, discount_total, net_total, observations,
			   created_at, updated_at
		FROM settlements
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::timestamptz IS NULL OR period_start >= $2)
		  AND ($3::timestamptz IS NULL OR period_end <= $3)
		ORDER BY period_start DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, status, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.Settlement
	for rows.Next() {
		var s settlement.Settlement
		if err := rows.Scan(
			&s.ID, &s.PeriodStart, &s.PeriodEnd, &s.Status,
			&s.GrossTotal, &s.DiscountTotal, &s.NetTotal, &s.Observations,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}

	return settlements, rows.Err()
}

// Delete implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM settlements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settlement.ErrSettlementNotFound
	}

	return nil
}

// UpdateStatus implements settlement.SettlementRepository. The expected-status
// guard turns a lost race into a zero affected-row count.
func (r *settlementRepositoryImpl) UpdateStatus(ctx context.Context, id string, expected, next settlement.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE settlements
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		  AND status = $3
	`

	tag, err := q.Exec(ctx, query, next, id, expected)
	if err != nil {
		return 0, fmt.Errorf("failed to update settlement status: %w", err)
	}

	return tag.RowsAffected(), nil
}

// UpdateTotals implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) UpdateTotals(ctx context.Context, id string, gross, discounts, net decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE settlements
		SET gross_total = $1, discount_total = $2, net_total = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, gross, discounts, net, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return settlement.ErrSettlementNotFound
		}
		return fmt.Errorf("failed to update settlement totals: %w", err)
	}

	return nil
}

const settlementDetailColumns = `
	d.id, d.settlement_id, d.employee_id, d.days_worked, d.hours_worked,
	d.overtime_hours, d.daily_wage, d.overtime_value, d.gross_subtotal,
	d.meal_gross, d.subsidy_percent, d.meal_net, d.other_discounts,
	d.total_discounts, d.manual_adjustment, d.net_total, d.observations,
	d.shift_ids, d.overtime_ids, d.discount_ids,
	e.full_name AS employee_name
`

func scanSettlementDetail(row pgx.Row) (settlement.SettlementDetail, error) {
	var d settlement.SettlementDetail
	err := row.Scan(
		&d.ID, &d.SettlementID, &d.EmployeeID, &d.DaysWorked, &d.HoursWorked,
		&d.OvertimeHours, &d.DailyWage, &d.OvertimeValue, &d.GrossSubtotal,
		&d.MealGross, &d.SubsidyPercent, &d.MealNet, &d.OtherDiscounts,
		&d.TotalDiscounts, &d.ManualAdjustment, &d.NetTotal, &d.Observations,
		&d.ShiftIDs, &d.OvertimeIDs, &d.DiscountIDs,
		&d.EmployeeName,
	)
	return d, err
}

// CreateDetail implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) CreateDetail(ctx context.Context, d settlement.SettlementDetail) (settlement.SettlementDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settlement_details (
			id, settlement_id, employee_id, days_worked, hours_worked,
			overtime_hours, daily_wage, overtime_value, gross_subtotal,
			meal_gross, subsidy_percent, meal_net, other_discounts,
			total_discounts, manual_adjustment, net_total, observations,
			shift_ids, overtime_ids, discount_ids
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		) RETURNING id
	`

	err := q.QueryRow(ctx, query,
		d.ID, d.SettlementID, d.EmployeeID, d.DaysWorked, d.HoursWorked,
		d.OvertimeHours, d.DailyWage, d.OvertimeValue, d.GrossSubtotal,
		d.MealGross, d.SubsidyPercent, d.MealNet, d.OtherDiscounts,
		d.TotalDiscounts, d.ManualAdjustment, d.NetTotal, d.Observations,
		d.ShiftIDs, d.OvertimeIDs, d.DiscountIDs,
	).Scan(&d.ID)
	if err != nil {
		return settlement.SettlementDetail{}, fmt.Errorf("failed to create settlement detail: %w", err)
	}

	return d, nil
}

// GetDetailByID implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) GetDetailByID(ctx context.Context, id string) (settlement.SettlementDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + settlementDetailColumns + `
		FROM settlement_details d
		LEFT JOIN employees e ON e.id = d.employee_id
		WHERE d.id = $1
	`

	d, err := scanSettlementDetail(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.SettlementDetail{}, settlement.ErrDetailNotFound
		}
		return settlement.SettlementDetail{}, fmt.Errorf("failed to get settlement detail: %w", err)
	}

	return d, nil
}

// ListDetails implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) ListDetails(ctx context.Context, settlementID string) ([]settlement.SettlementDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + settlementDetailColumns + `
		FROM settlement_details d
		LEFT JOIN employees e ON e.id = d.employee_id
		WHERE d.settlement_id = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, settlementID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement details: %w", err)
	}
	defer rows.Close()

	var details []settlement.SettlementDetail
	for rows.Next() {
		d, err := scanSettlementDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

// UpdateDetailAdjustment implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) UpdateDetailAdjustment(ctx context.Context, id string, adjustment, netTotal decimal.Decimal, observations string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE settlement_details
		SET manual_adjustment = $1, net_total = $2, observations = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, adjustment, netTotal, observations, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return settlement.ErrDetailNotFound
		}
		return fmt.Errorf("failed to update settlement detail: %w", err)
	}

	return nil
}

// DeleteDetails implements settlement.SettlementRepository.
func (r *settlementRepositoryImpl) DeleteDetails(ctx context.Context, settlementID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM settlement_details WHERE settlement_id = $1`, settlementID); err != nil {
		return fmt.Errorf("failed to delete settlement details: %w", err)
	}

	return nil
}
