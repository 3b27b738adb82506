package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/surtimax/payroll-backend/internal/domain/payment"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
)

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

const paymentColumns = `
	p.id, p.employee_id, p.shift_id, p.work_date, p.daily_wage,
	p.hours_worked, p.overtime_hours, p.overtime_value, p.gross_subtotal,
	p.meal_gross, p.subsidy_percent, p.meal_net, p.deferred_total,
	p.collected_on_account, p.other_discounts, p.total_discounts, p.net_total,
	p.signature_present, p.photo_present, p.observations, p.created_at,
	e.full_name AS employee_name
`

func scanPayment(row pgx.Row) (payment.DailyPayment, error) {
	var p payment.DailyPayment
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.ShiftID, &p.WorkDate, &p.DailyWage,
		&p.HoursWorked, &p.OvertimeHours, &p.OvertimeValue, &p.GrossSubtotal,
		&p.MealGross, &p.SubsidyPercent, &p.MealNet, &p.DeferredTotal,
		&p.CollectedOnAccnt, &p.OtherDiscounts, &p.TotalDiscounts, &p.NetTotal,
		&p.SignaturePresent, &p.PhotoPresent, &p.Observations, &p.CreatedAt,
		&p.EmployeeName,
	)
	return p, err
}

// Create implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Create(ctx context.Context, p payment.DailyPayment) (payment.DailyPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_payments (
			id, employee_id, shift_id, work_date, daily_wage,
			hours_worked, overtime_hours, overtime_value, gross_subtotal,
			meal_gross, subsidy_percent, meal_net, deferred_total,
			collected_on_account, other_discounts, total_discounts, net_total,
			signature_present, photo_present, observations
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.EmployeeID, p.ShiftID, p.WorkDate, p.DailyWage,
		p.HoursWorked, p.OvertimeHours, p.OvertimeValue, p.GrossSubtotal,
		p.MealGross, p.SubsidyPercent, p.MealNet, p.DeferredTotal,
		p.CollectedOnAccnt, p.OtherDiscounts, p.TotalDiscounts, p.NetTotal,
		p.SignaturePresent, p.PhotoPresent, p.Observations,
	).Scan(&p.CreatedAt)
	if err != nil {
		return payment.DailyPayment{}, fmt.Errorf("failed to create daily payment: %w", err)
	}

	return p, nil
}

// GetByID implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetByID(ctx context.Context, id string) (payment.DailyPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM daily_payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.DailyPayment{}, payment.ErrPaymentNotFound
		}
		return payment.DailyPayment{}, fmt.Errorf("failed to get daily payment: %w", err)
	}

	return p, nil
}

// ListByDate implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) ListByDate(ctx context.Context, dayStart, dayEnd time.Time) ([]payment.DailyPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentColumns + `
		FROM daily_payments p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.work_date >= $1
		  AND p.work_date < $2
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily payments: %w", err)
	}
	defer rows.Close()

	var payments []payment.DailyPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// UpdateNetTotal implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) UpdateNetTotal(ctx context.Context, id string, netTotal decimal.Decimal, observations string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_payments
		SET net_total = $1, observations = $2
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, netTotal, observations, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payment.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to update daily payment: %w", err)
	}

	return nil
}

// Delete implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM daily_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}
