package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/surtimax/payroll-backend/internal/domain/discount"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
)

type discountRepositoryImpl struct {
	db *database.DB
}

func NewDiscountRepository(db *database.DB) discount.DiscountRepository {
	return &discountRepositoryImpl{db: db}
}

const discountColumns = `
	d.id, d.employee_id, d.type, d.detail, d.value, d.date,
	d.paid, d.settlement_id, d.payment_id, d.created_at,
	e.full_name AS employee_name
`

func scanDiscount(row pgx.Row) (discount.Discount, error) {
	var d discount.Discount
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.Type, &d.Detail, &d.Value, &d.Date,
		&d.Paid, &d.SettlementID, &d.PaymentID, &d.CreatedAt,
		&d.EmployeeName,
	)
	return d, err
}

// Create implements discount.DiscountRepository.
func (r *discountRepositoryImpl) Create(ctx context.Context, d discount.Discount) (discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO discounts (id, employee_id, type, detail, value, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		d.ID, d.EmployeeID, d.Type, d.Detail, d.Value, d.Date,
	).Scan(&d.CreatedAt)
	if err != nil {
		return discount.Discount{}, fmt.Errorf("failed to create discount: %w", err)
	}

	return d, nil
}

// GetByID implements discount.DiscountRepository.
func (r *discountRepositoryImpl) GetByID(ctx context.Context, id string) (discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + discountColumns + `
		FROM discounts d
		LEFT JOIN employees e ON e.id = d.employee_id
		WHERE d.id = $1
	`

	d, err := scanDiscount(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return discount.Discount{}, discount.ErrDiscountNotFound
		}
		return discount.Discount{}, fmt.Errorf("failed to get discount by id: %w", err)
	}

	return d, nil
}

// Delete implements discount.DiscountRepository.
func (r *discountRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return discount.ErrDiscountNotFound
	}

	return nil
}

// ListUnpaid implements discount.DiscountRepository.
func (r *discountRepositoryImpl) ListUnpaid(ctx context.Context, from, to *time.Time, employeeIDs []string) ([]discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + discountColumns + `
		FROM discounts d
		LEFT JOIN employees e ON e.id = d.employee_id
		WHERE d.paid = false
		  AND ($1::timestamptz IS NULL OR d.date >= $1)
		  AND ($2::timestamptz IS NULL OR d.date < $2)
		  AND ($3::text[] IS NULL OR d.employee_id = ANY($3))
		ORDER BY d.employee_id, d.date
	`

	var ids []string
	if len(employeeIDs) > 0 {
		ids = employeeIDs
	}

	rows, err := q.Query(ctx, query, from, to, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid discounts: %w", err)
	}
	defer rows.Close()

	return collectDiscounts(rows)
}

// ListUnpaidByEmployeeOnDay implements discount.DiscountRepository.
func (r *discountRepositoryImpl) ListUnpaidByEmployeeOnDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]discount.Discount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + discountColumns + `
		FROM discounts d
		LEFT JOIN employees e ON e.id = d.employee_id
		WHERE d.employee_id = $1
		  AND d.paid = false
		  AND d.date >= $2
		  AND d.date < $3
		ORDER BY d.date
	`

	rows, err := q.Query(ctx, query, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list discounts for day: %w", err)
	}
	defer rows.Close()

	return collectDiscounts(rows)
}

// MarkPaidBySettlement implements discount.DiscountRepository.
func (r *discountRepositoryImpl) MarkPaidBySettlement(ctx context.Context, ids []string, settlementID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE discounts
		SET paid = true, settlement_id = $1
		WHERE id = ANY($2)
		  AND paid = false
	`

	tag, err := q.Exec(ctx, query, settlementID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark discounts paid by settlement: %w", err)
	}

	return tag.RowsAffected(), nil
}

// MarkPaidByPayment implements discount.DiscountRepository.
func (r *discountRepositoryImpl) MarkPaidByPayment(ctx context.Context, ids []string, paymentID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE discounts
		SET paid = true, payment_id = $1
		WHERE id = ANY($2)
		  AND paid = false
	`

	tag, err := q.Exec(ctx, query, paymentID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to mark discounts paid by payment: %w", err)
	}

	return tag.RowsAffected(), nil
}

// MarkDeferred implements discount.DiscountRepository. Deliberately leaves
// settlement_id and payment_id NULL: a deferred discount is processed, not
// deducted.
func (r *discountRepositoryImpl) MarkDeferred(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE discounts
		SET paid = true
		WHERE id = $1
		  AND paid = false
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to defer discount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return discount.ErrDiscountAlreadyPaid
	}

	return nil
}

// Release implements discount.DiscountRepository.
func (r *discountRepositoryImpl) Release(ctx context.Context, ids []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE discounts
		SET paid = false, settlement_id = NULL, payment_id = NULL
		WHERE id = ANY($1)
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to release discounts: %w", err)
	}

	return nil
}

// ReleaseByPayment implements discount.DiscountRepository.
func (r *discountRepositoryImpl) ReleaseByPayment(ctx context.Context, paymentID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE discounts
		SET paid = false, payment_id = NULL
		WHERE payment_id = $1
	`

	if _, err := q.Exec(ctx, query, paymentID); err != nil {
		return fmt.Errorf("failed to release discounts by payment: %w", err)
	}

	return nil
}

// CreateConsumption implements discount.DiscountRepository.
func (r *discountRepositoryImpl) CreateConsumption(ctx context.Context, c discount.AccountConsumption) (discount.AccountConsumption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO account_consumptions (id, employee_id, discount_id, value, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		c.ID, c.EmployeeID, c.DiscountID, c.Value, c.Description,
	).Scan(&c.CreatedAt)
	if err != nil {
		return discount.AccountConsumption{}, fmt.Errorf("failed to create account consumption: %w", err)
	}

	return c, nil
}

// GetConsumptionByID implements discount.DiscountRepository.
func (r *discountRepositoryImpl) GetConsumptionByID(ctx context.Context, id string) (discount.AccountConsumption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, discount_id, value, description, paid, payment_id, created_at
		FROM account_consumptions
		WHERE id = $1
	`

	var c discount.AccountConsumption
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.EmployeeID, &c.DiscountID, &c.Value, &c.Description,
		&c.Paid, &c.PaymentID, &c.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return discount.AccountConsumption{}, discount.ErrConsumptionNotFound
		}
		return discount.AccountConsumption{}, fmt.Errorf("failed to get account consumption: %w", err)
	}

	return c, nil
}

// ListUnpaidConsumptions implements discount.DiscountRepository.
func (r *discountRepositoryImpl) ListUnpaidConsumptions(ctx context.Context, employeeID string) ([]discount.AccountConsumption, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, discount_id, value, description, paid, payment_id, created_at
		FROM account_consumptions
		WHERE employee_id = $1
		  AND paid = false
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list account consumptions: %w", err)
	}
	defer rows.Close()

	var consumptions []discount.AccountConsumption
	for rows.Next() {
		var c discount.AccountConsumption
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.DiscountID, &c.Value, &c.Description,
			&c.Paid, &c.PaymentID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account consumption: %w", err)
		}
		consumptions = append(consumptions, c)
	}

	return consumptions, rows.Err()
}

// CollectConsumptions implements discount.DiscountRepository.
func (r *discountRepositoryImpl) CollectConsumptions(ctx context.Context, ids []string, paymentID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE account_consumptions
		SET paid = true, payment_id = $1
		WHERE id = ANY($2)
		  AND paid = false
	`

	tag, err := q.Exec(ctx, query, paymentID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to collect account consumptions: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ReleaseConsumptionsByPayment implements discount.DiscountRepository. Only
// rows collected by the payment are touched; consumptions the payment created
// through deferrals keep their balance.
func (r *discountRepositoryImpl) ReleaseConsumptionsByPayment(ctx context.Context, paymentID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE account_consumptions
		SET paid = false, payment_id = NULL
		WHERE payment_id = $1
	`

	if _, err := q.Exec(ctx, query, paymentID); err != nil {
		return fmt.Errorf("failed to release account consumptions: %w", err)
	}

	return nil
}

func collectDiscounts(rows pgx.Rows) ([]discount.Discount, error) {
	var discounts []discount.Discount
	for rows.Next() {
		d, err := scanDiscount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan discount: %w", err)
		}
		discounts = append(discounts, d)
	}
	return discounts, rows.Err()
}
