package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/surtimax/payroll-backend/internal/domain/report"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetHoursSummary implements report.ReportRepository.
func (r *reportRepositoryImpl) GetHoursSummary(ctx context.Context, from, to time.Time, employeeID *string) ([]report.HoursSummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id,
			   e.full_name,
			   COUNT(h.id) AS days_worked,
			   COALESCE(SUM(h.hours_worked), 0) AS hours_worked,
			   COALESCE(SUM(o.overtime_hours), 0) AS overtime_hours
		FROM employees e
		JOIN hours_records h ON h.employee_id = e.id
			AND h.work_date >= $1 AND h.work_date < $2
		LEFT JOIN overtime_records o ON o.shift_id = h.shift_id
		WHERE ($3::text IS NULL OR e.id = $3)
		GROUP BY e.id, e.full_name
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, from, to, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hours summary: %w", err)
	}
	defer rows.Close()

	var summary []report.HoursSummaryRow
	for rows.Next() {
		var row report.HoursSummaryRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName,
			&row.DaysWorked, &row.HoursWorked, &row.OvertimeHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan hours summary row: %w", err)
		}
		summary = append(summary, row)
	}

	return summary, rows.Err()
}

// GetDiscountSummary implements report.ReportRepository.
func (r *reportRepositoryImpl) GetDiscountSummary(ctx context.Context, from, to time.Time) ([]report.DiscountSummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id,
			   e.full_name,
			   d.type,
			   COALESCE(SUM(d.value), 0) AS total_value,
			   COALESCE(SUM(d.value) FILTER (WHERE d.paid), 0) AS paid_value,
			   COALESCE(SUM(d.value) FILTER (WHERE NOT d.paid), 0) AS unpaid_value
		FROM discounts d
		JOIN employees e ON e.id = d.employee_id
		WHERE d.date >= $1 AND d.date < $2
		GROUP BY e.id, e.full_name, d.type
		ORDER BY e.full_name, d.type
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get discount summary: %w", err)
	}
	defer rows.Close()

	var summary []report.DiscountSummaryRow
	for rows.Next() {
		var row report.DiscountSummaryRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Type,
			&row.TotalValue, &row.PaidValue, &row.UnpaidValue,
		); err != nil {
			return nil, fmt.Errorf("failed to scan discount summary row: %w", err)
		}
		summary = append(summary, row)
	}

	return summary, rows.Err()
}

// GetAccountBalances implements report.ReportRepository.
func (r *reportRepositoryImpl) GetAccountBalances(ctx context.Context) ([]report.AccountBalanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id,
			   e.full_name,
			   COALESCE(SUM(c.value), 0) AS outstanding,
			   COUNT(c.id) AS items
		FROM account_consumptions c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.paid = false
		GROUP BY e.id, e.full_name
		HAVING SUM(c.value) > 0
		ORDER BY outstanding DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get account balances: %w", err)
	}
	defer rows.Close()

	var balances []report.AccountBalanceRow
	for rows.Next() {
		var row report.AccountBalanceRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.Outstanding, &row.Items,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		balances = append(balances, row)
	}

	return balances, rows.Err()
}
