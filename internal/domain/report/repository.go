package report

import (
	"context"
	"time"
)

// ReportRepository defines read-only aggregation queries. Nothing here
// mutates state and nothing runs inside a transaction.
type ReportRepository interface {
	GetHoursSummary(ctx context.Context, from, to time.Time, employeeID *string) ([]HoursSummaryRow, error)
	GetDiscountSummary(ctx context.Context, from, to time.Time) ([]DiscountSummaryRow, error)
	GetAccountBalances(ctx context.Context) ([]AccountBalanceRow, error)
}
