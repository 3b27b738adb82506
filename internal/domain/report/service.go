package report

import "context"

// ReportService defines the read-only reporting surface
type ReportService interface {
	HoursSummary(ctx context.Context, req PeriodRequest) ([]HoursSummaryRow, error)
	DiscountSummary(ctx context.Context, req PeriodRequest) ([]DiscountSummaryRow, error)
	AccountBalances(ctx context.Context) ([]AccountBalanceRow, error)
}
