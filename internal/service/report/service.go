package report

import (
	"context"

	"github.com/surtimax/payroll-backend/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo report.ReportRepository
}

func NewReportService(reportRepo report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepo: reportRepo}
}

func (s *ReportServiceImpl) HoursSummary(ctx context.Context, req report.PeriodRequest) ([]report.HoursSummaryRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := req.Period()
	return s.reportRepo.GetHoursSummary(ctx, from, to, req.EmployeeID)
}

func (s *ReportServiceImpl) DiscountSummary(ctx context.Context, req report.PeriodRequest) ([]report.DiscountSummaryRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := req.Period()
	return s.reportRepo.GetDiscountSummary(ctx, from, to)
}

func (s *ReportServiceImpl) AccountBalances(ctx context.Context) ([]report.AccountBalanceRow, error) {
	return s.reportRepo.GetAccountBalances(ctx)
}
