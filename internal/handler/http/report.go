package http

import (
	"net/http"

	"github.com/surtimax/payroll-backend/internal/domain/report"
	"github.com/surtimax/payroll-backend/internal/handler/http/response"
)

type ReportHandler interface {
	GetHoursSummary(w http.ResponseWriter, r *http.Request)
	GetDiscountSummary(w http.ResponseWriter, r *http.Request)
	GetAccountBalances(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func periodFromQuery(r *http.Request) report.PeriodRequest {
	req := report.PeriodRequest{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		req.EmployeeID = &employeeID
	}
	return req
}

// GetHoursSummary handles GET /reports/hours
func (h *reportHandlerImpl) GetHoursSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.HoursSummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDiscountSummary handles GET /reports/discounts
func (h *reportHandlerImpl) GetDiscountSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DiscountSummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAccountBalances handles GET /reports/account-balances
func (h *reportHandlerImpl) GetAccountBalances(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AccountBalances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
