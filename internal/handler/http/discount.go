package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/surtimax/payroll-backend/internal/domain/discount"
	"github.com/surtimax/payroll-backend/internal/handler/http/response"
)

type DiscountHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DeferToAccount(w http.ResponseWriter, r *http.Request)
	ListUnpaid(w http.ResponseWriter, r *http.Request)
	AccountBalance(w http.ResponseWriter, r *http.Request)
}

type discountHandlerImpl struct {
	discountService discount.DiscountService
}

func NewDiscountHandler(discountService discount.DiscountService) DiscountHandler {
	return &discountHandlerImpl{discountService: discountService}
}

func (h *discountHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	var req discount.AddDiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.discountService.Add(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Discount recorded", result)
}

func (h *discountHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Discount ID is required", nil)
		return
	}

	if err := h.discountService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Discount deleted successfully", nil)
}

func (h *discountHandlerImpl) DeferToAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Discount ID is required", nil)
		return
	}

	req := discount.DeferToAccountRequest{DiscountID: id}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
		req.DiscountID = id
	}

	result, err := h.discountService.DeferToAccount(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Discount deferred to account", result)
}

func (h *discountHandlerImpl) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	var filter discount.DiscountFilter
	if from := r.URL.Query().Get("from"); from != "" {
		filter.From = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		filter.To = &to
	}
	if ids := r.URL.Query().Get("employee_ids"); ids != "" {
		filter.EmployeeIDs = strings.Split(ids, ",")
	}

	result, err := h.discountService.ListUnpaid(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *discountHandlerImpl) AccountBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.discountService.AccountBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
