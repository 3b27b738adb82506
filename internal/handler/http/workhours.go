package http

import (
	"encoding/json"
	"net/http"

	"github.com/surtimax/payroll-backend/internal/domain/workhours"
	"github.com/surtimax/payroll-backend/internal/handler/http/response"
)

type WorkHoursHandler interface {
	SyncRange(w http.ResponseWriter, r *http.Request)
}

type workHoursHandlerImpl struct {
	workHoursService workhours.WorkHoursService
}

func NewWorkHoursHandler(workHoursService workhours.WorkHoursService) WorkHoursHandler {
	return &workHoursHandlerImpl{workHoursService: workHoursService}
}

func (h *workHoursHandlerImpl) SyncRange(w http.ResponseWriter, r *http.Request) {
	var req workhours.SyncRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workHoursService.SyncRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
