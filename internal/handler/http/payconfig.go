package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/surtimax/payroll-backend/internal/domain/payconfig"
	"github.com/surtimax/payroll-backend/internal/handler/http/response"
)

type ConfigHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type configHandlerImpl struct {
	configService payconfig.ConfigService
}

func NewConfigHandler(configService payconfig.ConfigService) ConfigHandler {
	return &configHandlerImpl{configService: configService}
}

func (h *configHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Setting name is required", nil)
		return
	}

	value, err := h.configService.Get(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"name":  name,
		"value": value,
	})
}

func (h *configHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		response.BadRequest(w, "Setting name is required", nil)
		return
	}

	var req payconfig.SetConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.Name = name

	result, err := h.configService.Set(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *configHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
