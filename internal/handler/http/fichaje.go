package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/fichaje"
	"github.com/andamio-hr/asistencia-backend-go/internal/handler/http/response"
)

type FichajeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
}

type fichajeHandlerImpl struct {
	fichajeService fichaje.FichajeService
}

func NewFichajeHandler(fichajeService fichaje.FichajeService) FichajeHandler {
	return &fichajeHandlerImpl{
		fichajeService: fichajeService,
	}
}

// Create implements FichajeHandler.
func (h *fichajeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req fichaje.CreateFichajeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create fichaje decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.fichajeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fichaje registrado", result)
}

// Status implements FichajeHandler.
func (h *fichajeHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.fichajeService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// My implements FichajeHandler.
func (h *fichajeHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	var filter fichaje.MyFichajesFilter
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	result, err := h.fichajeService.MySessions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
