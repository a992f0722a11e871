package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/andamio-hr/asistencia-backend-go/internal/domain/adjustment"
	"github.com/andamio-hr/asistencia-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{
		adjustmentService: adjustmentService,
	}
}

// Create implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Solicitud de ajuste creada", result)
}

// My implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	result, err := h.adjustmentService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Pending implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	result, err := h.adjustmentService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.adjustmentService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Solicitud aprobada", result)
}

// Reject implements AdjustmentHandler.
func (h *adjustmentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req adjustment.RejectAdjustmentRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Reject adjustment decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.adjustmentService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Solicitud rechazada", result)
}
