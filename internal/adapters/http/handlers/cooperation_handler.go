package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/ports"
)

// CooperationHandler handles HTTP requests for housing cooperations.
type CooperationHandler struct {
	svc ports.CooperationService
}

func NewCooperationHandler(svc ports.CooperationService) *CooperationHandler {
	return &CooperationHandler{svc: svc}
}

// ListCooperations handles GET /api/v1/cooperations.
func (h *CooperationHandler) ListCooperations(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.QueryCooperations(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePage(w, r, page, dto.ToCooperationResponse)
}

// CreateCooperation handles POST /api/v1/cooperations.
func (h *CooperationHandler) CreateCooperation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCooperationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateCooperation(r.Context(), req.ToCooperation())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToCooperationResponse(created))
}

// GetCooperation handles GET /api/v1/cooperations/{id}.
func (h *CooperationHandler) GetCooperation(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCooperation(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCooperationResponse(&c))
}

// UpdateCooperation handles PATCH /api/v1/cooperations/{id}.
func (h *CooperationHandler) UpdateCooperation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateCooperationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateCooperation(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCooperationResponse(updated))
}

// DeactivateCooperation handles DELETE /api/v1/cooperations/{id}.
func (h *CooperationHandler) DeactivateCooperation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeactivateCooperation(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
