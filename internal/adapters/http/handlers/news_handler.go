package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/ports"
)

// NewsHandler handles HTTP requests for news items.
type NewsHandler struct {
	svc ports.NewsService
}

func NewNewsHandler(svc ports.NewsService) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// ListNews handles GET /api/v1/news.
func (h *NewsHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.QueryNews(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePage(w, r, page, dto.ToNewsResponse)
}

// CreateNews handles POST /api/v1/news.
func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNewsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateNews(r.Context(), req.ToNews())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToNewsResponse(created))
}

// GetNews handles GET /api/v1/news/{id}.
func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.GetNews(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNewsResponse(&n))
}

// UpdateNews handles PATCH /api/v1/news/{id}.
func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateNewsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateNews(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToNewsResponse(updated))
}

// DeleteNews handles DELETE /api/v1/news/{id}.
func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteNews(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
