package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/ports"
)

// InvitationHandler handles HTTP requests for cooperation invitations.
type InvitationHandler struct {
	svc ports.InvitationService
}

func NewInvitationHandler(svc ports.InvitationService) *InvitationHandler {
	return &InvitationHandler{svc: svc}
}

// ListInvitations handles GET /api/v1/invitations and
// GET /api/v1/cooperations/{cooperationId}/invitations.
func (h *InvitationHandler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.QueryInvitations(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePage(w, r, page, dto.ToInvitationResponse)
}

// ListActiveInvitations handles GET /api/v1/invitations/active.
func (h *InvitationHandler) ListActiveInvitations(w http.ResponseWriter, r *http.Request) {
	invs, err := h.svc.ListActiveInvitations(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvitationListResponse(invs))
}

// CreateInvitation handles POST /api/v1/cooperations/{cooperationId}/invitations.
func (h *InvitationHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	cooperationID, err := parseID(r, cooperationIDParam)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateInvitationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateInvitation(r.Context(), req.ToInvitation(cooperationID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToInvitationResponse(created))
}

// GetInvitation handles GET /api/v1/invitations/{id}.
func (h *InvitationHandler) GetInvitation(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.GetInvitation(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvitationResponse(&inv))
}

// MarkSent handles POST /api/v1/invitations/{id}/sent. The body is optional;
// an explicit sent_at overrides the current time.
func (h *InvitationHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MarkSentRequest
	if !decodeValidated(w, r, &req, true) {
		return
	}

	var inv *invitation.Invitation
	if req.SentAt != nil {
		inv, err = h.svc.UpdateSentDateTime(r.Context(), id, *req.SentAt)
	} else {
		inv, err = h.svc.ChangeInvitationStatus(r.Context(), id)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToInvitationResponse(inv))
}
