package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/ports"
)

// Path parameters that select the owner of a contact collection.
const (
	userIDParam        = "userId"
	cooperationIDParam = "cooperationId"
)

// ContactHandler serves the contact collections nested under users and
// cooperations. The owner is taken from the matched route.
type ContactHandler struct {
	svc ports.ContactService
}

func NewContactHandler(svc ports.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// ListContacts handles GET .../{userId|cooperationId}/contacts. The owner
// path parameter doubles as a filter.
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	if _, err := ownerFromPath(r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.svc.QueryContacts(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writePage(w, r, page, dto.ToContactResponse)
}

// CreateContact handles POST .../{userId|cooperationId}/contacts.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromPath(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateContact(r.Context(), req.ToContact(owner))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToContactResponse(created))
}

// GetContact handles GET .../contacts/{id}.
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	if _, err := ownerFromPath(r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetContact(r.Context(), queryRequest(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToContactResponse(&c))
}

// UpdateContact handles PATCH .../contacts/{id}.
func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownedID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateContact(r.Context(), owner, id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToContactResponse(updated))
}

// DeleteContact handles DELETE .../contacts/{id}.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	owner, id, err := ownedID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteContact(r.Context(), owner, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownerFromPath resolves the contact owner from whichever owner parameter
// the route matched.
func ownerFromPath(r *http.Request) (contact.Owner, error) {
	if chi.URLParam(r, userIDParam) != "" {
		id, err := parseID(r, userIDParam)
		if err != nil {
			return contact.Owner{}, err
		}
		return contact.UserOwner(id), nil
	}
	id, err := parseID(r, cooperationIDParam)
	if err != nil {
		return contact.Owner{}, err
	}
	return contact.CooperationOwner(id), nil
}

func ownedID(r *http.Request) (contact.Owner, int64, error) {
	owner, err := ownerFromPath(r)
	if err != nil {
		return contact.Owner{}, 0, err
	}
	id, err := parseID(r, "id")
	if err != nil {
		return contact.Owner{}, 0, err
	}
	return owner, id, nil
}
