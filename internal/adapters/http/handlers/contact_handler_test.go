package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/query"
	"github.com/jsamuelsen11/home-service/mocks"
)

func newContactHandler(t *testing.T) (*handlers.ContactHandler, *mocks.MockContactService) {
	t.Helper()
	svc := mocks.NewMockContactService(t)
	return handlers.NewContactHandler(svc), svc
}

func TestListContacts_OwnerPathIsFilter(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	svc.EXPECT().QueryContacts(mock.Anything, query.Request{
		Path:  query.Params{"cooperationId": {"2"}},
		Query: query.Params{"type": {"phone"}},
	}).Return(query.Page[contact.Contact]{
		Content:       []contact.Contact{validContact()},
		TotalElements: 1,
		Number:        1,
		Size:          5,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cooperations/2/contacts?type=phone", nil)
	req = withChiParams(req, map[string]string{"cooperationId": "2"})
	h.ListContacts(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.PageResponse[dto.ContactResponse]](t, rec)
	if len(resp.Content) != 1 || resp.Content[0].Phone != "+380441234567" {
		t.Errorf("Content = %+v", resp.Content)
	}
}

func TestListContacts_InvalidOwner(t *testing.T) {
	t.Parallel()
	h, _ := newContactHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/x/contacts", nil)
	req = withChiParams(req, map[string]string{"userId": "x"})
	h.ListContacts(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateContact_UserOwner(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	created := validContact()
	svc.EXPECT().CreateContact(mock.Anything, mock.MatchedBy(func(c *contact.Contact) bool {
		return c.Owner.IsUser() && *c.Owner.UserID == 1 && c.Type == contact.TypePhone
	})).Return(&created, nil)

	body := jsonBody(t, dto.CreateContactRequest{Type: "phone", Main: true, Phone: "+380441234567"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/1/contacts", body)
	req = withChiParams(req, map[string]string{"userId": "1"})
	h.CreateContact(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.ContactResponse](t, rec)
	if resp.UserID == nil || *resp.UserID != 1 {
		t.Errorf("UserID = %v, want 1", resp.UserID)
	}
}

func TestCreateContact_OwnerMissing(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	svc.EXPECT().CreateContact(mock.Anything, mock.Anything).
		Return(nil, domain.Errorf(domain.ErrNotFound, "Cooperation with id: %d is not found", 8))

	body := jsonBody(t, dto.CreateContactRequest{Type: "email", Email: "board@example.com"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cooperations/8/contacts", body)
	req = withChiParams(req, map[string]string{"cooperationId": "8"})
	h.CreateContact(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestUpdateContact_Success(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	updated := validContact()
	updated.Main = false
	svc.EXPECT().UpdateContact(mock.Anything, contact.CooperationOwner(2), int64(3), mock.MatchedBy(func(p contact.Patch) bool {
		return p.Main != nil && !*p.Main
	})).Return(&updated, nil)

	primary := false
	body := jsonBody(t, dto.UpdateContactRequest{Main: &primary})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cooperations/2/contacts/3", body)
	req = withChiParams(req, map[string]string{"cooperationId": "2", "id": "3"})
	h.UpdateContact(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteContact_Success(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	svc.EXPECT().DeleteContact(mock.Anything, contact.UserOwner(1), int64(3)).Return(nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/1/contacts/3", nil)
	req = withChiParams(req, map[string]string{"userId": "1", "id": "3"})
	h.DeleteContact(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

func TestGetContact_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newContactHandler(t)

	svc.EXPECT().GetContact(mock.Anything, query.Request{
		Path:  query.Params{"userId": {"1"}, "id": {"42"}},
		Query: query.Params{},
	}).Return(contact.Contact{}, domain.Errorf(domain.ErrNotFound, "Entity with 'id: 42, userId: 1' is not found"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/1/contacts/42", nil)
	req = withChiParams(req, map[string]string{"userId": "1", "id": "42"})
	h.GetContact(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}
