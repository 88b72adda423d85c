package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
)

const testUpdatedValue = "Updated"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validUser() user.User {
	return user.User{
		ID:        1,
		FirstName: "Olena",
		LastName:  "Koval",
		Email:     "olena@example.com",
		Enabled:   true,
		Role:      user.RoleUser,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validContact() contact.Contact {
	return contact.Contact{
		ID:        3,
		Type:      contact.TypePhone,
		Main:      true,
		Phone:     "+380441234567",
		Owner:     contact.UserOwner(1),
		Enabled:   true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validInvitation() invitation.Invitation {
	return invitation.Invitation{
		ID:            4,
		Name:          "Ivan",
		Email:         "ivan@example.com",
		Role:          user.RoleUser,
		CooperationID: 2,
		CreatedAt:     testTime,
	}
}

func validNews() news.News {
	return news.News{
		ID:        5,
		Title:     "Water outage",
		Text:      "No hot water on Monday.",
		Enabled:   true,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := dto.Encode(buf, v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := dto.Decode(rec.Body, &result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
