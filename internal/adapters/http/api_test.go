package http_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	adapthttp "github.com/jsamuelsen11/home-service/internal/adapters/http"
	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/home-service/internal/adapters/persistence/sqlstore"
	"github.com/jsamuelsen11/home-service/internal/app"
	"github.com/jsamuelsen11/home-service/internal/platform/config"
	"github.com/jsamuelsen11/home-service/internal/platform/database"
	"github.com/jsamuelsen11/home-service/internal/platform/health"
	"github.com/jsamuelsen11/home-service/internal/platform/password"
	"github.com/jsamuelsen11/home-service/internal/query"
)

var apiClock = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

// newAPI wires the full stack over a migrated in-memory sqlite database.
func newAPI(t *testing.T) http.Handler {
	t.Helper()

	x, err := sqlx.Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	x.SetMaxOpenConns(1)

	cb := config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1}
	db, err := database.New(x, config.DriverSQLite, cb, nil, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fsys, err := sqlstore.Migrations(config.DriverSQLite)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background(), fsys))

	opts := query.Options{DefaultPageSize: 5, MaxPageSize: 100, DefaultSort: "id,desc"}
	users := sqlstore.NewUserRepository(db, opts)
	cooperations := sqlstore.NewCooperationRepository(db, opts)
	contacts := sqlstore.NewContactRepository(db, opts)
	invitations := sqlstore.NewInvitationRepository(db, opts)
	newsRepo := sqlstore.NewNewsRepository(db, opts)

	clock := app.WithClock(func() time.Time { return apiClock })
	logger := discardLogger()

	registry := health.New()
	registry.Register(db)

	return adapthttp.NewRouter(adapthttp.Handlers{
		Users:        handlers.NewUserHandler(app.NewUserService(users, password.NewBcrypt(bcrypt.MinCost), logger, clock)),
		Cooperations: handlers.NewCooperationHandler(app.NewCooperationService(cooperations, logger, clock)),
		Contacts:     handlers.NewContactHandler(app.NewContactService(contacts, users, cooperations, logger, clock)),
		Invitations:  handlers.NewInvitationHandler(app.NewInvitationService(invitations, cooperations, logger, clock)),
		News:         handlers.NewNewsHandler(app.NewNewsService(newsRepo, logger, clock)),
		Health:       handlers.NewHealthHandler(registry),
	})
}

func do(t *testing.T, api http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, dto.Encode(&buf, body))
	}
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, httptest.NewRequest(method, target, &buf))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, dto.Decode(rec.Body, &v), "body: %s", rec.Body.String())
	return v
}

// contactQuery describes a contact collection request.
type contactQuery struct {
	owner   string // "users" or "cooperations"
	ownerID int64
	id      int64 // non-zero addresses a single contact
	params  url.Values
}

func (q contactQuery) target() string {
	target := fmt.Sprintf("/api/v1/%s/%d/contacts", q.owner, q.ownerID)
	if q.id != 0 {
		target += "/" + strconv.FormatInt(q.id, 10)
	}
	if len(q.params) > 0 {
		target += "?" + q.params.Encode()
	}
	return target
}

func TestAPI_CooperationContacts(t *testing.T) {
	t.Parallel()
	api := newAPI(t)

	rec := do(t, api, http.MethodPost, "/api/v1/cooperations",
		dto.CreateCooperationRequest{Name: "Sunrise", USREO: "12345678"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	coop := decode[dto.CooperationResponse](t, rec)

	seed := []dto.CreateContactRequest{
		{Type: "phone", Main: true, Phone: "+380441111111"},
		{Type: "phone", Phone: "+380442222222"},
		{Type: "email", Email: "board@sunrise.example"},
	}
	ids := make([]int64, len(seed))
	for i, c := range seed {
		rec := do(t, api, http.MethodPost, contactQuery{owner: "cooperations", ownerID: coop.ID}.target(), c)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		ids[i] = decode[dto.ContactResponse](t, rec).ID
	}

	tests := []struct {
		name      string
		q         contactQuery
		wantIDs   []int64
		wantTotal string
	}{
		{
			name:      "all contacts newest first",
			q:         contactQuery{owner: "cooperations", ownerID: coop.ID},
			wantIDs:   []int64{ids[2], ids[1], ids[0]},
			wantTotal: "3",
		},
		{
			name:      "by type",
			q:         contactQuery{owner: "cooperations", ownerID: coop.ID, params: url.Values{"type": {"phone"}, "sort": {"id,asc"}}},
			wantIDs:   []int64{ids[0], ids[1]},
			wantTotal: "2",
		},
		{
			name:      "main only",
			q:         contactQuery{owner: "cooperations", ownerID: coop.ID, params: url.Values{"main": {"true"}}},
			wantIDs:   []int64{ids[0]},
			wantTotal: "1",
		},
		{
			name:      "by contactId",
			q:         contactQuery{owner: "cooperations", ownerID: coop.ID, params: url.Values{"contactId": {strconv.FormatInt(ids[1], 10)}}},
			wantIDs:   []int64{ids[1]},
			wantTotal: "1",
		},
		{
			name:      "free-text search",
			q:         contactQuery{owner: "cooperations", ownerID: coop.ID, params: url.Values{"filter": {"BOARD"}}},
			wantIDs:   []int64{ids[2]},
			wantTotal: "1",
		},
		{
			name:      "second page",
			q:         contactQuery{owner: "cooperations", ownerID: coop.ID, params: url.Values{"page_number": {"2"}, "page_size": {"2"}}},
			wantIDs:   []int64{ids[0]},
			wantTotal: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, api, http.MethodGet, tt.q.target(), nil)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantTotal, rec.Header().Get("X-Total-Count"))

			page := decode[dto.PageResponse[dto.ContactResponse]](t, rec)
			got := make([]int64, len(page.Content))
			for i, c := range page.Content {
				got[i] = c.ID
				require.NotNil(t, c.CooperationID)
				assert.Equal(t, coop.ID, *c.CooperationID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}

	t.Run("single contact of another owner is not found", func(t *testing.T) {
		rec := do(t, api, http.MethodGet, contactQuery{owner: "cooperations", ownerID: coop.ID + 1, id: ids[0]}.target(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("owner given twice is rejected", func(t *testing.T) {
		q := contactQuery{owner: "cooperations", ownerID: coop.ID, params: url.Values{"cooperationId": {"1"}}}
		rec := do(t, api, http.MethodGet, q.target(), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("deleted contact disappears", func(t *testing.T) {
		rec := do(t, api, http.MethodDelete, contactQuery{owner: "cooperations", ownerID: coop.ID, id: ids[1]}.target(), nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, api, http.MethodGet, contactQuery{owner: "cooperations", ownerID: coop.ID, id: ids[1]}.target(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_UserLifecycle(t *testing.T) {
	t.Parallel()
	api := newAPI(t)

	create := dto.CreateUserRequest{FirstName: "Olena", LastName: "Koval", Email: "olena@example.com", Password: "correct-horse"}
	rec := do(t, api, http.MethodPost, "/api/v1/users", create)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.UserResponse](t, rec)
	assert.Equal(t, "user", created.Role)
	assert.NotContains(t, rec.Body.String(), "correct-horse")

	rec = do(t, api, http.MethodPost, "/api/v1/users", create)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, api, http.MethodGet, "/api/v1/users?color=red", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, api, http.MethodGet, "/api/v1/users/"+strconv.FormatInt(created.ID, 10), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "olena@example.com", decode[dto.UserResponse](t, rec).Email)

	rec = do(t, api, http.MethodDelete, "/api/v1/users/"+strconv.FormatInt(created.ID, 10), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, api, http.MethodGet, "/api/v1/users/"+strconv.FormatInt(created.ID, 10), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	problem := decode[dto.ErrorResponse](t, rec)
	assert.Equal(t, fmt.Sprintf("Entity with 'id: %d' is not found", created.ID), problem.Detail)
}

func TestAPI_InvitationLifecycle(t *testing.T) {
	t.Parallel()
	api := newAPI(t)

	rec := do(t, api, http.MethodPost, "/api/v1/cooperations",
		dto.CreateCooperationRequest{Name: "Sunrise", USREO: "12345678"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	coop := decode[dto.CooperationResponse](t, rec)

	target := fmt.Sprintf("/api/v1/cooperations/%d/invitations", coop.ID)
	rec = do(t, api, http.MethodPost, target, dto.CreateInvitationRequest{Name: "Ivan", Email: "ivan@example.com", Role: "user"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	inv := decode[dto.InvitationResponse](t, rec)
	assert.Equal(t, "pending", inv.Status)

	rec = do(t, api, http.MethodGet, "/api/v1/invitations/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]dto.InvitationResponse](t, rec), 1)

	rec = do(t, api, http.MethodPost, fmt.Sprintf("/api/v1/invitations/%d/sent", inv.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	sent := decode[dto.InvitationResponse](t, rec)
	assert.Equal(t, "sent", sent.Status)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, "2026-04-02T12:00:00Z", *sent.SentAt)

	rec = do(t, api, http.MethodGet, "/api/v1/invitations/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]dto.InvitationResponse](t, rec))

	rec = do(t, api, http.MethodGet, target+"?status=sent", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Total-Count"))

	rec = do(t, api, http.MethodPost, "/api/v1/invitations/999/sent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_Readiness(t *testing.T) {
	t.Parallel()
	api := newAPI(t)

	rec := do(t, api, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
