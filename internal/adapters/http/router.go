// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/home-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/home-service/internal/adapters/http/handlers"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Users        *handlers.UserHandler
	Cooperations *handlers.CooperationHandler
	Contacts     *handlers.ContactHandler
	Invitations  *handlers.InvitationHandler
	News         *handlers.NewsHandler
	Health       *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusNotFound, "no route matches "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported here")
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", h.Users.ListUsers)
		r.Post("/users", h.Users.CreateUser)
		r.Get("/users/{id}", h.Users.GetUser)
		r.Patch("/users/{id}", h.Users.UpdateUser)
		r.Delete("/users/{id}", h.Users.DeactivateUser)

		r.Get("/users/{userId}/contacts", h.Contacts.ListContacts)
		r.Post("/users/{userId}/contacts", h.Contacts.CreateContact)
		r.Get("/users/{userId}/contacts/{id}", h.Contacts.GetContact)
		r.Patch("/users/{userId}/contacts/{id}", h.Contacts.UpdateContact)
		r.Delete("/users/{userId}/contacts/{id}", h.Contacts.DeleteContact)

		r.Get("/cooperations", h.Cooperations.ListCooperations)
		r.Post("/cooperations", h.Cooperations.CreateCooperation)
		r.Get("/cooperations/{id}", h.Cooperations.GetCooperation)
		r.Patch("/cooperations/{id}", h.Cooperations.UpdateCooperation)
		r.Delete("/cooperations/{id}", h.Cooperations.DeactivateCooperation)

		r.Get("/cooperations/{cooperationId}/contacts", h.Contacts.ListContacts)
		r.Post("/cooperations/{cooperationId}/contacts", h.Contacts.CreateContact)
		r.Get("/cooperations/{cooperationId}/contacts/{id}", h.Contacts.GetContact)
		r.Patch("/cooperations/{cooperationId}/contacts/{id}", h.Contacts.UpdateContact)
		r.Delete("/cooperations/{cooperationId}/contacts/{id}", h.Contacts.DeleteContact)

		r.Get("/cooperations/{cooperationId}/invitations", h.Invitations.ListInvitations)
		r.Post("/cooperations/{cooperationId}/invitations", h.Invitations.CreateInvitation)

		// Static segments win over {id} in chi's radix tree.
		r.Get("/invitations", h.Invitations.ListInvitations)
		r.Get("/invitations/active", h.Invitations.ListActiveInvitations)
		r.Get("/invitations/{id}", h.Invitations.GetInvitation)
		r.Post("/invitations/{id}/sent", h.Invitations.MarkSent)

		r.Get("/news", h.News.ListNews)
		r.Post("/news", h.News.CreateNews)
		r.Get("/news/{id}", h.News.GetNews)
		r.Patch("/news/{id}", h.News.UpdateNews)
		r.Delete("/news/{id}", h.News.DeleteNews)
	})

	return r
}
