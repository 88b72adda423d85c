// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/domain/cooperation"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
	"github.com/jsamuelsen11/home-service/internal/query"
)

// PageResponse is the envelope of every list endpoint.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"total_elements"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
}

// ToPageResponse converts a domain page with the given item mapper.
func ToPageResponse[D, T any](p query.Page[D], convert func(*D) T) PageResponse[T] {
	items := make([]T, len(p.Content))
	for i := range p.Content {
		items[i] = convert(&p.Content[i])
	}
	return PageResponse[T]{
		Content:       items,
		TotalElements: p.TotalElements,
		PageNumber:    p.Number,
		PageSize:      p.Size,
	}
}

// UserResponse represents a user in HTTP responses. Password material is
// never exposed.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Enabled   bool   `json:"enabled"`
	Expired   bool   `json:"expired"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Enabled:   u.Enabled,
		Expired:   u.Expired,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// CooperationResponse represents a housing cooperation in HTTP responses.
type CooperationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	USREO     string `json:"usreo"`
	IBAN      string `json:"iban,omitempty"`
	Enabled   bool   `json:"enabled"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToCooperationResponse(c *cooperation.Cooperation) CooperationResponse {
	return CooperationResponse{
		ID:        c.ID,
		Name:      c.Name,
		USREO:     c.USREO,
		IBAN:      c.IBAN,
		Enabled:   c.Enabled,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

// ContactResponse represents a contact in HTTP responses. Exactly one of
// UserID and CooperationID is set.
type ContactResponse struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Main          bool   `json:"main"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	UserID        *int64 `json:"user_id,omitempty"`
	CooperationID *int64 `json:"cooperation_id,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

func ToContactResponse(c *contact.Contact) ContactResponse {
	return ContactResponse{
		ID:            c.ID,
		Type:          c.Type.String(),
		Main:          c.Main,
		Phone:         c.Phone,
		Email:         c.Email,
		UserID:        c.Owner.UserID,
		CooperationID: c.Owner.CooperationID,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

// InvitationResponse represents an invitation in HTTP responses.
type InvitationResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	CooperationID int64   `json:"cooperation_id"`
	Status        string  `json:"status"`
	SentAt        *string `json:"sent_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func ToInvitationResponse(inv *invitation.Invitation) InvitationResponse {
	resp := InvitationResponse{
		ID:            inv.ID,
		Name:          inv.Name,
		Email:         inv.Email,
		Role:          inv.Role.String(),
		CooperationID: inv.CooperationID,
		Status:        string(inv.Status()),
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.SentAt != nil {
		s := inv.SentAt.Format(time.RFC3339)
		resp.SentAt = &s
	}
	return resp
}

// ToInvitationListResponse converts an unpaged invitation slice.
func ToInvitationListResponse(invs []invitation.Invitation) []InvitationResponse {
	items := make([]InvitationResponse, len(invs))
	for i := range invs {
		items[i] = ToInvitationResponse(&invs[i])
	}
	return items
}

// NewsResponse represents a news item in HTTP responses.
type NewsResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Source      string `json:"source,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func ToNewsResponse(n *news.News) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Text:        n.Text,
		PhotoURL:    n.PhotoURL,
		Source:      n.Source,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}

// HealthResponse is the body of the liveness and readiness endpoints. Checks is
// omitted on liveness; on readiness it maps each dependency to "ok" or its
// failure.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
