package dto

import (
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/contact"
	"github.com/jsamuelsen11/home-service/internal/domain/cooperation"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/news"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
)

// CreateUserRequest represents the JSON body for registering a user.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ToUser converts the request to a domain User.
func (r *CreateUserRequest) ToUser() *user.User {
	return &user.User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
	}
}

// Validate applies the domain registration rules.
func (r *CreateUserRequest) Validate() error {
	return r.ToUser().Validate()
}

// UpdateUserRequest represents the JSON body for updating a user.
// All fields are optional; nil means "do not change this field.".
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateUserRequest) ToPatch() user.Patch {
	return user.Patch{FirstName: r.FirstName, LastName: r.LastName}
}

func (r *UpdateUserRequest) Validate() error {
	p := r.ToPatch()
	return p.Validate()
}

// CreateCooperationRequest represents the JSON body for creating a cooperation.
type CreateCooperationRequest struct {
	Name  string `json:"name"`
	USREO string `json:"usreo"`
	IBAN  string `json:"iban,omitempty"`
}

func (r *CreateCooperationRequest) ToCooperation() *cooperation.Cooperation {
	return &cooperation.Cooperation{Name: r.Name, USREO: r.USREO, IBAN: r.IBAN}
}

func (r *CreateCooperationRequest) Validate() error {
	return r.ToCooperation().Validate()
}

// UpdateCooperationRequest represents the JSON body for updating a cooperation.
type UpdateCooperationRequest struct {
	Name *string `json:"name,omitempty"`
	IBAN *string `json:"iban,omitempty"`
}

func (r *UpdateCooperationRequest) ToPatch() cooperation.Patch {
	return cooperation.Patch{Name: r.Name, IBAN: r.IBAN}
}

func (r *UpdateCooperationRequest) Validate() error {
	p := r.ToPatch()
	return p.Validate()
}

// CreateContactRequest represents the JSON body for adding a contact. The
// owner comes from the request path, so it is validated separately.
type CreateContactRequest struct {
	Type  string `json:"type"`
	Main  bool   `json:"main"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// ToContact converts the request to a domain Contact owned by owner.
func (r *CreateContactRequest) ToContact(owner contact.Owner) *contact.Contact {
	return &contact.Contact{
		Type:  contact.Type(r.Type),
		Main:  r.Main,
		Phone: r.Phone,
		Email: r.Email,
		Owner: owner,
	}
}

func (r *CreateContactRequest) Validate() error {
	// Any valid owner will do here; the handler supplies the real one.
	return r.ToContact(contact.UserOwner(0)).Validate()
}

// UpdateContactRequest represents the JSON body for updating a contact.
type UpdateContactRequest struct {
	Main  *bool   `json:"main,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (r *UpdateContactRequest) ToPatch() contact.Patch {
	return contact.Patch{Main: r.Main, Phone: r.Phone, Email: r.Email}
}

func (r *UpdateContactRequest) Validate() error {
	fields := make(map[string]string)
	if r.Email != nil {
		if msg := user.ValidateEmail(*r.Email); msg != "" {
			fields["email"] = msg
		}
	}
	if r.Phone != nil && *r.Phone == "" {
		fields["phone"] = domain.MsgMustNotEmpty
	}
	return domain.NewValidationError(fields)
}

// CreateInvitationRequest represents the JSON body for inviting someone to
// a cooperation.
type CreateInvitationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (r *CreateInvitationRequest) ToInvitation(cooperationID int64) *invitation.Invitation {
	return &invitation.Invitation{
		Name:          r.Name,
		Email:         r.Email,
		Role:          user.Role(r.Role),
		CooperationID: cooperationID,
	}
}

func (r *CreateInvitationRequest) Validate() error {
	return r.ToInvitation(1).Validate()
}

// MarkSentRequest is the optional body of POST /invitations/{id}/sent.
// Without sent_at the invitation is stamped with the current time.
type MarkSentRequest struct {
	SentAt *time.Time `json:"sent_at,omitempty"`
}

func (r *MarkSentRequest) Validate() error {
	if r.SentAt != nil && r.SentAt.IsZero() {
		return domain.NewValidationError(map[string]string{"sent_at": domain.MsgMustNotEmpty})
	}
	return nil
}

// CreateNewsRequest represents the JSON body for publishing news.
type CreateNewsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Source      string `json:"source,omitempty"`
}

func (r *CreateNewsRequest) ToNews() *news.News {
	return &news.News{
		Title:       r.Title,
		Description: r.Description,
		Text:        r.Text,
		PhotoURL:    r.PhotoURL,
		Source:      r.Source,
	}
}

func (r *CreateNewsRequest) Validate() error {
	return r.ToNews().Validate()
}

// UpdateNewsRequest represents the JSON body for editing news.
type UpdateNewsRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Text        *string `json:"text,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Source      *string `json:"source,omitempty"`
}

func (r *UpdateNewsRequest) ToPatch() news.Patch {
	return news.Patch{
		Title:       r.Title,
		Description: r.Description,
		Text:        r.Text,
		PhotoURL:    r.PhotoURL,
		Source:      r.Source,
	}
}

func (r *UpdateNewsRequest) Validate() error {
	p := r.ToPatch()
	return p.Validate()
}
