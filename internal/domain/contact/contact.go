// Package contact holds the Contact entity. A contact belongs to exactly one
// owner: either a user or a cooperation.
package contact

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
)

// Type distinguishes phone contacts from email contacts.
type Type string

const (
	TypePhone Type = "phone"
	TypeEmail Type = "email"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	return t == TypePhone || t == TypeEmail
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Owner identifies who a contact belongs to. Exactly one of UserID and
// CooperationID is set.
type Owner struct {
	UserID        *int64
	CooperationID *int64
}

// UserOwner returns the Owner for a user-owned contact.
func UserOwner(id int64) Owner {
	return Owner{UserID: &id}
}

// CooperationOwner returns the Owner for a cooperation-owned contact.
func CooperationOwner(id int64) Owner {
	return Owner{CooperationID: &id}
}

// IsUser reports whether the owner is a user.
func (o Owner) IsUser() bool {
	return o.UserID != nil
}

// Valid reports whether exactly one owner id is set.
func (o Owner) Valid() bool {
	return (o.UserID == nil) != (o.CooperationID == nil)
}

// Contact is a phone number or email address attached to its owner.
type Contact struct {
	ID        int64
	Type      Type
	Main      bool
	Phone     string
	Email     string
	Owner     Owner
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks that the payload matches the contact type.
func (c *Contact) Validate() error {
	fields := make(map[string]string)

	switch c.Type {
	case TypePhone:
		if strings.TrimSpace(c.Phone) == "" {
			fields["phone"] = domain.MsgRequired
		}
	case TypeEmail:
		if msg := user.ValidateEmail(c.Email); msg != "" {
			fields["email"] = msg
		}
	case "":
		fields["type"] = domain.MsgRequired
	default:
		fields["type"] = "must be one of: phone, email"
	}
	if !c.Owner.Valid() {
		fields["owner"] = "must reference exactly one user or cooperation"
	}

	return domain.NewValidationError(fields)
}

// Patch is a partial update; nil fields are left unchanged. The type and
// owner of a contact never change.
type Patch struct {
	Main  *bool
	Phone *string
	Email *string
}

// Apply copies the non-nil patch fields onto c.
func (p *Patch) Apply(c *Contact) {
	if p.Main != nil {
		c.Main = *p.Main
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
}
