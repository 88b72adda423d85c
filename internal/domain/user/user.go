// Package user holds the User entity and its lifecycle rules.
package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
)

// Bounds for plain-text passwords accepted at sign-up. bcrypt ignores input
// beyond 72 bytes.
const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// Role is the authorization role assigned to a user.
type Role string

const (
	RoleUser             Role = "user"
	RoleAdmin            Role = "admin"
	RoleCooperationAdmin Role = "cooperation_admin"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleCooperationAdmin:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User is a registered account. Password holds the plain-text password only
// between request decoding and hashing; PasswordHash is what gets stored.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Password     string
	PasswordHash string
	Enabled      bool
	Expired      bool
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks the fields required to register a user.
func (u *User) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(u.FirstName) == "" {
		fields["first_name"] = domain.MsgRequired
	}
	if strings.TrimSpace(u.LastName) == "" {
		fields["last_name"] = domain.MsgRequired
	}
	if msg := ValidateEmail(u.Email); msg != "" {
		fields["email"] = msg
	}
	switch {
	case len(u.Password) < minPasswordLength:
		fields["password"] = "must be at least 8 characters"
	case len(u.Password) > maxPasswordLength:
		fields["password"] = "must be at most 72 bytes"
	}

	return domain.NewValidationError(fields)
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	FirstName *string
	LastName  *string
}

// Validate checks that any provided fields are non-blank.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.FirstName != nil && strings.TrimSpace(*p.FirstName) == "" {
		fields["first_name"] = domain.MsgMustNotEmpty
	}
	if p.LastName != nil && strings.TrimSpace(*p.LastName) == "" {
		fields["last_name"] = domain.MsgMustNotEmpty
	}

	return domain.NewValidationError(fields)
}

// Apply copies the non-nil patch fields onto u.
func (p *Patch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
}

// ValidateEmail returns an empty string for a well-formed address, or the
// validation message otherwise.
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return domain.MsgRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "must be a valid email address"
	}
	return ""
}
