// Package cooperation holds the Cooperation entity: a housing cooperation
// that owns contacts and issues invitations.
package cooperation

import (
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
)

var (
	usreoPattern = regexp.MustCompile(`^\d{8}$`)
	ibanPattern  = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{11,30}$`)
)

// Cooperation represents a registered housing cooperation.
// USREO is the 8-digit state registry code and is unique among cooperations.
type Cooperation struct {
	ID        int64
	Name      string
	USREO     string
	IBAN      string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Cooperation entity.
func (c *Cooperation) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if !usreoPattern.MatchString(c.USREO) {
		fields["usreo"] = "must be 8 digits"
	}
	if c.IBAN != "" && !ibanPattern.MatchString(c.IBAN) {
		fields["iban"] = "must be a valid IBAN"
	}

	return domain.NewValidationError(fields)
}

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Name *string
	IBAN *string
}

// Validate checks that any provided fields have valid values.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fields["name"] = domain.MsgMustNotEmpty
	}
	if p.IBAN != nil && *p.IBAN != "" && !ibanPattern.MatchString(*p.IBAN) {
		fields["iban"] = "must be a valid IBAN"
	}

	return domain.NewValidationError(fields)
}

// Apply copies the non-nil patch fields onto c.
func (p *Patch) Apply(c *Cooperation) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.IBAN != nil {
		c.IBAN = *p.IBAN
	}
}
