// Package invitation holds the Invitation entity: a request for someone to
// join a cooperation with a given role.
package invitation

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
)

// Status is the delivery status of an invitation as exposed to API clients.
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
)

// ParseStatus converts a status string into a Status.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToLower(s)) {
	case StatusPending:
		return StatusPending, true
	case StatusSent:
		return StatusSent, true
	default:
		return "", false
	}
}

// Invitation is stored when a cooperation invites a person. Sending is done
// elsewhere; this entity only tracks whether and when it was sent.
type Invitation struct {
	ID            int64
	Name          string
	Email         string
	Role          user.Role
	CooperationID int64
	Sent          bool
	SentAt        *time.Time
	CreatedAt     time.Time
}

// Status derives the delivery status from the Sent flag.
func (i *Invitation) Status() Status {
	if i.Sent {
		return StatusSent
	}
	return StatusPending
}

// MarkSent flags the invitation as sent at t.
func (i *Invitation) MarkSent(t time.Time) {
	i.Sent = true
	i.SentAt = &t
}

// Validate checks business rules for the Invitation entity.
func (i *Invitation) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(i.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if msg := user.ValidateEmail(i.Email); msg != "" {
		fields["email"] = msg
	}
	if !i.Role.IsValid() {
		fields["role"] = "must be one of: user, admin, cooperation_admin"
	}
	if i.CooperationID <= 0 {
		fields["cooperation_id"] = domain.MsgRequired
	}

	return domain.NewValidationError(fields)
}
