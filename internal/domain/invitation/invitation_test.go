package invitation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/invitation"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
)

func validInvitation() invitation.Invitation {
	return invitation.Invitation{
		Name:          "Olena",
		Email:         "olena@example.com",
		Role:          user.RoleCooperationAdmin,
		CooperationID: 3,
	}
}

func TestInvitation_Validate(t *testing.T) {
	t.Parallel()

	inv := validInvitation()
	require.NoError(t, inv.Validate())

	inv.Role = "owner"
	inv.CooperationID = 0
	err := inv.Validate()
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "role")
	assert.Contains(t, err.Error(), "cooperation_id")
}

func TestInvitation_MarkSent(t *testing.T) {
	t.Parallel()

	inv := validInvitation()
	assert.Equal(t, invitation.StatusPending, inv.Status())

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	inv.MarkSent(at)

	assert.True(t, inv.Sent)
	require.NotNil(t, inv.SentAt)
	assert.Equal(t, at, *inv.SentAt)
	assert.Equal(t, invitation.StatusSent, inv.Status())
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	s, ok := invitation.ParseStatus("SENT")
	assert.True(t, ok)
	assert.Equal(t, invitation.StatusSent, s)

	_, ok = invitation.ParseStatus("bounced")
	assert.False(t, ok)
}
