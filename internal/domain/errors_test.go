package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/domain"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := domain.Errorf(domain.ErrNotFound, "User with id: %d is not found", 4)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrBadRequest)
	assert.EqualError(t, err, "User with id: 4 is not found")
}

func TestWrap_KeepsCauseOutOfMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("duplicate key value violates unique constraint")
	err := domain.Wrap(domain.ErrConflict, cause, "Entity already exists")

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "Entity already exists")
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, domain.NewValidationError(nil))

	err := domain.NewValidationError(map[string]string{
		"name":  domain.MsgRequired,
		"email": "must be a valid email address",
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualError(t, err, "validation error: email: must be a valid email address; name: is required")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}
