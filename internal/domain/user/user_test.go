package user_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/domain"
	"github.com/jsamuelsen11/home-service/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func validUser() user.User {
	return user.User{
		FirstName: "Olena",
		LastName:  "Koval",
		Email:     "olena@example.com",
		Password:  "correct-horse",
	}
}

func TestUser_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(u *user.User)
		wantFields []string
	}{
		{name: "valid user", mutate: func(*user.User) {}},
		{
			name:       "missing names",
			mutate:     func(u *user.User) { u.FirstName, u.LastName = " ", "" },
			wantFields: []string{"first_name", "last_name"},
		},
		{
			name:       "malformed email",
			mutate:     func(u *user.User) { u.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "display name is not a bare address",
			mutate:     func(u *user.User) { u.Email = "Olena <olena@example.com>" },
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			mutate:     func(u *user.User) { u.Password = "short" },
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			u := validUser()
			tt.mutate(&u)

			err := u.Validate()
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "want *domain.ValidationError, got %v", err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			for _, f := range tt.wantFields {
				assert.Contains(t, verr.Fields, f)
			}
			assert.Len(t, verr.Fields, len(tt.wantFields))
		})
	}
}

func TestPatch_ValidateAndApply(t *testing.T) {
	t.Parallel()

	t.Run("blank first name is rejected", func(t *testing.T) {
		t.Parallel()
		p := user.Patch{FirstName: strPtr("  ")}
		assert.ErrorIs(t, p.Validate(), domain.ErrValidation)
	})

	t.Run("only provided fields change", func(t *testing.T) {
		t.Parallel()
		u := validUser()
		p := user.Patch{LastName: strPtr("Shevchenko")}
		require.NoError(t, p.Validate())

		p.Apply(&u)
		assert.Equal(t, "Olena", u.FirstName)
		assert.Equal(t, "Shevchenko", u.LastName)
	})
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, user.RoleUser.IsValid())
	assert.True(t, user.RoleCooperationAdmin.IsValid())
	assert.False(t, user.Role("root").IsValid())
	assert.False(t, user.Role("").IsValid())
}
