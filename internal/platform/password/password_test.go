package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/home-service/internal/platform/password"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := password.NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), password.ErrMismatch)
}

func TestBcrypt_TooLong(t *testing.T) {
	t.Parallel()

	_, err := password.NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestBcrypt_CompareMalformedHash(t *testing.T) {
	t.Parallel()

	err := password.NewBcrypt(0).Compare("not-a-hash", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrMismatch)
}
