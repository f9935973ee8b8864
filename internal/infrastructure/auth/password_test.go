package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("motdepasse123")
	require.NoError(t, err)
	assert.NotEqual(t, "motdepasse123", hash)

	assert.NoError(t, h.Compare(hash, "motdepasse123"))
	assert.ErrorIs(t, h.Compare(hash, "mauvais"), ErrPasswordMismatch)
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	h := NewPasswordHasher(0)
	assert.Equal(t, PasswordCost, h.Cost())

	hash, err := h.Hash("motdepasse123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

func TestPasswordHasher_CompareMalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	err := h.Compare("not-a-hash", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestPasswordHasher_CompareDummy(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	assert.NotPanics(t, func() { h.CompareDummy("anything") })
}

func TestHashPasswordAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("motdepasse123")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "motdepasse123"))
	assert.ErrorIs(t, CheckPassword(hash, "autre-mot-de-passe"), ErrPasswordMismatch)
}
