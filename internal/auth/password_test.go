package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *PasswordHasher {
	return NewPasswordHasherWithCost(bcrypt.MinCost)
}

func TestHashVerifyRoundTrip(t *testing.T) {
	h := newTestHasher()

	hash, err := h.Hash("correct-horse-battery-staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Verify(hash, "correct-horse-battery-staple"))
	assert.False(t, h.Verify(hash, "wrong-password"))
}

func TestHashProducesDistinctSalts(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashRejectsOverlongPassword(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash(strings.Repeat("a", 73))
	require.Error(t, err)

	_, err = h.Hash(strings.Repeat("a", 72))
	require.NoError(t, err)
}

func TestVerifyGarbageHash(t *testing.T) {
	h := newTestHasher()

	assert.False(t, h.Verify("not-a-bcrypt-hash", "password"))
}
