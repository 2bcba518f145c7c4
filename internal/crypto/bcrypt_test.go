package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) PasswordHasher {
	t.Helper()
	h, err := NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestBcryptHasher_Hash(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash("pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "pw123")

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	h := newTestHasher(t)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	h := newTestHasher(t)

	_, err := h.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestBcryptHasher_Compare(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Hash("pw123")
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, "pw123"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare(hash, ""), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare("not-a-bcrypt-hash", "pw123"), ErrPasswordMismatch)
}

// TestBcryptHasher_CompareEmptyHash verifies that an empty hash never
// matches, not even the internal dummy password.
func TestBcryptHasher_CompareEmptyHash(t *testing.T) {
	h := newTestHasher(t)

	assert.ErrorIs(t, h.Compare("", "pw123"), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Compare("", dummyPassword), ErrPasswordMismatch)
}

func TestNewBcryptHasher_InvalidCost(t *testing.T) {
	_, err := NewBcryptHasher(bcrypt.MaxCost + 1)
	assert.Error(t, err)
}
