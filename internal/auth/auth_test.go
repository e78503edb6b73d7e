package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MZidanFI/Bioskop-Project/internal/identity"
)

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("rahasia")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia", hash)

	assert.True(t, VerifyPassword(hash, "rahasia"))
	assert.False(t, VerifyPassword(hash, "salah"))
	assert.False(t, VerifyPassword("", "rahasia"))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	id := identity.Identity{UserID: 42, Username: "budi", Role: "admin"}
	token, err := tokens.Issue(id)
	require.NoError(t, err)

	parsed, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestTokenWrongSecret(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tokens.Issue(identity.Identity{UserID: 1, Username: "budi", Role: "user"})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokenManager("test-secret", -time.Minute)

	token, err := tokens.Issue(identity.Identity{UserID: 1, Username: "budi", Role: "user"})
	require.NoError(t, err)

	_, err = tokens.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	_, err := tokens.Parse("not-a-token")
	assert.Error(t, err)
}
