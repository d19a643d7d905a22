package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	maker := NewJWTMaker("test_secret", time.Hour)

	token, err := maker.GenerateToken("john@example.com", "1700000000000")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "1700000000000", claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseToken_WrongKey(t *testing.T) {
	maker := NewJWTMaker("test_secret", time.Hour)
	other := NewJWTMaker("other_secret", time.Hour)

	token, err := maker.GenerateToken("john@example.com", "1700000000000")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	maker := NewJWTMaker("test_secret", -time.Minute)

	token, err := maker.GenerateToken("john@example.com", "1700000000000")
	require.NoError(t, err)

	_, err = maker.ParseToken(token)
	require.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	maker := NewJWTMaker("test_secret", time.Hour)

	_, err := maker.ParseToken("not.a.token")
	require.Error(t, err)
}
