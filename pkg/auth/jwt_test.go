package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.CreateAccessToken(42, "facility_owner", "owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.ParseValidate(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "facility_owner", claims.Role)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.CreateAccessToken(1, "player", "p@example.com")
	require.NoError(t, err)

	_, err = tm.ParseValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	token, err := tm.CreateAccessToken(1, "player", "p@example.com")
	require.NoError(t, err)

	_, err = other.ParseValidate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.ParseValidate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
