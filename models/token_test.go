package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_ReadsExpiryFromJWT(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	token := NewToken(TokenResponse{AccessToken: " " + signed + "\n", RefreshToken: " r1 "})

	assert.Equal(t, signed, token.AccessToken)
	assert.Equal(t, "r1", token.RefreshToken)
	assert.True(t, exp.Equal(token.ExpiresAt), "got %v", token.ExpiresAt)
	assert.NotContains(t, token.String(), signed)
}

func TestNewToken_OpaqueAccessToken(t *testing.T) {
	token := NewToken(TokenResponse{AccessToken: "new123"})
	assert.False(t, token.IsZero())
	assert.True(t, token.ExpiresAt.IsZero())
}

func TestToken_StringRedactsCredentials(t *testing.T) {
	exp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token := Token{AccessToken: "secret-access", RefreshToken: "secret-refresh", ExpiresAt: exp}

	assert.Equal(t, "Token{access:***, refresh:***, expires_at:2026-03-01T12:00:00Z}", token.String())
	for _, formatted := range []string{
		fmt.Sprint(token),
		fmt.Sprintf("%v %+v %#v %s", token, token, token, token),
		fmt.Sprintf("%v", &token),
	} {
		assert.NotContains(t, formatted, "secret-access")
		assert.NotContains(t, formatted, "secret-refresh")
	}

	assert.Equal(t, "Token{access:none, refresh:none, expires_at:unknown}", Token{}.String())
}

func TestToken_IsZero(t *testing.T) {
	assert.True(t, Token{}.IsZero())
	assert.True(t, Token{RefreshToken: "r1"}.IsZero())
	assert.False(t, Token{AccessToken: "a"}.IsZero())
}

func TestRefreshToken_Usable(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	assert.True(t, RefreshToken{ExpiresAt: now.Add(time.Hour)}.Usable(now))
	assert.False(t, RefreshToken{ExpiresAt: now.Add(-time.Second)}.Usable(now))
	assert.False(t, RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}.Usable(now))
}

func TestTrainingSession_Active(t *testing.T) {
	ended := time.Now()
	assert.True(t, TrainingSession{}.Active())
	assert.False(t, TrainingSession{EndedAt: &ended}.Active())
}

func TestUser_IsCoach(t *testing.T) {
	assert.True(t, User{Role: RoleCoach}.IsCoach())
	assert.False(t, User{Role: RoleAthlete}.IsCoach())
}
