package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_Success(t *testing.T) {
	token, exp, err := GenerateAccessToken("test-issuer", 123, time.Hour, "secret-key")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateAccessToken_Unique(t *testing.T) {
	first, _, err := GenerateAccessToken("iss", 1, time.Hour, "key")
	require.NoError(t, err)
	second, _, err := GenerateAccessToken("iss", 1, time.Hour, "key")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateAccessToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GenerateAccessToken(tt.issuer, 1, tt.duration, tt.key)
			require.Error(t, err)
		})
	}
}

func TestValidateAccessToken_Success(t *testing.T) {
	token, _, err := GenerateAccessToken("iss", 77, time.Hour, "key")
	require.NoError(t, err)

	userID, err := ValidateAccessToken(token, "key", "iss")
	require.NoError(t, err)
	assert.Equal(t, int64(77), userID)
}

func TestValidateAccessToken_WrongKey(t *testing.T) {
	token, _, err := GenerateAccessToken("iss", 77, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other-key", "iss")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrAccessTokenExpired))
}

func TestValidateAccessToken_WrongIssuer(t *testing.T) {
	token, _, err := GenerateAccessToken("iss", 77, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "key", "someone-else")
	require.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "5",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "key", "iss")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessTokenExpired)
}

func TestValidateAccessToken_NonNumericSubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "key", "iss")
	require.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "missing token", header: "Bearer", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "empty", header: "", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBearerHeader(t *testing.T) {
	assert.Equal(t, "Bearer new123", BearerHeader("new123"))
}
