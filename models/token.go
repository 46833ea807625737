package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenResponse is the body returned by the login and refresh endpoints.
type TokenResponse struct {
	// AccessToken is the bearer credential attached to authenticated requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is an optional opaque credential used to obtain a new
	// access token. Servers relying on cookies may omit it.
	RefreshToken string `json:"refresh_token,omitempty"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// RefreshRequest is the body sent to the refresh endpoint when a refresh
// token is known.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Token is the client-side view of the current credentials. AccessToken is
// replaced wholesale on every refresh; an empty AccessToken means no session.
type Token struct {
	AccessToken  string
	RefreshToken string

	// ExpiresAt is taken from the access token "exp" claim when the token is a
	// JWT. It is informational only: expiry is detected by the server's 401.
	ExpiresAt time.Time
}

// NewToken builds a [Token] from a [TokenResponse], trimming whitespace and
// reading the expiry claim without verifying the signature.
func NewToken(resp TokenResponse) Token {
	t := Token{
		AccessToken:  strings.TrimSpace(resp.AccessToken),
		RefreshToken: strings.TrimSpace(resp.RefreshToken),
	}
	t.ExpiresAt = accessTokenExpiry(t.AccessToken)

	return t
}

// IsZero reports whether the token carries no access token.
func (t Token) IsZero() bool {
	return t.AccessToken == ""
}

// String implements [fmt.Stringer] with both credentials redacted, so a
// Token can be logged or formatted with %v safely.
func (t Token) String() string {
	expires := "unknown"
	if !t.ExpiresAt.IsZero() {
		expires = t.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("Token{access:%s, refresh:%s, expires_at:%s}",
		redact(t.AccessToken), redact(t.RefreshToken), expires)
}

// GoString implements [fmt.GoStringer] so that %#v is redacted as well.
func (t Token) GoString() string {
	return t.String()
}

func redact(secret string) string {
	if secret == "" {
		return "none"
	}
	return "***"
}

func accessTokenExpiry(accessToken string) time.Time {
	if accessToken == "" {
		return time.Time{}
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}

// RefreshToken is the server-side record of an issued refresh token. Only
// the sha256 hash of the opaque token is kept.
type RefreshToken struct {
	TokenHash string
	UserID    int64
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Usable reports whether the token is neither revoked nor expired at now.
func (t RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
