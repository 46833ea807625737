package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex-encoded SHA-256 digest of an opaque token.
//
// Refresh tokens are never kept in plaintext on the server: the repository is
// keyed by this digest, so a leaked repository snapshot cannot be replayed.
//
// Example usage:
//
//	key := utils.HashToken(refreshToken)
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
