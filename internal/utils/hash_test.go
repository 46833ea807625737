package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashToken("refresh-1"), HashToken("refresh-1"))
}

func TestHashToken_DifferentInputs(t *testing.T) {
	assert.NotEqual(t, HashToken("refresh-1"), HashToken("refresh-2"))
}

func TestHashToken_KnownVector(t *testing.T) {
	// sha256("") is a well-known constant
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashToken(""))
}

func TestHashToken_DoesNotContainInput(t *testing.T) {
	h := HashToken("plain-secret")
	assert.Len(t, h, 64)
	assert.NotContains(t, h, "plain-secret")
}
