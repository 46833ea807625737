package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("v1.2.0", "", "abc123")

	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}
