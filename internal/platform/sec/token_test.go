// Copyright (c) 2026 Our Philly. All rights reserved.

package sec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecureToken(t *testing.T) {
	first, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, first, 64, "32 random bytes hex-encode to 64 characters")

	second, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "successive tokens must differ")
}

func TestHashToken(t *testing.T) {
	token := "1f8ac10f23c5b5bc1167bda84b833e5c057a77d2"

	digest := HashToken(token)
	assert.Len(t, digest, 64, "SHA-256 hex digest is 64 characters")
	assert.Equal(t, digest, HashToken(token), "same token, same digest")
	assert.NotEqual(t, digest, HashToken(token+"x"))
}
