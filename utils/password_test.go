package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("abcd123!")
	require.NoError(t, err)
	assert.NotEqual(t, "abcd123!", hash)

	ok, err := VerifyPassword(hash, "abcd123!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong-password")
	require.NoError(t, err)
	assert.False(t, ok)
}
