package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlainVerifier(t *testing.T) {
	v := PlainVerifier{}

	assert.True(t, v.Verify("password123", "password123"))
	assert.False(t, v.Verify("password123", "wrong"))
	assert.False(t, v.Verify("", ""))
}

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	v := BcryptVerifier{}
	assert.True(t, v.Verify(string(hash), "password123"))
	assert.False(t, v.Verify(string(hash), "wrong"))
}
