package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewTokenService(t *testing.T) {
	service := NewTokenService()
	assert.NotNil(t, service)
	assert.IsType(t, &tokenService{}, service)
}

func TestTokenService_GenerateToken(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_GeneratesValidToken", func(t *testing.T) {
		plainToken, hashedToken, err := service.GenerateToken()
		require.NoError(t, err)

		// Verify plain token is not empty
		assert.NotEmpty(t, plainToken)

		// Verify plain token is valid base64
		decoded, err := base64.URLEncoding.DecodeString(plainToken)
		require.NoError(t, err)
		assert.Len(t, decoded, 32) // 32 bytes

		// Verify hashed token is not empty
		assert.NotEmpty(t, hashedToken)

		// Verify hashed token is different from plain token
		assert.NotEqual(t, plainToken, hashedToken)

		// Verify hashed token uses Argon2id (PHC format)
		assert.Contains(t, hashedToken, "$argon2id$")
	})

	t.Run("Success_GeneratesUniqueTokens", func(t *testing.T) {
		plainToken1, hashedToken1, err := service.GenerateToken()
		require.NoError(t, err)

		plainToken2, hashedToken2, err := service.GenerateToken()
		require.NoError(t, err)

		// Verify each call generates different tokens
		assert.NotEqual(t, plainToken1, plainToken2)
		assert.NotEqual(t, hashedToken1, hashedToken2)
	})

	t.Run("Success_GeneratedTokenCanBeVerified", func(t *testing.T) {
		plainToken, hashedToken, err := service.GenerateToken()
		require.NoError(t, err)

		matches := service.CompareToken(plainToken, hashedToken)
		assert.True(t, matches)
	})
}

func TestTokenService_HashToken(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_HashesTokenCorrectly", func(t *testing.T) {
		plainToken := "test-token-123"
		hashedToken, err := service.HashToken(plainToken)
		require.NoError(t, err)

		assert.NotEmpty(t, hashedToken)
		assert.NotEqual(t, plainToken, hashedToken)
		assert.Contains(t, hashedToken, "$argon2id$")
	})

	t.Run("Success_SameTokenProducesDifferentHashes", func(t *testing.T) {
		plainToken := "test-token-123"

		hashedToken1, err := service.HashToken(plainToken)
		require.NoError(t, err)

		hashedToken2, err := service.HashToken(plainToken)
		require.NoError(t, err)

		// Each hash uses a fresh random salt
		assert.NotEqual(t, hashedToken1, hashedToken2)

		// But both verify against the same token
		assert.True(t, service.CompareToken(plainToken, hashedToken1))
		assert.True(t, service.CompareToken(plainToken, hashedToken2))
	})
}

func TestTokenService_CompareToken(t *testing.T) {
	service := NewTokenService()

	t.Run("Success_MatchingToken", func(t *testing.T) {
		plainToken := "correct-token"
		hashedToken, err := service.HashToken(plainToken)
		require.NoError(t, err)

		assert.True(t, service.CompareToken(plainToken, hashedToken))
	})

	t.Run("Failure_WrongToken", func(t *testing.T) {
		hashedToken, err := service.HashToken("correct-token")
		require.NoError(t, err)

		assert.False(t, service.CompareToken("wrong-token", hashedToken))
	})

	t.Run("Failure_MalformedHash", func(t *testing.T) {
		assert.False(t, service.CompareToken("any-token", "not-a-phc-hash"))
	})

	t.Run("Failure_EmptyHash", func(t *testing.T) {
		assert.False(t, service.CompareToken("any-token", ""))
	})
}
