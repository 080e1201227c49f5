package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/AnakAmira/amira-vault/internal/errors"
)

// tokenService implements TokenService using Argon2id for token hashing.
type tokenService struct {
	hasher *pwdhash.PasswordHasher
}

// GenerateToken creates a new cryptographically secure 32-byte random token.
// The token is base64 URL-encoded for easy transmission and storage.
func (t *tokenService) GenerateToken() (plainToken string, hashedToken string, error error) {
	// Generate 32 random bytes (256 bits)
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	// Encode to base64 for text representation
	plainToken = base64.URLEncoding.EncodeToString(randomBytes)

	// Hash the token
	hashedToken, err := t.HashToken(plainToken)
	if err != nil {
		return "", "", err
	}

	return plainToken, hashedToken, nil
}

// HashToken hashes a plain text token using Argon2id.
func (t *tokenService) HashToken(plainToken string) (hashedToken string, error error) {
	hashedToken, err := t.hasher.Hash([]byte(plainToken))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash token")
	}
	return hashedToken, nil
}

// CompareToken performs a constant-time comparison between a plain token and its hash.
func (t *tokenService) CompareToken(plainToken string, hashedToken string) bool {
	ok, err := t.hasher.Verify([]byte(plainToken), hashedToken)
	if err != nil {
		return false
	}
	return ok
}

// NewTokenService creates a new TokenService instance using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewTokenService() TokenService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &tokenService{
		hasher: hasher,
	}
}
