// Package service provides technical services for API token generation and validation.
//
// This package implements reusable services for access token generation, hashing,
// and verification using industry-standard cryptographic practices.
package service

// TokenService defines operations for API access token generation and validation.
// Implementations must use cryptographically secure random generation and
// industry-standard hashing algorithms (e.g., bcrypt, argon2).
type TokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (to be shared with the operator) and
	// the hashed version (to be stored in configuration).
	//
	// The plain token should be treated as sensitive data and only displayed
	// once during generation.
	GenerateToken() (plainToken string, hashedToken string, error error)

	// HashToken hashes a plain text token using a secure hashing algorithm.
	// Used when operators need to regenerate a hash for an existing token.
	HashToken(plainToken string) (hashedToken string, error error)

	// CompareToken compares a plain text token against a hashed token.
	// Returns true if the plain token matches the hash, false otherwise.
	// This is constant-time to prevent timing attacks.
	CompareToken(plainToken string, hashedToken string) bool
}
