package domain

import (
	"github.com/AnakAmira/amira-vault/internal/errors"
)

// Key store error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for key store failures.
var (
	// ErrKeyNotFound indicates no key exists for the requested identifier.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "encryption key not found")

	// ErrKeyGenerationFailed indicates the key store rejected a key creation
	// or replacement request.
	ErrKeyGenerationFailed = errors.Wrap(errors.ErrInternal, "key generation failed")

	// ErrInvalidIdentifier indicates the key identifier is empty or too long.
	ErrInvalidIdentifier = errors.Wrap(errors.ErrInvalidInput, "invalid key identifier")
)
