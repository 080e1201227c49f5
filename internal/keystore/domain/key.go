// Package domain defines the key store domain model.
//
// A Key is a 256-bit symmetric key bound to a caller-chosen string
// identifier. Key material never leaves the store boundary except as the
// Material field populated for the duration of a cryptographic operation;
// it is never serialized, logged, or exposed through the API.
package domain

import (
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
)

// Key represents a symmetric encryption key held by the key store.
//
// Identifiers are unique within the store; storing a key under an existing
// identifier replaces it, which makes all ciphertexts produced under the old
// key undecryptable. Callers must not regenerate a key whose ciphertexts need
// to survive.
type Key struct {
	ID                  uuid.UUID              // Surrogate id (UUIDv7)
	Identifier          string                 // Caller-chosen stable identifier
	Algorithm           cryptoDomain.Algorithm // AEAD algorithm bound to this key
	Material            []byte                 // Plaintext key (populated transiently, never persisted)
	WrappedKey          []byte                 // KMS-wrapped key material as stored at rest
	RequireUserPresence bool                   // Biometric/passcode gate flag, enforced by the platform store
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// MaxIdentifierLength is the maximum allowed length for key identifiers.
// Aligns with the database schema constraint and the export container's
// 2-byte length prefix.
const MaxIdentifierLength = 255

// ValidateIdentifier checks that a key identifier is non-empty and within the
// allowed length.
func ValidateIdentifier(identifier string) error {
	if identifier == "" || len(identifier) > MaxIdentifierLength {
		return ErrInvalidIdentifier
	}
	return nil
}
