package domain

import (
	"github.com/AnakAmira/amira-vault/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for cryptographic failures. All errors are mapped to
// appropriate HTTP status codes by the error handling layer.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305)
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates the cryptographic key size is invalid.
	//
	// All symmetric keys must be exactly 32 bytes (256 bits) for both
	// AES-256-GCM and ChaCha20-Poly1305.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrEncryptionFailed indicates an encryption operation failed.
	//
	// This covers nonce generation failures, cipher initialization failures,
	// and the fail-closed path for password-based encryption with an empty
	// password.
	ErrEncryptionFailed = errors.Wrap(errors.ErrInvalidInput, "encryption failed")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key or password used
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Invalid nonce provided
	//   - Corrupted encrypted data
	//
	// For security reasons, the specific cause is not disclosed to prevent
	// information leakage that could aid attackers.
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrInvalidEncryptedData indicates an EncryptedData value is malformed
	// (wrong nonce size, wrong tag size, or truncated ciphertext).
	ErrInvalidEncryptedData = errors.Wrap(errors.ErrInvalidInput, "invalid encrypted data")
)
