// Package service provides the cryptographic primitives used by the vault.
// Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), password-based
// encryption via PBKDF2-HMAC-SHA256, and SHA-256 file integrity verification.
package service

import (
	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	// The ciphertext includes the authentication tag appended to the end.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// PasswordCipher defines the interface for one-shot password-based encryption,
// used for user-initiated data export independent of the key store.
type PasswordCipher interface {
	// EncryptWithPassword derives a key from the password and a fresh random
	// salt, then AEAD-encrypts the data. Returns the sealed ciphertext (tag
	// appended), the nonce, and the salt required to re-derive the key.
	EncryptWithPassword(data []byte, password string) (ciphertext, nonce, salt []byte, err error)

	// DecryptWithPassword re-derives the key from (password, salt) and
	// decrypts. Returns ErrDecryptionFailed on any tag mismatch; wrong
	// password and corrupted data are deliberately indistinguishable.
	DecryptWithPassword(ciphertext, nonce, salt []byte, password string) ([]byte, error)
}

// IntegrityVerifier defines the interface for file content integrity checks.
type IntegrityVerifier interface {
	// ChecksumFile computes the hex-encoded SHA-256 digest of the file content.
	ChecksumFile(path string) (string, error)

	// VerifyFile compares the file's SHA-256 digest against a hex-encoded
	// expected checksum. A mismatch (or malformed checksum) is reported as
	// false, not as an error; only I/O failures produce errors.
	VerifyFile(path string, expectedChecksum string) (bool, error)
}
