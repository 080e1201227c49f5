package usecase

import (
	"context"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
)

// KeyProvider defines the interface for encryption key persistence.
//
// Implementations wrap the key material at rest (platform keystore, KMS keeper
// backed SQLite) and return it unwrapped from Resolve.
type KeyProvider interface {
	Resolve(ctx context.Context, identifier string) (*keystoreDomain.Key, error)
	Store(ctx context.Context, key *keystoreDomain.Key) error
	Delete(ctx context.Context, identifier string) error
}

// VaultUseCase defines the interface for the vault encryption operations:
// key lifecycle, data and file encryption, password-protected export, and
// file integrity verification.
type VaultUseCase interface {
	// GenerateKey creates a fresh random key under the given identifier and
	// persists it through the key provider. Storing under an existing
	// identifier replaces the key.
	GenerateKey(ctx context.Context, identifier string, alg cryptoDomain.Algorithm, requireUserPresence bool) (*keystoreDomain.Key, error)

	// DeleteKey removes the key under the given identifier. Deleting an
	// absent key is not an error.
	DeleteKey(ctx context.Context, identifier string) error

	// EncryptData encrypts data with the key stored under keyIdentifier.
	EncryptData(ctx context.Context, data []byte, keyIdentifier string) (cryptoDomain.EncryptedData, error)

	// DecryptData decrypts data previously produced by EncryptData.
	//
	// Security Note: The returned plaintext is sensitive. Callers MUST zero
	// it after use by calling cryptoDomain.Zero.
	DecryptData(ctx context.Context, data cryptoDomain.EncryptedData, keyIdentifier string) ([]byte, error)

	// EncryptFile encrypts the file at sourcePath and writes the sealed
	// ciphertext to destPath atomically. Returns the base64-encoded nonce,
	// which the caller must retain to decrypt.
	EncryptFile(ctx context.Context, sourcePath, destPath, keyIdentifier string) (string, error)

	// DecryptFile reverses EncryptFile using the base64-encoded nonce.
	DecryptFile(ctx context.Context, sourcePath, destPath, keyIdentifier, nonce string) error

	// Export wraps already-encrypted data and its key identifier in a
	// password-protected portable container.
	Export(ctx context.Context, data cryptoDomain.EncryptedData, keyIdentifier, password string) ([]byte, error)

	// Import unwraps a container produced by Export, returning the inner
	// encrypted data and the identifier of the key needed to decrypt it.
	Import(ctx context.Context, container []byte, password string) (cryptoDomain.EncryptedData, string, error)

	// ChecksumFile computes the hex-encoded SHA-256 digest of a file.
	ChecksumFile(ctx context.Context, path string) (string, error)

	// VerifyFileIntegrity checks a file against an expected SHA-256 digest.
	// A mismatch is reported as false, not as an error.
	VerifyFileIntegrity(ctx context.Context, path, expectedChecksum string) (bool, error)
}
