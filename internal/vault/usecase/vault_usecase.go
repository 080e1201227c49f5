// Package usecase implements business logic orchestration for vault operations.
//
// This package provides the use case layer (application layer) for the vault
// following Clean Architecture principles. Use cases coordinate between
// services (cryptographic operations), the key provider (key persistence),
// and the filesystem, implementing business rules such as:
//
//   - Key lifecycle: random key generation bound to a caller-chosen identifier
//   - Data encryption with keys resolved by identifier at call time
//   - Atomic file encryption (temp file + rename, never a partial destination)
//   - Dual-layer password-protected export containers for cross-device transfer
//   - SHA-256 file integrity verification
//
// # Export Container
//
// Export produces a portable container with two encryption layers:
//
//	inner:  data encrypted with the stored key (as supplied by the caller)
//	outer:  inner payload + key identifier, encrypted with a password-derived key
//
// Importing only unwraps the outer layer. The inner data remains encrypted
// until the receiving device resolves the named key and calls DecryptData.
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	cryptoService "github.com/AnakAmira/amira-vault/internal/crypto/service"
	"github.com/AnakAmira/amira-vault/internal/database"
	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
	vaultDomain "github.com/AnakAmira/amira-vault/internal/vault/domain"
)

// vaultUseCase implements the VaultUseCase interface.
//
// The use case depends on abstractions (interfaces) rather than concrete
// implementations, enabling testability and flexibility in choosing different
// key storage backends.
type vaultUseCase struct {
	txManager      database.TxManager
	keyProvider    KeyProvider
	aeadManager    cryptoService.AEADManager
	passwordCipher cryptoService.PasswordCipher
	verifier       cryptoService.IntegrityVerifier
}

// cipherForKey resolves a key by identifier and builds an AEAD cipher bound
// to the key's algorithm. The returned cleanup zeroes the key material and
// must be deferred by the caller.
func (v *vaultUseCase) cipherForKey(
	ctx context.Context,
	keyIdentifier string,
) (cryptoService.AEAD, func(), error) {
	key, err := v.keyProvider.Resolve(ctx, keyIdentifier)
	if err != nil {
		return nil, nil, err
	}

	cipher, err := v.aeadManager.CreateCipher(key.Material, key.Algorithm)
	if err != nil {
		cryptoDomain.Zero(key.Material)
		return nil, nil, err
	}

	return cipher, func() { cryptoDomain.Zero(key.Material) }, nil
}

// GenerateKey creates and persists a new random encryption key.
//
// The method generates 32 bytes from crypto/rand, binds them to the given
// identifier and algorithm, and stores the key through the key provider.
// The provider is responsible for wrapping the material at rest. Storing
// under an existing identifier replaces the previous key; data encrypted
// with the replaced key becomes unrecoverable. Replacement removes the old
// key and stores the new one within a single transaction, so a failure
// mid-replacement leaves the previous key in place.
//
// The plaintext material in the returned key is zeroed before return; only
// metadata fields remain populated.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - identifier: Caller-chosen stable key identifier (e.g. "journal-entries")
//   - alg: The AEAD algorithm to bind to this key
//   - requireUserPresence: Whether the platform store should gate access
//     behind biometrics or a passcode
//
// Returns:
//   - The created Key with metadata populated and Material zeroed
//   - ErrInvalidIdentifier if the identifier is empty or too long
//   - ErrKeyGenerationFailed if random generation or persistence fails
func (v *vaultUseCase) GenerateKey(
	ctx context.Context,
	identifier string,
	alg cryptoDomain.Algorithm,
	requireUserPresence bool,
) (*keystoreDomain.Key, error) {
	if err := keystoreDomain.ValidateIdentifier(identifier); err != nil {
		return nil, err
	}
	if _, err := cryptoDomain.ParseAlgorithm(string(alg)); err != nil {
		return nil, err
	}

	material := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(material); err != nil {
		return nil, fmt.Errorf("%w: %v", keystoreDomain.ErrKeyGenerationFailed, err)
	}
	defer cryptoDomain.Zero(material)

	now := time.Now().UTC()
	key := &keystoreDomain.Key{
		ID:                  uuid.Must(uuid.NewV7()),
		Identifier:          identifier,
		Algorithm:           alg,
		Material:            material,
		RequireUserPresence: requireUserPresence,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	err := v.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := v.keyProvider.Delete(ctx, key.Identifier); err != nil {
			return err
		}
		return v.keyProvider.Store(ctx, key)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", keystoreDomain.ErrKeyGenerationFailed, err)
	}

	key.Material = nil
	return key, nil
}

// DeleteKey removes a key from the provider. Deleting an absent key succeeds.
func (v *vaultUseCase) DeleteKey(ctx context.Context, identifier string) error {
	return v.keyProvider.Delete(ctx, identifier)
}

// EncryptData encrypts data with the key stored under keyIdentifier.
//
// The key's bound algorithm selects the cipher, and a fresh random nonce is
// generated for every call. An empty input is valid and produces an
// authentication tag over the empty plaintext.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - data: The plaintext to encrypt (can be empty)
//   - keyIdentifier: The identifier of the stored key to use
//
// Returns:
//   - EncryptedData carrying ciphertext, nonce, and auth tag
//   - ErrKeyNotFound if no key exists under the identifier
//   - ErrEncryptionFailed if the cipher operation fails
func (v *vaultUseCase) EncryptData(
	ctx context.Context,
	data []byte,
	keyIdentifier string,
) (cryptoDomain.EncryptedData, error) {
	cipher, cleanup, err := v.cipherForKey(ctx, keyIdentifier)
	if err != nil {
		return cryptoDomain.EncryptedData{}, err
	}
	defer cleanup()

	sealed, nonce, err := cipher.Encrypt(data, nil)
	if err != nil {
		return cryptoDomain.EncryptedData{}, fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	return cryptoDomain.NewEncryptedData(sealed, nonce)
}

// DecryptData decrypts data previously produced by EncryptData.
//
// Decryption fails if the ciphertext, nonce, or auth tag was modified, or if
// the key under keyIdentifier is not the key the data was encrypted with.
//
// Security Note: The returned plaintext is sensitive. Callers MUST zero it
// after use by calling cryptoDomain.Zero.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - data: The encrypted data to decrypt
//   - keyIdentifier: The identifier of the stored key to use
//
// Returns:
//   - The decrypted plaintext
//   - ErrInvalidEncryptedData if the encrypted data is structurally invalid
//   - ErrKeyNotFound if no key exists under the identifier
//   - ErrDecryptionFailed on authentication failure
func (v *vaultUseCase) DecryptData(
	ctx context.Context,
	data cryptoDomain.EncryptedData,
	keyIdentifier string,
) ([]byte, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	cipher, cleanup, err := v.cipherForKey(ctx, keyIdentifier)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	plaintext, err := cipher.Decrypt(data.Sealed(), data.Nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}

// EncryptFile encrypts a file and writes the result to destPath atomically.
//
// The whole file content is read, encrypted with the stored key, and written
// to a temporary file in the destination directory which is then renamed
// over destPath. On any failure the temporary file is removed and destPath
// is left untouched. The destination holds the sealed ciphertext (auth tag
// appended); the nonce is returned out of band, base64-encoded, and must be
// retained by the caller to decrypt.
//
// Parameters:
//   - ctx: Context for cancellation; checked between I/O and cipher steps
//   - sourcePath: Path of the plaintext file to encrypt
//   - destPath: Path to write the encrypted file to
//   - keyIdentifier: The identifier of the stored key to use
//
// Returns:
//   - The base64-encoded nonce
//   - ErrFileIO if reading or writing fails
//   - ErrKeyNotFound if no key exists under the identifier
//   - ErrEncryptionFailed if the cipher operation fails
func (v *vaultUseCase) EncryptFile(
	ctx context.Context,
	sourcePath, destPath, keyIdentifier string,
) (string, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}
	defer cryptoDomain.Zero(data)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	cipher, cleanup, err := v.cipherForKey(ctx, keyIdentifier)
	if err != nil {
		return "", err
	}
	defer cleanup()

	sealed, nonce, err := cipher.Encrypt(data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	if err := v.writeFileAtomic(ctx, destPath, sealed); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(nonce), nil
}

// DecryptFile reverses EncryptFile.
//
// Parameters:
//   - ctx: Context for cancellation; checked between I/O and cipher steps
//   - sourcePath: Path of the encrypted file
//   - destPath: Path to write the decrypted file to (written atomically)
//   - keyIdentifier: The identifier of the stored key
//   - nonce: The base64-encoded nonce returned by EncryptFile
//
// Returns:
//   - ErrInvalidEncryptedData if the nonce is malformed
//   - ErrFileIO if reading or writing fails
//   - ErrKeyNotFound if no key exists under the identifier
//   - ErrDecryptionFailed if the file was modified or the key is wrong
func (v *vaultUseCase) DecryptFile(
	ctx context.Context,
	sourcePath, destPath, keyIdentifier, nonce string,
) error {
	rawNonce, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil || len(rawNonce) != cryptoDomain.NonceSize {
		return fmt.Errorf("%w: malformed nonce", cryptoDomain.ErrInvalidEncryptedData)
	}

	sealed, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	cipher, cleanup, err := v.cipherForKey(ctx, keyIdentifier)
	if err != nil {
		return err
	}
	defer cleanup()

	plaintext, err := cipher.Decrypt(sealed, rawNonce, nil)
	if err != nil {
		return cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(plaintext)

	return v.writeFileAtomic(ctx, destPath, plaintext)
}

// writeFileAtomic writes content to a temp file in the destination directory
// and renames it over path. The temp file is removed on any failure, so the
// destination is either fully written or untouched.
func (v *vaultUseCase) writeFileAtomic(ctx context.Context, path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}
	tmpName := tmp.Name()

	cleanupTemp := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if err := ctx.Err(); err != nil {
		cleanupTemp()
		return err
	}

	if _, err := tmp.Write(content); err != nil {
		cleanupTemp()
		return fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}

	return nil
}

// Export wraps encrypted data and its key identifier in a password-protected
// portable container.
//
// The already-encrypted input is serialized together with keyIdentifier into
// an inner payload, which is then encrypted a second time with a key derived
// from the password (PBKDF2-HMAC-SHA256, fresh random salt). The result is
// the binary export container format, safe to transfer between devices: an
// attacker holding the container needs the password for the outer layer and
// the stored key for the inner one.
//
// Parameters:
//   - ctx: Context for cancellation
//   - data: Encrypted data as produced by EncryptData
//   - keyIdentifier: Identifier of the key the data was encrypted with
//   - password: User-chosen export password (must not be empty)
//
// Returns:
//   - The serialized export container
//   - ErrExportFailed if the inputs are structurally invalid
//   - ErrEncryptionFailed if the password layer fails (e.g. empty password)
func (v *vaultUseCase) Export(
	ctx context.Context,
	data cryptoDomain.EncryptedData,
	keyIdentifier, password string,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, err := vaultDomain.EncodeInnerPayload(keyIdentifier, data)
	if err != nil {
		return nil, err
	}

	sealed, nonce, salt, err := v.passwordCipher.EncryptWithPassword(payload, password)
	if err != nil {
		return nil, err
	}

	outer, err := cryptoDomain.NewEncryptedData(sealed, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vaultDomain.ErrExportFailed, err)
	}

	container, err := vaultDomain.NewExportContainer(salt, outer.Nonce, outer.AuthTag, outer.Ciphertext)
	if err != nil {
		return nil, err
	}

	return container.MarshalBinary()
}

// Import unwraps a container produced by Export.
//
// Only the outer password layer is removed. The returned EncryptedData is
// still encrypted with the key named by the returned identifier; the caller
// resolves that key and calls DecryptData to recover the plaintext.
//
// Parameters:
//   - ctx: Context for cancellation
//   - container: The serialized export container
//   - password: The export password
//
// Returns:
//   - The inner encrypted data and the identifier of its key
//   - ErrImportFailed if the container or inner payload is malformed
//   - ErrDecryptionFailed if the password is wrong or the container was
//     tampered with (the two are indistinguishable)
func (v *vaultUseCase) Import(
	ctx context.Context,
	container []byte,
	password string,
) (cryptoDomain.EncryptedData, string, error) {
	if err := ctx.Err(); err != nil {
		return cryptoDomain.EncryptedData{}, "", err
	}

	parsed, err := vaultDomain.ParseExportContainer(container)
	if err != nil {
		return cryptoDomain.EncryptedData{}, "", err
	}

	payload, err := v.passwordCipher.DecryptWithPassword(parsed.Sealed(), parsed.Nonce, parsed.Salt, password)
	if err != nil {
		return cryptoDomain.EncryptedData{}, "", err
	}
	defer cryptoDomain.Zero(payload)

	keyIdentifier, data, err := vaultDomain.DecodeInnerPayload(payload)
	if err != nil {
		return cryptoDomain.EncryptedData{}, "", err
	}

	return data, keyIdentifier, nil
}

// ChecksumFile computes the hex-encoded SHA-256 digest of a file.
func (v *vaultUseCase) ChecksumFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	checksum, err := v.verifier.ChecksumFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}
	return checksum, nil
}

// VerifyFileIntegrity checks a file against an expected SHA-256 digest.
//
// A digest mismatch or a malformed expected checksum is reported as false
// with a nil error; only I/O failures produce errors.
func (v *vaultUseCase) VerifyFileIntegrity(
	ctx context.Context,
	path, expectedChecksum string,
) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	match, err := v.verifier.VerifyFile(path, expectedChecksum)
	if err != nil {
		return false, fmt.Errorf("%w: %v", vaultDomain.ErrFileIO, err)
	}
	return match, nil
}

// NewVaultUseCase creates a vault use case instance with the provided
// dependencies.
//
// Parameters:
//   - txManager: Transaction manager for the key provider's backing store
//     (database.NewNoopTxManager for the in-memory store)
//   - keyProvider: Key persistence backend (in-memory or SQLite)
//   - aeadManager: Service for AEAD cipher creation
//   - passwordCipher: Service for password-based export encryption
//   - verifier: Service for SHA-256 file integrity checks
//
// Returns:
//   - A fully initialized VaultUseCase ready for use
func NewVaultUseCase(
	txManager database.TxManager,
	keyProvider KeyProvider,
	aeadManager cryptoService.AEADManager,
	passwordCipher cryptoService.PasswordCipher,
	verifier cryptoService.IntegrityVerifier,
) VaultUseCase {
	return &vaultUseCase{
		txManager:      txManager,
		keyProvider:    keyProvider,
		aeadManager:    aeadManager,
		passwordCipher: passwordCipher,
		verifier:       verifier,
	}
}
