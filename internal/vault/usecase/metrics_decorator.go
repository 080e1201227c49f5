package usecase

import (
	"context"
	"time"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
	"github.com/AnakAmira/amira-vault/internal/metrics"
)

// vaultUseCaseWithMetrics decorates VaultUseCase with metrics instrumentation.
type vaultUseCaseWithMetrics struct {
	next    VaultUseCase
	metrics metrics.BusinessMetrics
}

// NewVaultUseCaseWithMetrics wraps a VaultUseCase with metrics recording.
func NewVaultUseCaseWithMetrics(useCase VaultUseCase, m metrics.BusinessMetrics) VaultUseCase {
	return &vaultUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record emits the operation counter and duration for a vault operation.
func (v *vaultUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "vault", operation, status)
	v.metrics.RecordDuration(ctx, "vault", operation, time.Since(start), status)
}

// GenerateKey records metrics for key generation operations.
func (v *vaultUseCaseWithMetrics) GenerateKey(
	ctx context.Context,
	identifier string,
	alg cryptoDomain.Algorithm,
	requireUserPresence bool,
) (*keystoreDomain.Key, error) {
	start := time.Now()
	key, err := v.next.GenerateKey(ctx, identifier, alg, requireUserPresence)
	v.record(ctx, "key_generate", start, err)
	return key, err
}

// DeleteKey records metrics for key deletion operations.
func (v *vaultUseCaseWithMetrics) DeleteKey(ctx context.Context, identifier string) error {
	start := time.Now()
	err := v.next.DeleteKey(ctx, identifier)
	v.record(ctx, "key_delete", start, err)
	return err
}

// EncryptData records metrics for data encryption operations.
func (v *vaultUseCaseWithMetrics) EncryptData(
	ctx context.Context,
	data []byte,
	keyIdentifier string,
) (cryptoDomain.EncryptedData, error) {
	start := time.Now()
	encrypted, err := v.next.EncryptData(ctx, data, keyIdentifier)
	v.record(ctx, "data_encrypt", start, err)
	return encrypted, err
}

// DecryptData records metrics for data decryption operations.
func (v *vaultUseCaseWithMetrics) DecryptData(
	ctx context.Context,
	data cryptoDomain.EncryptedData,
	keyIdentifier string,
) ([]byte, error) {
	start := time.Now()
	plaintext, err := v.next.DecryptData(ctx, data, keyIdentifier)
	v.record(ctx, "data_decrypt", start, err)
	return plaintext, err
}

// EncryptFile records metrics for file encryption operations.
func (v *vaultUseCaseWithMetrics) EncryptFile(
	ctx context.Context,
	sourcePath, destPath, keyIdentifier string,
) (string, error) {
	start := time.Now()
	nonce, err := v.next.EncryptFile(ctx, sourcePath, destPath, keyIdentifier)
	v.record(ctx, "file_encrypt", start, err)
	return nonce, err
}

// DecryptFile records metrics for file decryption operations.
func (v *vaultUseCaseWithMetrics) DecryptFile(
	ctx context.Context,
	sourcePath, destPath, keyIdentifier, nonce string,
) error {
	start := time.Now()
	err := v.next.DecryptFile(ctx, sourcePath, destPath, keyIdentifier, nonce)
	v.record(ctx, "file_decrypt", start, err)
	return err
}

// Export records metrics for export operations.
func (v *vaultUseCaseWithMetrics) Export(
	ctx context.Context,
	data cryptoDomain.EncryptedData,
	keyIdentifier, password string,
) ([]byte, error) {
	start := time.Now()
	container, err := v.next.Export(ctx, data, keyIdentifier, password)
	v.record(ctx, "export", start, err)
	return container, err
}

// Import records metrics for import operations.
func (v *vaultUseCaseWithMetrics) Import(
	ctx context.Context,
	container []byte,
	password string,
) (cryptoDomain.EncryptedData, string, error) {
	start := time.Now()
	data, keyIdentifier, err := v.next.Import(ctx, container, password)
	v.record(ctx, "import", start, err)
	return data, keyIdentifier, err
}

// ChecksumFile records metrics for checksum operations.
func (v *vaultUseCaseWithMetrics) ChecksumFile(ctx context.Context, path string) (string, error) {
	start := time.Now()
	checksum, err := v.next.ChecksumFile(ctx, path)
	v.record(ctx, "file_checksum", start, err)
	return checksum, err
}

// VerifyFileIntegrity records metrics for integrity verification operations.
func (v *vaultUseCaseWithMetrics) VerifyFileIntegrity(
	ctx context.Context,
	path, expectedChecksum string,
) (bool, error) {
	start := time.Now()
	match, err := v.next.VerifyFileIntegrity(ctx, path, expectedChecksum)
	v.record(ctx, "file_verify", start, err)
	return match, err
}
