package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	cryptoService "github.com/AnakAmira/amira-vault/internal/crypto/service"
	"github.com/AnakAmira/amira-vault/internal/database"
	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
	keystoreRepository "github.com/AnakAmira/amira-vault/internal/keystore/repository"
	"github.com/AnakAmira/amira-vault/internal/vault/usecase"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func newDecoratedUseCase(m *mockBusinessMetrics) usecase.VaultUseCase {
	aeadManager := cryptoService.NewAEADManager()
	next := usecase.NewVaultUseCase(
		database.NewNoopTxManager(),
		keystoreRepository.NewMemoryKeyRepository(),
		aeadManager,
		cryptoService.NewPasswordCipher(aeadManager, cryptoDomain.AESGCM),
		cryptoService.NewIntegrityVerifier(),
	)
	return usecase.NewVaultUseCaseWithMetrics(next, m)
}

func TestVaultUseCaseWithMetrics_GenerateKey(t *testing.T) {
	ctx := context.Background()

	t.Run("GenerateKey_Success", func(t *testing.T) {
		mockMetrics := &mockBusinessMetrics{}
		uc := newDecoratedUseCase(mockMetrics)

		mockMetrics.On("RecordOperation", ctx, "vault", "key_generate", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "vault", "key_generate", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		key, err := uc.GenerateKey(ctx, "journal-entries", cryptoDomain.AESGCM, false)

		assert.NoError(t, err)
		assert.NotNil(t, key)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("GenerateKey_Error", func(t *testing.T) {
		mockMetrics := &mockBusinessMetrics{}
		uc := newDecoratedUseCase(mockMetrics)

		mockMetrics.On("RecordOperation", ctx, "vault", "key_generate", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "vault", "key_generate", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := uc.GenerateKey(ctx, "", cryptoDomain.AESGCM, false)

		assert.ErrorIs(t, err, keystoreDomain.ErrInvalidIdentifier)
		mockMetrics.AssertExpectations(t)
	})
}

func TestVaultUseCaseWithMetrics_EncryptDecryptData(t *testing.T) {
	ctx := context.Background()

	t.Run("EncryptDecrypt_Success", func(t *testing.T) {
		mockMetrics := &mockBusinessMetrics{}
		uc := newDecoratedUseCase(mockMetrics)

		mockMetrics.On("RecordOperation", ctx, "vault", mock.AnythingOfType("string"), "success").Return()
		mockMetrics.On("RecordDuration", ctx, "vault", mock.AnythingOfType("string"), mock.AnythingOfType("time.Duration"), "success").
			Return()

		_, err := uc.GenerateKey(ctx, "journal-entries", cryptoDomain.AESGCM, false)
		require.NoError(t, err)

		encrypted, err := uc.EncryptData(ctx, []byte("entry"), "journal-entries")
		require.NoError(t, err)

		plaintext, err := uc.DecryptData(ctx, encrypted, "journal-entries")
		require.NoError(t, err)
		assert.Equal(t, []byte("entry"), plaintext)

		mockMetrics.AssertCalled(t, "RecordOperation", ctx, "vault", "data_encrypt", "success")
		mockMetrics.AssertCalled(t, "RecordOperation", ctx, "vault", "data_decrypt", "success")
	})

	t.Run("DecryptData_Error", func(t *testing.T) {
		mockMetrics := &mockBusinessMetrics{}
		uc := newDecoratedUseCase(mockMetrics)

		mockMetrics.On("RecordOperation", ctx, "vault", "data_decrypt", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "vault", "data_decrypt", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		_, err := uc.DecryptData(ctx, cryptoDomain.EncryptedData{}, "journal-entries")

		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidEncryptedData)
		mockMetrics.AssertExpectations(t)
	})
}
