package app

import (
	"context"
	"fmt"

	keystoreRepository "github.com/AnakAmira/amira-vault/internal/keystore/repository"
	vaultUseCase "github.com/AnakAmira/amira-vault/internal/vault/usecase"
)

// initKeyProvider creates the key provider backed by the SQLite key store.
// Key material is wrapped with the configured KMS keeper before storage.
func (c *Container) initKeyProvider(ctx context.Context) (vaultUseCase.KeyProvider, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for key provider: %w", err)
	}

	keeper, err := c.Keeper(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get keeper for key provider: %w", err)
	}

	return keystoreRepository.NewSQLiteKeyRepository(db, keeper), nil
}

// initVaultUseCase creates the vault use case with all its dependencies.
// The use case is wrapped with a metrics decorator when metrics are enabled.
func (c *Container) initVaultUseCase(ctx context.Context) (vaultUseCase.VaultUseCase, error) {
	keyProvider, err := c.KeyProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get key provider for vault use case: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction manager for vault use case: %w", err)
	}

	useCase := vaultUseCase.NewVaultUseCase(
		txManager,
		keyProvider,
		c.AEADManager(),
		c.PasswordCipher(),
		c.IntegrityVerifier(),
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for vault use case: %w", err)
	}

	return vaultUseCase.NewVaultUseCaseWithMetrics(useCase, businessMetrics), nil
}
