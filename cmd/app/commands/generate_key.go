package commands

import (
	"context"
	"fmt"
	"log/slog"

	vaultUseCase "github.com/AnakAmira/amira-vault/internal/vault/usecase"
)

// RunGenerateKey creates a new encryption key in the key store under the given
// identifier. Generating under an existing identifier replaces the stored key,
// making data encrypted with the previous key unrecoverable.
//
// Requirements: database must be migrated and KMS_KEY_URI must be set.
func RunGenerateKey(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	logger *slog.Logger,
	identifier string,
	algorithmStr string,
	requireUserPresence bool,
) error {
	logger.Info("generating new key",
		slog.String("identifier", identifier),
		slog.String("algorithm", algorithmStr),
	)

	algorithm, err := parseAlgorithm(algorithmStr)
	if err != nil {
		return err
	}

	key, err := useCase.GenerateKey(ctx, identifier, algorithm, requireUserPresence)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	logger.Info("key generated successfully",
		slog.String("id", key.ID.String()),
		slog.String("identifier", key.Identifier),
		slog.String("algorithm", string(key.Algorithm)),
		slog.Bool("require_user_presence", key.RequireUserPresence),
	)

	return nil
}

// RunDeleteKey removes the key stored under the given identifier.
// Deleting an absent key is not an error.
func RunDeleteKey(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	logger *slog.Logger,
	identifier string,
) error {
	if err := useCase.DeleteKey(ctx, identifier); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	logger.Info("key deleted", slog.String("identifier", identifier))
	return nil
}
