package commands

import (
	"context"
	"fmt"
	"log/slog"

	vaultUseCase "github.com/AnakAmira/amira-vault/internal/vault/usecase"
)

// RunEncryptFile encrypts the file at sourcePath with the key stored under
// keyIdentifier and writes the sealed ciphertext to destPath. Prints the
// base64-encoded nonce, which must be retained to decrypt the file.
func RunEncryptFile(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	io IOTuple,
	sourcePath string,
	destPath string,
	keyIdentifier string,
) error {
	nonce, err := useCase.EncryptFile(ctx, sourcePath, destPath, keyIdentifier)
	if err != nil {
		return fmt.Errorf("failed to encrypt file: %w", err)
	}

	fmt.Fprintf(io.Writer, "encrypted: %s\n", destPath)
	fmt.Fprintf(io.Writer, "nonce: %s\n", nonce)
	fmt.Fprintln(io.Writer, "# Retain the nonce; it is required to decrypt the file")

	return nil
}

// RunDecryptFile decrypts a file produced by RunEncryptFile using the
// base64-encoded nonce printed at encryption time.
func RunDecryptFile(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	logger *slog.Logger,
	sourcePath string,
	destPath string,
	keyIdentifier string,
	nonce string,
) error {
	if err := useCase.DecryptFile(ctx, sourcePath, destPath, keyIdentifier, nonce); err != nil {
		return fmt.Errorf("failed to decrypt file: %w", err)
	}

	logger.Info("file decrypted",
		slog.String("source", sourcePath),
		slog.String("dest", destPath),
	)

	return nil
}
