package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	vaultUseCase "github.com/AnakAmira/amira-vault/internal/vault/usecase"
)

// RunExport wraps an encrypted file produced by encrypt-file in a
// password-protected portable container and writes it to destPath.
// The container embeds the key identifier and the file nonce, so import
// only needs the container and the password.
func RunExport(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	io IOTuple,
	sourcePath string,
	destPath string,
	keyIdentifier string,
	nonceStr string,
	password string,
) error {
	sealed, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read encrypted file: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(nonceStr)
	if err != nil {
		return fmt.Errorf("failed to decode nonce: %w", err)
	}

	data, err := cryptoDomain.NewEncryptedData(sealed, nonce)
	if err != nil {
		return fmt.Errorf("invalid encrypted file: %w", err)
	}

	container, err := useCase.Export(ctx, data, keyIdentifier, password)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if err := os.WriteFile(destPath, container, 0o600); err != nil {
		return fmt.Errorf("failed to write export container: %w", err)
	}

	fmt.Fprintf(io.Writer, "exported: %s\n", destPath)

	return nil
}

// RunImport unwraps a password-protected export container, writes the inner
// sealed ciphertext to destPath, and prints the key identifier and nonce
// needed to decrypt it.
func RunImport(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	io IOTuple,
	sourcePath string,
	destPath string,
	password string,
) error {
	container, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read export container: %w", err)
	}

	data, keyIdentifier, err := useCase.Import(ctx, container, password)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	if err := os.WriteFile(destPath, data.Sealed(), 0o600); err != nil {
		return fmt.Errorf("failed to write encrypted file: %w", err)
	}

	fmt.Fprintf(io.Writer, "imported: %s\n", destPath)
	fmt.Fprintf(io.Writer, "key: %s\n", keyIdentifier)
	fmt.Fprintf(io.Writer, "nonce: %s\n", base64.StdEncoding.EncodeToString(data.Nonce))

	return nil
}
