package commands

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunEncryptFile_RoundTrip(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)

	_, err := useCase.GenerateKey(ctx, "attachments", "aes-gcm", false)
	require.NoError(t, err)

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "photo.jpg")
	encryptedPath := filepath.Join(dir, "photo.jpg.enc")
	decryptedPath := filepath.Join(dir, "photo-restored.jpg")

	content := []byte("journal attachment bytes")
	require.NoError(t, os.WriteFile(sourcePath, content, 0o600))

	io, buf := newTestIO()
	err = RunEncryptFile(ctx, useCase, io, sourcePath, encryptedPath, "attachments")
	require.NoError(t, err)

	output := buf.String()
	require.Contains(t, output, "encrypted: "+encryptedPath)

	nonceRe := regexp.MustCompile(`nonce: (\S+)`)
	matches := nonceRe.FindStringSubmatch(output)
	require.Len(t, matches, 2)

	err = RunDecryptFile(ctx, useCase, newTestLogger(), encryptedPath, decryptedPath, "attachments", matches[1])
	require.NoError(t, err)

	restored, err := os.ReadFile(decryptedPath)
	require.NoError(t, err)
	require.Equal(t, content, restored)
}

func TestRunEncryptFile_UnknownKey(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(sourcePath, []byte("note"), 0o600))

	io, _ := newTestIO()
	err := RunEncryptFile(ctx, useCase, io, sourcePath, filepath.Join(dir, "note.enc"), "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to encrypt file")
}

func TestRunDecryptFile_BadNonce(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)

	_, err := useCase.GenerateKey(ctx, "attachments", "aes-gcm", false)
	require.NoError(t, err)

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "note.txt")
	encryptedPath := filepath.Join(dir, "note.enc")
	require.NoError(t, os.WriteFile(sourcePath, []byte("note"), 0o600))

	io, _ := newTestIO()
	require.NoError(t, RunEncryptFile(ctx, useCase, io, sourcePath, encryptedPath, "attachments"))

	err = RunDecryptFile(ctx, useCase, newTestLogger(), encryptedPath, filepath.Join(dir, "out.txt"), "attachments", "not-base64!")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decrypt file")
}
