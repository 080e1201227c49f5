package commands

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)

	_, err := useCase.GenerateKey(ctx, "journal-entries", "aes-gcm", false)
	require.NoError(t, err)

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "entry.json")
	encryptedPath := filepath.Join(dir, "entry.enc")
	containerPath := filepath.Join(dir, "entry.vault")
	importedPath := filepath.Join(dir, "entry-imported.enc")
	restoredPath := filepath.Join(dir, "entry-restored.json")

	content := []byte(`{"mood":"calm","text":"slept well"}`)
	require.NoError(t, os.WriteFile(sourcePath, content, 0o600))

	// Encrypt the file and capture the nonce
	encIO, encBuf := newTestIO()
	require.NoError(t, RunEncryptFile(ctx, useCase, encIO, sourcePath, encryptedPath, "journal-entries"))

	nonceRe := regexp.MustCompile(`nonce: (\S+)`)
	nonce := nonceRe.FindStringSubmatch(encBuf.String())
	require.Len(t, nonce, 2)

	// Export the encrypted file to a portable container
	expIO, expBuf := newTestIO()
	err = RunExport(ctx, useCase, expIO, encryptedPath, containerPath, "journal-entries", nonce[1], "migration-password")
	require.NoError(t, err)
	require.Contains(t, expBuf.String(), "exported: "+containerPath)

	// Import the container back
	impIO, impBuf := newTestIO()
	err = RunImport(ctx, useCase, impIO, containerPath, importedPath, "migration-password")
	require.NoError(t, err)

	output := impBuf.String()
	require.Contains(t, output, "key: journal-entries")

	importedNonce := nonceRe.FindStringSubmatch(output)
	require.Len(t, importedNonce, 2)
	require.Equal(t, nonce[1], importedNonce[1])

	// Decrypt the imported file and verify the original content
	err = RunDecryptFile(ctx, useCase, newTestLogger(), importedPath, restoredPath, "journal-entries", importedNonce[1])
	require.NoError(t, err)

	restored, err := os.ReadFile(restoredPath)
	require.NoError(t, err)
	require.Equal(t, content, restored)
}

func TestRunImport_WrongPassword(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)

	_, err := useCase.GenerateKey(ctx, "journal-entries", "aes-gcm", false)
	require.NoError(t, err)

	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "entry.json")
	encryptedPath := filepath.Join(dir, "entry.enc")
	containerPath := filepath.Join(dir, "entry.vault")
	require.NoError(t, os.WriteFile(sourcePath, []byte("entry"), 0o600))

	encIO, encBuf := newTestIO()
	require.NoError(t, RunEncryptFile(ctx, useCase, encIO, sourcePath, encryptedPath, "journal-entries"))

	nonce := regexp.MustCompile(`nonce: (\S+)`).FindStringSubmatch(encBuf.String())
	require.Len(t, nonce, 2)

	expIO, _ := newTestIO()
	require.NoError(t, RunExport(ctx, useCase, expIO, encryptedPath, containerPath, "journal-entries", nonce[1], "correct-password"))

	impIO, _ := newTestIO()
	err = RunImport(ctx, useCase, impIO, containerPath, filepath.Join(dir, "out.enc"), "wrong-password")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to import")
}

func TestRunExport_MissingSource(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)

	io, _ := newTestIO()
	err := RunExport(ctx, useCase, io, "/no/such/file", "/tmp/out.vault", "key", "AAAAAAAAAAAAAAAA", "password")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read encrypted file")
}
