package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunGenerateKey(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)
	logger := newTestLogger()

	t.Run("success", func(t *testing.T) {
		err := RunGenerateKey(ctx, useCase, logger, "journal-entries", "aes-gcm", false)
		require.NoError(t, err)

		// Key is usable for encryption
		_, err = useCase.EncryptData(ctx, []byte("entry"), "journal-entries")
		require.NoError(t, err)
	})

	t.Run("invalid-algorithm", func(t *testing.T) {
		err := RunGenerateKey(ctx, useCase, logger, "journal-entries", "des", false)
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid algorithm")
	})

	t.Run("empty-identifier", func(t *testing.T) {
		err := RunGenerateKey(ctx, useCase, logger, "", "aes-gcm", false)
		require.Error(t, err)
	})
}

func TestRunDeleteKey(t *testing.T) {
	ctx := context.Background()
	useCase := newTestUseCase(t)
	logger := newTestLogger()

	require.NoError(t, RunGenerateKey(ctx, useCase, logger, "journal-entries", "aes-gcm", false))
	require.NoError(t, RunDeleteKey(ctx, useCase, logger, "journal-entries"))

	// Key is no longer usable
	_, err := useCase.EncryptData(ctx, []byte("entry"), "journal-entries")
	require.Error(t, err)

	// Deleting an absent key is not an error
	require.NoError(t, RunDeleteKey(ctx, useCase, logger, "journal-entries"))
}
