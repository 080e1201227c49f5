package domain

import (
	"bytes"
	"crypto/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
)

func randomBytes(t *testing.T, size int) []byte {
	t.Helper()
	b := make([]byte, size)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestExportContainer(t *testing.T) {
	salt := randomBytes(t, cryptoDomain.SaltSize)
	nonce := randomBytes(t, cryptoDomain.NonceSize)
	authTag := randomBytes(t, cryptoDomain.TagSize)
	ciphertext := []byte("outer-ciphertext")

	t.Run("round-trips through binary form", func(t *testing.T) {
		container, err := NewExportContainer(salt, nonce, authTag, ciphertext)
		require.NoError(t, err)
		assert.Equal(t, FormatVersion, container.Version)

		data, err := container.MarshalBinary()
		require.NoError(t, err)

		parsed, err := ParseExportContainer(data)
		require.NoError(t, err)
		assert.Equal(t, container, parsed)
	})

	t.Run("sealed appends auth tag to ciphertext", func(t *testing.T) {
		container, err := NewExportContainer(salt, nonce, authTag, ciphertext)
		require.NoError(t, err)

		sealed := container.Sealed()
		assert.Equal(t, ciphertext, sealed[:len(ciphertext)])
		assert.Equal(t, authTag, sealed[len(ciphertext):])
	})

	t.Run("accepts empty ciphertext", func(t *testing.T) {
		container, err := NewExportContainer(salt, nonce, authTag, nil)
		require.NoError(t, err)

		data, err := container.MarshalBinary()
		require.NoError(t, err)

		parsed, err := ParseExportContainer(data)
		require.NoError(t, err)
		assert.Empty(t, parsed.Ciphertext)
	})

	t.Run("rejects wrong salt size", func(t *testing.T) {
		_, err := NewExportContainer(salt[:8], nonce, authTag, ciphertext)
		assert.ErrorIs(t, err, ErrExportFailed)
	})

	t.Run("rejects wrong nonce size", func(t *testing.T) {
		_, err := NewExportContainer(salt, nonce[:4], authTag, ciphertext)
		assert.ErrorIs(t, err, ErrExportFailed)
	})

	t.Run("rejects wrong auth tag size", func(t *testing.T) {
		_, err := NewExportContainer(salt, nonce, authTag[:8], ciphertext)
		assert.ErrorIs(t, err, ErrExportFailed)
	})
}

func TestParseExportContainer(t *testing.T) {
	salt := randomBytes(t, cryptoDomain.SaltSize)
	nonce := randomBytes(t, cryptoDomain.NonceSize)
	authTag := randomBytes(t, cryptoDomain.TagSize)

	t.Run("rejects truncated container", func(t *testing.T) {
		_, err := ParseExportContainer([]byte{FormatVersion, 0x01, 0x02})
		assert.ErrorIs(t, err, ErrImportFailed)
	})

	t.Run("rejects unknown version", func(t *testing.T) {
		container, err := NewExportContainer(salt, nonce, authTag, []byte("data"))
		require.NoError(t, err)
		data, err := container.MarshalBinary()
		require.NoError(t, err)
		data[0] = 0xFF

		_, err = ParseExportContainer(data)
		assert.ErrorIs(t, err, ErrImportFailed)
	})

	t.Run("copies input buffer", func(t *testing.T) {
		container, err := NewExportContainer(salt, nonce, authTag, []byte("data"))
		require.NoError(t, err)
		data, err := container.MarshalBinary()
		require.NoError(t, err)

		parsed, err := ParseExportContainer(data)
		require.NoError(t, err)
		for i := range data {
			data[i] = 0
		}
		assert.Equal(t, salt, parsed.Salt)
		assert.Equal(t, nonce, parsed.Nonce)
		assert.Equal(t, authTag, parsed.AuthTag)
		assert.True(t, bytes.Equal([]byte("data"), parsed.Ciphertext))
	})
}

func TestInnerPayload(t *testing.T) {
	encrypted := cryptoDomain.EncryptedData{
		Ciphertext: []byte("inner-ciphertext"),
		Nonce:      randomBytes(t, cryptoDomain.NonceSize),
		AuthTag:    randomBytes(t, cryptoDomain.TagSize),
	}

	t.Run("round-trips identifier and encrypted data", func(t *testing.T) {
		payload, err := EncodeInnerPayload("journal-key", encrypted)
		require.NoError(t, err)

		keyIdentifier, parsed, err := DecodeInnerPayload(payload)
		require.NoError(t, err)
		assert.Equal(t, "journal-key", keyIdentifier)
		assert.Equal(t, encrypted, parsed)
	})

	t.Run("round-trips empty ciphertext", func(t *testing.T) {
		empty := cryptoDomain.EncryptedData{
			Ciphertext: []byte{},
			Nonce:      encrypted.Nonce,
			AuthTag:    encrypted.AuthTag,
		}
		payload, err := EncodeInnerPayload("journal-key", empty)
		require.NoError(t, err)

		keyIdentifier, parsed, err := DecodeInnerPayload(payload)
		require.NoError(t, err)
		assert.Equal(t, "journal-key", keyIdentifier)
		assert.Empty(t, parsed.Ciphertext)
	})

	t.Run("rejects empty identifier on encode", func(t *testing.T) {
		_, err := EncodeInnerPayload("", encrypted)
		assert.ErrorIs(t, err, ErrExportFailed)
	})

	t.Run("rejects oversized identifier on encode", func(t *testing.T) {
		_, err := EncodeInnerPayload(strings.Repeat("a", 0x10000), encrypted)
		assert.ErrorIs(t, err, ErrExportFailed)
	})

	t.Run("rejects invalid encrypted data on encode", func(t *testing.T) {
		_, err := EncodeInnerPayload("journal-key", cryptoDomain.EncryptedData{})
		assert.ErrorIs(t, err, ErrExportFailed)
	})

	t.Run("rejects truncated payload on decode", func(t *testing.T) {
		_, _, err := DecodeInnerPayload([]byte{0x00, 0x01})
		assert.ErrorIs(t, err, ErrImportFailed)
	})

	t.Run("rejects zero-length identifier on decode", func(t *testing.T) {
		payload, err := EncodeInnerPayload("x", encrypted)
		require.NoError(t, err)
		payload[0] = 0
		payload[1] = 0

		_, _, err = DecodeInnerPayload(payload)
		assert.ErrorIs(t, err, ErrImportFailed)
	})

	t.Run("rejects identifier length past payload end", func(t *testing.T) {
		payload, err := EncodeInnerPayload("x", encrypted)
		require.NoError(t, err)
		payload[0] = 0xFF
		payload[1] = 0xFF

		_, _, err = DecodeInnerPayload(payload)
		assert.ErrorIs(t, err, ErrImportFailed)
	})
}
