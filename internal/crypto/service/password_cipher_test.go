package service

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
)

func newPasswordCipher() *PasswordCipherService {
	return NewPasswordCipher(NewAEADManager(), cryptoDomain.AESGCM)
}

func TestPasswordCipherService_EncryptWithPassword(t *testing.T) {
	pc := newPasswordCipher()

	t.Run("produces ciphertext, nonce, and fresh salt", func(t *testing.T) {
		ciphertext, nonce, salt, err := pc.EncryptWithPassword([]byte("journal entry"), "correct horse")
		require.NoError(t, err)

		assert.Len(t, nonce, cryptoDomain.NonceSize)
		assert.Len(t, salt, cryptoDomain.SaltSize)
		assert.Len(t, ciphertext, len("journal entry")+cryptoDomain.TagSize)
	})

	t.Run("fails closed on empty password", func(t *testing.T) {
		_, _, _, err := pc.EncryptWithPassword([]byte("data"), "")
		assert.ErrorIs(t, err, cryptoDomain.ErrEncryptionFailed)
	})

	t.Run("different salts for repeated exports with the same password", func(t *testing.T) {
		_, _, salt1, err := pc.EncryptWithPassword([]byte("data"), "pw")
		require.NoError(t, err)
		_, _, salt2, err := pc.EncryptWithPassword([]byte("data"), "pw")
		require.NoError(t, err)

		assert.NotEqual(t, salt1, salt2)
	})

	t.Run("empty data is allowed", func(t *testing.T) {
		ciphertext, nonce, salt, err := pc.EncryptWithPassword(nil, "pw")
		require.NoError(t, err)

		plaintext, err := pc.DecryptWithPassword(ciphertext, nonce, salt, "pw")
		require.NoError(t, err)
		assert.Empty(t, plaintext)
	})
}

func TestPasswordCipherService_DecryptWithPassword(t *testing.T) {
	pc := newPasswordCipher()
	data := []byte("three deep breaths before the meeting")
	password := "sturdy passphrase 9"

	ciphertext, nonce, salt, err := pc.EncryptWithPassword(data, password)
	require.NoError(t, err)

	t.Run("round-trip with the right password", func(t *testing.T) {
		plaintext, err := pc.DecryptWithPassword(ciphertext, nonce, salt, password)
		require.NoError(t, err)
		assert.Equal(t, data, plaintext)
	})

	t.Run("wrong password fails with DecryptionFailed only", func(t *testing.T) {
		_, err := pc.DecryptWithPassword(ciphertext, nonce, salt, "sturdy passphrase 8")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("tampered ciphertext fails with DecryptionFailed", func(t *testing.T) {
		mutated := make([]byte, len(ciphertext))
		copy(mutated, ciphertext)
		mutated[len(mutated)/2] ^= 0x80

		_, err := pc.DecryptWithPassword(mutated, nonce, salt, password)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("wrong salt fails with DecryptionFailed", func(t *testing.T) {
		otherSalt := make([]byte, cryptoDomain.SaltSize)
		copy(otherSalt, salt)
		otherSalt[0] ^= 0xFF

		_, err := pc.DecryptWithPassword(ciphertext, nonce, otherSalt, password)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("truncated salt fails with DecryptionFailed", func(t *testing.T) {
		_, err := pc.DecryptWithPassword(ciphertext, nonce, salt[:8], password)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("empty password fails with DecryptionFailed", func(t *testing.T) {
		_, err := pc.DecryptWithPassword(ciphertext, nonce, salt, "")
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestPasswordCipherService_DerivationIsDeterministic(t *testing.T) {
	// Same (password, salt, iterations) must always derive the same key; the
	// mobile clients rely on this for cross-platform export compatibility.
	salt := []byte("0123456789abcdef")

	k1 := pbkdf2.Key([]byte("pw"), salt, cryptoDomain.PBKDF2Iterations, cryptoDomain.KeySize, sha256.New)
	k2 := pbkdf2.Key([]byte("pw"), salt, cryptoDomain.PBKDF2Iterations, cryptoDomain.KeySize, sha256.New)

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, cryptoDomain.KeySize)
}

func TestPasswordCipherService_ChaCha20Variant(t *testing.T) {
	pc := NewPasswordCipher(NewAEADManager(), cryptoDomain.ChaCha20)

	ciphertext, nonce, salt, err := pc.EncryptWithPassword([]byte("alternate cipher"), "pw")
	require.NoError(t, err)

	plaintext, err := pc.DecryptWithPassword(ciphertext, nonce, salt, "pw")
	require.NoError(t, err)
	assert.Equal(t, []byte("alternate cipher"), plaintext)
}
