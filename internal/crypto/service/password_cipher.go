package service

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
)

// PasswordCipherService implements PasswordCipher using PBKDF2-HMAC-SHA256
// key derivation followed by AEAD encryption.
//
// The derivation parameters (SHA-256, 10,000 iterations, 16-byte salt,
// 32-byte derived key) are fixed constants shared with the mobile clients;
// an export produced on any platform decrypts on any other. The derived key
// exists only for the duration of a call and is zeroed before returning.
//
// Password strength policy (minimum length, character classes) is enforced by
// the calling layer. This service only fails closed on an empty password.
type PasswordCipherService struct {
	aeadManager AEADManager
	alg         cryptoDomain.Algorithm
}

// NewPasswordCipher creates a PasswordCipherService that encrypts with the
// given AEAD algorithm.
func NewPasswordCipher(aeadManager AEADManager, alg cryptoDomain.Algorithm) *PasswordCipherService {
	return &PasswordCipherService{
		aeadManager: aeadManager,
		alg:         alg,
	}
}

// deriveKey runs PBKDF2-HMAC-SHA256 over (password, salt) with the fixed
// iteration count. Callers must zero the returned key after use.
func (p *PasswordCipherService) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key(
		[]byte(password),
		salt,
		cryptoDomain.PBKDF2Iterations,
		cryptoDomain.KeySize,
		sha256.New,
	)
}

// EncryptWithPassword derives a one-time key from the password and a fresh
// 16-byte random salt, then AEAD-encrypts the data.
//
// Returns the sealed ciphertext (tag appended), the nonce, and the salt. The
// salt must be persisted alongside the ciphertext since it is required for
// decryption. Fails with ErrEncryptionFailed on an empty password.
func (p *PasswordCipherService) EncryptWithPassword(
	data []byte,
	password string,
) (ciphertext, nonce, salt []byte, err error) {
	if password == "" {
		return nil, nil, nil, cryptoDomain.ErrEncryptionFailed
	}

	salt = make([]byte, cryptoDomain.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key := p.deriveKey(password, salt)
	defer cryptoDomain.Zero(key)

	aead, err := p.aeadManager.CreateCipher(key, p.alg)
	if err != nil {
		return nil, nil, nil, err
	}

	ciphertext, nonce, err = aead.Encrypt(data, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to encrypt with password: %w", err)
	}

	return ciphertext, nonce, salt, nil
}

// DecryptWithPassword re-derives the key from (password, salt) and decrypts.
//
// Any authentication failure is reported as ErrDecryptionFailed with no
// further detail: a wrong password and corrupted data are deliberately
// indistinguishable to prevent password-guessing oracles.
func (p *PasswordCipherService) DecryptWithPassword(
	ciphertext, nonce, salt []byte,
	password string,
) ([]byte, error) {
	if password == "" || len(salt) != cryptoDomain.SaltSize {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	key := p.deriveKey(password, salt)
	defer cryptoDomain.Zero(key)

	aead, err := p.aeadManager.CreateCipher(key, p.alg)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}
