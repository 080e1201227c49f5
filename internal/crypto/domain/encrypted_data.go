// Package domain defines the core cryptographic domain models for the vault.
//
// The central type is EncryptedData, the result of one authenticated encryption
// operation: ciphertext, a fresh 12-byte nonce, and a 16-byte authentication
// tag. Keys are never part of the model; they are referenced by identifier and
// resolved through the key store. Supports AESGCM and ChaCha20 algorithms with
// 256-bit keys.
package domain

// EncryptedData is the result of a single authenticated encryption operation.
//
// The three fields together are everything required to decrypt (given the
// original key material): decryption succeeds iff the same key is supplied and
// no byte of Ciphertext, Nonce, or AuthTag has been altered. Instances are
// created fresh per encryption call and are immutable by convention.
type EncryptedData struct {
	Ciphertext []byte // Encrypted payload, same length as the plaintext (no padding)
	Nonce      []byte // 12-byte nonce, unique per encryption under a given key
	AuthTag    []byte // 16-byte authentication tag binding ciphertext integrity
}

// NewEncryptedData builds an EncryptedData from a sealed AEAD output
// (ciphertext with the tag appended, as produced by cipher.AEAD.Seal) and the
// nonce used for the operation.
//
// Returns ErrInvalidEncryptedData if the sealed buffer is shorter than the tag
// or the nonce has the wrong size.
func NewEncryptedData(sealed, nonce []byte) (EncryptedData, error) {
	if len(sealed) < TagSize || len(nonce) != NonceSize {
		return EncryptedData{}, ErrInvalidEncryptedData
	}

	split := len(sealed) - TagSize
	ciphertext := make([]byte, split)
	copy(ciphertext, sealed[:split])
	authTag := make([]byte, TagSize)
	copy(authTag, sealed[split:])
	n := make([]byte, NonceSize)
	copy(n, nonce)

	return EncryptedData{
		Ciphertext: ciphertext,
		Nonce:      n,
		AuthTag:    authTag,
	}, nil
}

// Sealed returns the ciphertext with the authentication tag appended, the
// layout expected by cipher.AEAD.Open.
func (e EncryptedData) Sealed() []byte {
	sealed := make([]byte, 0, len(e.Ciphertext)+len(e.AuthTag))
	sealed = append(sealed, e.Ciphertext...)
	sealed = append(sealed, e.AuthTag...)
	return sealed
}

// Validate checks the structural invariants of the value: 12-byte nonce and
// 16-byte tag. An empty ciphertext is valid (encrypting a 0-length buffer is
// supported).
func (e EncryptedData) Validate() error {
	if len(e.Nonce) != NonceSize || len(e.AuthTag) != TagSize {
		return ErrInvalidEncryptedData
	}
	return nil
}
