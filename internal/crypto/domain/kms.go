package domain

import "context"

// KMSKeeper abstracts a KMS-backed wrapping key used to protect key material
// at rest. *secrets.Keeper from gocloud.dev implements this interface.
type KMSKeeper interface {
	// Encrypt wraps plaintext key material with the KMS key.
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)

	// Decrypt unwraps key material previously wrapped with Encrypt.
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)

	// Close releases resources held by the keeper.
	Close() error
}
