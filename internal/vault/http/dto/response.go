// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/base64"
	"fmt"
	"time"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
)

// KeyResponse represents an encryption key's metadata in API responses.
// Key material is never included.
type KeyResponse struct {
	ID                  string    `json:"id"`
	Identifier          string    `json:"identifier"`
	Algorithm           string    `json:"algorithm"`
	RequireUserPresence bool      `json:"require_user_presence"`
	CreatedAt           time.Time `json:"created_at"`
}

// MapKeyToResponse converts a domain key to an API response.
func MapKeyToResponse(key *keystoreDomain.Key) KeyResponse {
	return KeyResponse{
		ID:                  key.ID.String(),
		Identifier:          key.Identifier,
		Algorithm:           string(key.Algorithm),
		RequireUserPresence: key.RequireUserPresence,
		CreatedAt:           key.CreatedAt,
	}
}

// EncryptResponse contains the result of an encryption operation.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"` // Base64-encoded ciphertext
	Nonce      string `json:"nonce"`      // Base64-encoded nonce
	AuthTag    string `json:"auth_tag"`   // Base64-encoded authentication tag
}

// MapEncryptedDataToResponse converts domain encrypted data to an API response.
func MapEncryptedDataToResponse(data cryptoDomain.EncryptedData) EncryptResponse {
	return EncryptResponse{
		Ciphertext: base64.StdEncoding.EncodeToString(data.Ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(data.Nonce),
		AuthTag:    base64.StdEncoding.EncodeToString(data.AuthTag),
	}
}

// ParseEncryptedData converts base64-encoded request fields back to domain
// encrypted data. Fields must already be validated as base64.
func ParseEncryptedData(ciphertext, nonce, authTag string) (cryptoDomain.EncryptedData, error) {
	rawCiphertext, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return cryptoDomain.EncryptedData{}, fmt.Errorf("invalid base64 ciphertext: %w", err)
	}
	rawNonce, err := base64.StdEncoding.DecodeString(nonce)
	if err != nil {
		return cryptoDomain.EncryptedData{}, fmt.Errorf("invalid base64 nonce: %w", err)
	}
	rawAuthTag, err := base64.StdEncoding.DecodeString(authTag)
	if err != nil {
		return cryptoDomain.EncryptedData{}, fmt.Errorf("invalid base64 auth tag: %w", err)
	}

	data := cryptoDomain.EncryptedData{
		Ciphertext: rawCiphertext,
		Nonce:      rawNonce,
		AuthTag:    rawAuthTag,
	}
	if err := data.Validate(); err != nil {
		return cryptoDomain.EncryptedData{}, err
	}
	return data, nil
}

// DecryptResponse contains the result of a decryption operation.
// SECURITY: The Plaintext field contains sensitive data and should be transmitted over HTTPS.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"` // Base64-encoded plaintext
}

// MapDecryptResponse converts decrypted plaintext to an API response.
func MapDecryptResponse(plaintext []byte) DecryptResponse {
	return DecryptResponse{
		Plaintext: base64.StdEncoding.EncodeToString(plaintext),
	}
}

// EncryptFileResponse contains the result of a file encryption operation.
type EncryptFileResponse struct {
	Nonce string `json:"nonce"` // Base64-encoded nonce, required to decrypt
}

// ExportResponse contains a serialized export container.
type ExportResponse struct {
	Container string `json:"container"` // Base64-encoded export container
}

// ImportResponse contains the inner encrypted data recovered from an export
// container. The data is still encrypted with the key named by KeyIdentifier.
type ImportResponse struct {
	Ciphertext    string `json:"ciphertext"` // Base64-encoded ciphertext
	Nonce         string `json:"nonce"`      // Base64-encoded nonce
	AuthTag       string `json:"auth_tag"`   // Base64-encoded authentication tag
	KeyIdentifier string `json:"key_identifier"`
}

// MapImportResponse converts imported encrypted data to an API response.
func MapImportResponse(data cryptoDomain.EncryptedData, keyIdentifier string) ImportResponse {
	encrypted := MapEncryptedDataToResponse(data)
	return ImportResponse{
		Ciphertext:    encrypted.Ciphertext,
		Nonce:         encrypted.Nonce,
		AuthTag:       encrypted.AuthTag,
		KeyIdentifier: keyIdentifier,
	}
}

// ChecksumFileResponse contains a computed file checksum.
type ChecksumFileResponse struct {
	Checksum string `json:"checksum"` // Hex-encoded SHA-256 digest
}

// VerifyFileResponse contains the result of a file integrity check.
type VerifyFileResponse struct {
	Match bool `json:"match"`
}
