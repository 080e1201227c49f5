// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"fmt"

	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	keystoreDomain "github.com/AnakAmira/amira-vault/internal/keystore/domain"
	customValidation "github.com/AnakAmira/amira-vault/internal/validation"
)

// exportPasswordRule is the minimum strength for user-chosen export passwords.
var exportPasswordRule = customValidation.PasswordStrength{MinLength: 8}

// GenerateKeyRequest contains the parameters for generating a new encryption key.
type GenerateKeyRequest struct {
	Identifier          string `json:"identifier"`
	Algorithm           string `json:"algorithm"` // "aes-gcm" or "chacha20-poly1305"
	RequireUserPresence bool   `json:"require_user_presence"`
}

// Validate checks if the generate key request is valid.
func (r *GenerateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Identifier,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, keystoreDomain.MaxIdentifierLength),
		),
		validation.Field(&r.Algorithm,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateAlgorithm),
		),
	)
}

// EncryptRequest contains the parameters for encrypting data.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"` // Base64-encoded plaintext (empty allowed)
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext,
			customValidation.Base64,
		),
	)
}

// DecryptRequest contains the parameters for decrypting data.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"` // Base64-encoded ciphertext (empty allowed)
	Nonce      string `json:"nonce"`      // Base64-encoded nonce
	AuthTag    string `json:"auth_tag"`   // Base64-encoded authentication tag
}

// Validate checks if the decrypt request is valid.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			customValidation.Base64,
		),
		validation.Field(&r.Nonce,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.AuthTag,
			validation.Required,
			customValidation.Base64,
		),
	)
}

// EncryptFileRequest contains the parameters for encrypting a local file.
type EncryptFileRequest struct {
	SourcePath    string `json:"source_path"`
	DestPath      string `json:"dest_path"`
	KeyIdentifier string `json:"key_identifier"`
}

// Validate checks if the encrypt file request is valid.
func (r *EncryptFileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.SourcePath, validation.Required, customValidation.NotBlank),
		validation.Field(&r.DestPath, validation.Required, customValidation.NotBlank),
		validation.Field(&r.KeyIdentifier, validation.Required, customValidation.NotBlank),
	)
}

// DecryptFileRequest contains the parameters for decrypting a local file.
type DecryptFileRequest struct {
	SourcePath    string `json:"source_path"`
	DestPath      string `json:"dest_path"`
	KeyIdentifier string `json:"key_identifier"`
	Nonce         string `json:"nonce"` // Base64-encoded nonce from the encrypt operation
}

// Validate checks if the decrypt file request is valid.
func (r *DecryptFileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.SourcePath, validation.Required, customValidation.NotBlank),
		validation.Field(&r.DestPath, validation.Required, customValidation.NotBlank),
		validation.Field(&r.KeyIdentifier, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Nonce, validation.Required, customValidation.Base64),
	)
}

// ExportRequest contains the parameters for building a password-protected
// export container from already-encrypted data.
type ExportRequest struct {
	Ciphertext    string `json:"ciphertext"` // Base64-encoded ciphertext (empty allowed)
	Nonce         string `json:"nonce"`      // Base64-encoded nonce
	AuthTag       string `json:"auth_tag"`   // Base64-encoded authentication tag
	KeyIdentifier string `json:"key_identifier"`
	Password      string `json:"password"`
}

// Validate checks if the export request is valid.
func (r *ExportRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext,
			customValidation.Base64,
		),
		validation.Field(&r.Nonce,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.AuthTag,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.KeyIdentifier,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, keystoreDomain.MaxIdentifierLength),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.By(exportPasswordRule.Validate),
		),
	)
}

// ImportRequest contains the parameters for unwrapping an export container.
type ImportRequest struct {
	Container string `json:"container"` // Base64-encoded export container
	Password  string `json:"password"`
}

// Validate checks if the import request is valid.
func (r *ImportRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Container,
			validation.Required,
			customValidation.Base64,
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// ChecksumFileRequest contains the parameters for computing a file checksum.
type ChecksumFileRequest struct {
	Path string `json:"path"`
}

// Validate checks if the checksum file request is valid.
func (r *ChecksumFileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Path, validation.Required, customValidation.NotBlank),
	)
}

// VerifyFileRequest contains the parameters for verifying a file checksum.
type VerifyFileRequest struct {
	Path     string `json:"path"`
	Checksum string `json:"checksum"` // Hex-encoded SHA-256 digest
}

// Validate checks if the verify file request is valid.
func (r *VerifyFileRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Path, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Checksum, validation.Required, customValidation.HexDigest),
	)
}

// validateAlgorithm validates that the algorithm is supported.
func validateAlgorithm(value interface{}) error {
	alg, ok := value.(string)
	if !ok {
		return validation.NewError("validation_algorithm_type", "must be a string")
	}

	if _, err := cryptoDomain.ParseAlgorithm(alg); err != nil {
		return fmt.Errorf("invalid algorithm: must be %q or %q", cryptoDomain.AESGCM, cryptoDomain.ChaCha20)
	}
	return nil
}
