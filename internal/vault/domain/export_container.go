package domain

import (
	"encoding/binary"
	"fmt"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
)

// ExportContainer is the portable binary envelope for exported encrypted data.
//
// The outer layout is fixed-width so it can be parsed without delimiters:
//
//	[1 byte version][16 bytes salt][12 bytes nonce][16 bytes auth tag][N bytes ciphertext]
//
// The ciphertext is the inner payload encrypted with a password-derived key.
// The decrypted inner payload carries the original key identifier and the
// still-encrypted data:
//
//	[2 bytes identifier length (big-endian)][identifier][12 bytes nonce][16 bytes auth tag][M bytes ciphertext]
//
// Fields:
//   - Version: Container format version (currently 1)
//   - Salt: PBKDF2 salt for the password-derived outer key
//   - Nonce: Nonce used for the outer encryption layer
//   - AuthTag: Authentication tag of the outer encryption layer
//   - Ciphertext: Outer ciphertext (the sealed inner payload, tag excluded)
type ExportContainer struct {
	Version    byte
	Salt       []byte
	Nonce      []byte
	AuthTag    []byte
	Ciphertext []byte
}

// NewExportContainer builds a container from the outer encryption outputs.
//
// Parameters:
//   - salt: PBKDF2 salt (must be 16 bytes)
//   - nonce: Outer encryption nonce (must be 12 bytes)
//   - authTag: Outer authentication tag (must be 16 bytes)
//   - ciphertext: Outer ciphertext without the tag (can be empty)
//
// Returns:
//   - ExportContainer instance if the component sizes are valid
//   - ErrExportFailed if any component has the wrong size
func NewExportContainer(salt, nonce, authTag, ciphertext []byte) (ExportContainer, error) {
	if len(salt) != cryptoDomain.SaltSize {
		return ExportContainer{}, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrExportFailed, cryptoDomain.SaltSize, len(salt))
	}
	if len(nonce) != cryptoDomain.NonceSize {
		return ExportContainer{}, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrExportFailed, cryptoDomain.NonceSize, len(nonce))
	}
	if len(authTag) != cryptoDomain.TagSize {
		return ExportContainer{}, fmt.Errorf("%w: auth tag must be %d bytes, got %d", ErrExportFailed, cryptoDomain.TagSize, len(authTag))
	}
	return ExportContainer{
		Version:    FormatVersion,
		Salt:       salt,
		Nonce:      nonce,
		AuthTag:    authTag,
		Ciphertext: ciphertext,
	}, nil
}

// ParseExportContainer parses the binary container format.
//
// Returns:
//   - ExportContainer instance if parsing succeeds
//   - ErrImportFailed if the data is truncated or carries an unknown version
func ParseExportContainer(data []byte) (ExportContainer, error) {
	if len(data) < headerSize {
		return ExportContainer{}, fmt.Errorf("%w: container must be at least %d bytes, got %d", ErrImportFailed, headerSize, len(data))
	}
	if data[0] != FormatVersion {
		return ExportContainer{}, fmt.Errorf("%w: unsupported format version %d", ErrImportFailed, data[0])
	}

	offset := 1
	salt := data[offset : offset+cryptoDomain.SaltSize]
	offset += cryptoDomain.SaltSize
	nonce := data[offset : offset+cryptoDomain.NonceSize]
	offset += cryptoDomain.NonceSize
	authTag := data[offset : offset+cryptoDomain.TagSize]
	offset += cryptoDomain.TagSize

	container := ExportContainer{
		Version:    data[0],
		Salt:       make([]byte, cryptoDomain.SaltSize),
		Nonce:      make([]byte, cryptoDomain.NonceSize),
		AuthTag:    make([]byte, cryptoDomain.TagSize),
		Ciphertext: make([]byte, len(data)-headerSize),
	}
	copy(container.Salt, salt)
	copy(container.Nonce, nonce)
	copy(container.AuthTag, authTag)
	copy(container.Ciphertext, data[offset:])
	return container, nil
}

// MarshalBinary serializes the container to its binary representation.
//
// This method provides round-trip serialization with ParseExportContainer.
func (ec ExportContainer) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, headerSize+len(ec.Ciphertext))
	out = append(out, ec.Version)
	out = append(out, ec.Salt...)
	out = append(out, ec.Nonce...)
	out = append(out, ec.AuthTag...)
	out = append(out, ec.Ciphertext...)
	return out, nil
}

// Sealed returns the outer ciphertext with the auth tag appended, the form
// expected by the AEAD open operation.
func (ec ExportContainer) Sealed() []byte {
	sealed := make([]byte, 0, len(ec.Ciphertext)+len(ec.AuthTag))
	sealed = append(sealed, ec.Ciphertext...)
	sealed = append(sealed, ec.AuthTag...)
	return sealed
}

// EncodeInnerPayload serializes the key identifier and encrypted data into
// the inner payload format.
//
// Returns:
//   - Serialized inner payload if the identifier fits the length prefix
//   - ErrExportFailed if the identifier is empty or too long
func EncodeInnerPayload(keyIdentifier string, data cryptoDomain.EncryptedData) ([]byte, error) {
	if keyIdentifier == "" {
		return nil, fmt.Errorf("%w: key identifier cannot be empty", ErrExportFailed)
	}
	if len(keyIdentifier) > 0xFFFF {
		return nil, fmt.Errorf("%w: key identifier exceeds %d bytes", ErrExportFailed, 0xFFFF)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	out := make([]byte, 0, identifierLenSize+len(keyIdentifier)+cryptoDomain.NonceSize+cryptoDomain.TagSize+len(data.Ciphertext))
	out = binary.BigEndian.AppendUint16(out, uint16(len(keyIdentifier)))
	out = append(out, keyIdentifier...)
	out = append(out, data.Nonce...)
	out = append(out, data.AuthTag...)
	out = append(out, data.Ciphertext...)
	return out, nil
}

// DecodeInnerPayload parses the inner payload back into the key identifier
// and encrypted data.
//
// Returns:
//   - Key identifier and EncryptedData if parsing succeeds
//   - ErrImportFailed if the payload is truncated or the identifier is empty
func DecodeInnerPayload(payload []byte) (string, cryptoDomain.EncryptedData, error) {
	if len(payload) < innerHeaderSize {
		return "", cryptoDomain.EncryptedData{}, fmt.Errorf("%w: inner payload must be at least %d bytes, got %d", ErrImportFailed, innerHeaderSize, len(payload))
	}

	identifierLen := int(binary.BigEndian.Uint16(payload[:identifierLenSize]))
	if identifierLen == 0 {
		return "", cryptoDomain.EncryptedData{}, fmt.Errorf("%w: key identifier cannot be empty", ErrImportFailed)
	}
	if len(payload) < innerHeaderSize+identifierLen {
		return "", cryptoDomain.EncryptedData{}, fmt.Errorf("%w: inner payload truncated", ErrImportFailed)
	}

	offset := identifierLenSize
	keyIdentifier := string(payload[offset : offset+identifierLen])
	offset += identifierLen

	nonce := make([]byte, cryptoDomain.NonceSize)
	copy(nonce, payload[offset:offset+cryptoDomain.NonceSize])
	offset += cryptoDomain.NonceSize

	authTag := make([]byte, cryptoDomain.TagSize)
	copy(authTag, payload[offset:offset+cryptoDomain.TagSize])
	offset += cryptoDomain.TagSize

	ciphertext := make([]byte, len(payload)-offset)
	copy(ciphertext, payload[offset:])

	return keyIdentifier, cryptoDomain.EncryptedData{
		Ciphertext: ciphertext,
		Nonce:      nonce,
		AuthTag:    authTag,
	}, nil
}
