// Package domain defines the vault domain models: the portable export
// container format and the vault error taxonomy.
package domain

import (
	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
)

const (
	// FormatVersion is the current export container format version tag.
	FormatVersion byte = 1

	// headerSize is the fixed size of the container header:
	// version (1) + salt (16) + nonce (12) + tag (16).
	headerSize = 1 + cryptoDomain.SaltSize + cryptoDomain.NonceSize + cryptoDomain.TagSize

	// identifierLenSize is the fixed width of the key identifier length
	// prefix in the inner payload (big-endian uint16).
	identifierLenSize = 2

	// innerHeaderSize is the minimum size of a decrypted inner payload:
	// identifier length prefix (2) + nonce (12) + tag (16).
	innerHeaderSize = identifierLenSize + cryptoDomain.NonceSize + cryptoDomain.TagSize
)
