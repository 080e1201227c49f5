package domain

import (
	"github.com/AnakAmira/amira-vault/internal/errors"
)

var (
	// ErrExportFailed is returned when building an export container fails.
	ErrExportFailed = errors.Wrap(errors.ErrInternal, "export failed")

	// ErrImportFailed is returned when an export container is structurally
	// invalid: wrong version, truncated header, or a malformed inner payload.
	ErrImportFailed = errors.Wrap(errors.ErrInvalidInput, "import failed")

	// ErrFileIO is returned when reading or writing a file fails.
	ErrFileIO = errors.Wrap(errors.ErrInternal, "file i/o error")

	// ErrIntegrityMismatch is returned when a file checksum does not match
	// the expected digest.
	ErrIntegrityMismatch = errors.Wrap(errors.ErrInvalidInput, "file integrity mismatch")
)
