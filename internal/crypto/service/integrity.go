package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"io"
	"os"

	apperrors "github.com/AnakAmira/amira-vault/internal/errors"
)

// IntegrityVerifierService implements IntegrityVerifier using SHA-256 digests.
type IntegrityVerifierService struct{}

// NewIntegrityVerifier creates a new IntegrityVerifierService.
func NewIntegrityVerifier() *IntegrityVerifierService {
	return &IntegrityVerifierService{}
}

// ChecksumFile computes the hex-encoded SHA-256 digest of the file content.
// The file is streamed, not loaded into memory.
func (v *IntegrityVerifierService) ChecksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to open file for checksum")
	}
	defer f.Close() //nolint:errcheck // read-only file

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", apperrors.Wrap(err, "failed to read file for checksum")
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyFile compares the file's SHA-256 digest against a hex-encoded
// expected checksum.
//
// The comparison result is a value, not an error: a mismatch, a malformed hex
// string, or a checksum of the wrong length all return false with a nil error.
// Only failures to read the file produce an error. The digest comparison is
// constant-time.
func (v *IntegrityVerifierService) VerifyFile(path string, expectedChecksum string) (bool, error) {
	actual, err := v.ChecksumFile(path)
	if err != nil {
		return false, err
	}

	expected, err := hex.DecodeString(expectedChecksum)
	if err != nil || len(expected) != sha256.Size {
		return false, nil
	}

	actualBytes, err := hex.DecodeString(actual)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(actualBytes, expected) == 1, nil
}
