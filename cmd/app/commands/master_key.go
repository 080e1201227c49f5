package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RunCreateMasterKey generates a cryptographically secure 32-byte wrapping key
// and prints it as a base64key:// keeper URI. The key store wraps all stored key
// material with this key before writing it to disk.
//
// Output format:
//   - KMS_KEY_URI="base64key://<base64-encoded-key>"
//
// Security: the base64key:// keeper keeps the wrapping key in the environment.
// Prefer a cloud KMS keeper (gcpkms://, awskms://, azurekeyvault://, hashivault://)
// when one is available.
func RunCreateMasterKey(io IOTuple) error {
	// Generate a cryptographically secure 32-byte wrapping key
	wrappingKey := make([]byte, 32)
	if _, err := rand.Read(wrappingKey); err != nil {
		return fmt.Errorf("failed to generate wrapping key: %w", err)
	}

	encodedKey := base64.URLEncoding.EncodeToString(wrappingKey)

	fmt.Fprintln(io.Writer, "# Wrapping Key Configuration")
	fmt.Fprintln(io.Writer, "# Copy this environment variable to your .env file or secrets manager")
	fmt.Fprintln(io.Writer)
	fmt.Fprintf(io.Writer, "KMS_KEY_URI=\"base64key://%s\"\n", encodedKey)
	fmt.Fprintln(io.Writer)
	fmt.Fprintln(io.Writer, "# For production, prefer a cloud KMS keeper:")
	fmt.Fprintln(io.Writer, "# KMS_KEY_URI=\"gcpkms://projects/.../cryptoKeys/...\"")
	fmt.Fprintln(io.Writer, "# KMS_KEY_URI=\"awskms:///alias/...\"")
	fmt.Fprintln(io.Writer, "# KMS_KEY_URI=\"hashivault://keyname\"")

	// Zero out the wrapping key from memory
	for i := range wrappingKey {
		wrappingKey[i] = 0
	}

	return nil
}
