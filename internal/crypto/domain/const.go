package domain

// Algorithm represents the cryptographic algorithm used for encryption.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// ensuring both confidentiality and authenticity of encrypted data. Both algorithms use
// the same nonce and tag sizes, so ciphertexts produced by either fit the same container
// formats.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on mobile devices or systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// AES-GCM (Advanced Encryption Standard in Galois/Counter Mode) combines
	// AES encryption with GMAC authentication. It uses a 256-bit key and
	// provides excellent performance on hardware with AES-NI acceleration.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// ChaCha20-Poly1305 combines the ChaCha20 stream cipher with the Poly1305 MAC
	// for authentication. It's designed for high performance on platforms without
	// AES hardware acceleration and is resistant to timing attacks.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Fixed sizes shared by both algorithms. The export container format and the
// mobile clients depend on these exact values, so they are not configurable.
const (
	// KeySize is the symmetric key size in bytes (256 bits).
	KeySize = 32

	// NonceSize is the AEAD nonce size in bytes (96 bits).
	NonceSize = 12

	// TagSize is the AEAD authentication tag size in bytes (128 bits).
	TagSize = 16

	// SaltSize is the random salt size in bytes for password-based key derivation.
	SaltSize = 16

	// PBKDF2Iterations is the fixed PBKDF2-HMAC-SHA256 iteration count used for
	// password-based encryption. Changing this value breaks decryption of every
	// export produced by earlier builds and by the mobile clients.
	PBKDF2Iterations = 10_000
)

// ParseAlgorithm converts an algorithm string to an Algorithm.
// Returns ErrUnsupportedAlgorithm for unknown values.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
