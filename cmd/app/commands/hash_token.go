package commands

import (
	"fmt"

	authService "github.com/AnakAmira/amira-vault/internal/auth/service"
)

// RunHashToken generates an API access token and its Argon2id hash, or hashes
// an existing token when plainToken is non-empty. The hash goes into the
// AUTH_TOKEN_HASH environment variable; the plain token is shown only once.
func RunHashToken(tokenService authService.TokenService, io IOTuple, plainToken string) error {
	var hashedToken string
	var err error

	if plainToken == "" {
		plainToken, hashedToken, err = tokenService.GenerateToken()
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}

		fmt.Fprintln(io.Writer, "# New API access token (shown only once, store it securely)")
		fmt.Fprintf(io.Writer, "TOKEN=\"%s\"\n", plainToken)
		fmt.Fprintln(io.Writer)
	} else {
		hashedToken, err = tokenService.HashToken(plainToken)
		if err != nil {
			return fmt.Errorf("failed to hash token: %w", err)
		}
	}

	fmt.Fprintln(io.Writer, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(io.Writer, "AUTH_ENABLED=\"true\"")
	fmt.Fprintf(io.Writer, "AUTH_TOKEN_HASH=\"%s\"\n", hashedToken)

	return nil
}
