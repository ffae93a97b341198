// Package service provides secure token generation backed by the operating system CSPRNG.
// Supports hex, base64url, and UUID token formats.
package service

import (
	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// EntropySource defines the interface for reading cryptographically secure random bytes.
// Implementations must fill the buffer completely or return an error. No retries are
// performed on failure.
type EntropySource interface {
	// Fill overwrites buf entirely with random bytes.
	Fill(buf []byte) error
}

// FormatGenerator defines the interface for format-specific token generation.
type FormatGenerator interface {
	Generate(length int) (string, error)
	Validate(token string) error
}

// TokenService defines operations for secure random token generation.
// Implementations must consume entropy only after the requested length has been
// validated, so an invalid request never touches the random source.
type TokenService interface {
	// GenerateRandomBytes creates length cryptographically secure random bytes and
	// returns them as a lowercase hex string of exactly 2*length characters.
	// The length must be at least 1.
	GenerateRandomBytes(length int) (string, error)

	// GenerateSecureToken creates a hex-encoded secure token from length random bytes.
	// A length of zero selects the configured default (32 bytes, a 64-character token).
	GenerateSecureToken(length int) (string, error)

	// GenerateToken creates a token in the given format from length random bytes.
	// A length of zero selects the configured default. The UUID format ignores length.
	GenerateToken(format tokenDomain.Format, length int) (string, error)
}
