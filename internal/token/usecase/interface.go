// Package usecase defines business logic interfaces for secure token generation.
package usecase

import (
	"context"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// TokenUseCase defines business logic operations for generating secure random tokens.
// All operations validate their inputs before consuming entropy, and failures are
// surfaced as classified errors with fixed messages. The underlying cause is logged
// internally and never included in the returned error.
type TokenUseCase interface {
	// GenerateRandomBytes creates length cryptographically secure random bytes and
	// returns them as a lowercase hex string of exactly 2*length characters.
	// The length must be a positive integer.
	GenerateRandomBytes(ctx context.Context, length int) (string, error)

	// GenerateSecureToken creates a hex-encoded secure token from length random bytes.
	// A length of zero selects the configured default of 32 bytes, producing a
	// 64-character token suitable for session identifiers and API keys.
	//
	// Security Note: The returned token must be transmitted securely and never
	// logged or stored in plain text by the caller.
	GenerateSecureToken(ctx context.Context, length int) (string, error)

	// GenerateToken creates a token in the given format (hex, base64url, or uuid)
	// from length random bytes. A length of zero selects the configured default.
	// The UUID format ignores length.
	GenerateToken(ctx context.Context, format tokenDomain.Format, length int) (string, error)
}
