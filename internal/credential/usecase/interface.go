// Package usecase defines business logic interfaces for credential hashing operations.
package usecase

import (
	"context"
)

// CredentialUseCase defines business logic operations for password hashing and
// verification. Inputs are validated before any hashing work starts, and failures
// are surfaced as classified errors with fixed messages. The underlying cause is
// logged internally and never included in the returned error.
//
// All operations are stateless and safe for concurrent use. Hashing and verification
// are CPU-intensive and may run for a noticeable time at higher costs; no internal
// timeouts or retries are applied.
type CredentialUseCase interface {
	// HashPassword hashes a plain text password using the active algorithm with a
	// fresh random salt. The returned encoding embeds the algorithm, cost, and salt.
	//
	// Security Note: The plain password must never be logged or stored by the caller.
	HashPassword(ctx context.Context, password string) (string, error)

	// VerifyPassword verifies a plain text password against a stored hash using a
	// constant-time comparison. Returns false with a nil error on mismatch. Both
	// arguments must be non-empty; a malformed or unsupported hash is an error,
	// not a mismatch.
	VerifyPassword(ctx context.Context, password string, hashedPassword string) (bool, error)

	// HashCost extracts the cost parameter embedded in a stored hash. Useful for
	// verifying which deployment mode produced a hash.
	HashCost(ctx context.Context, hashedPassword string) (int, error)

	// NeedsRehash reports whether a stored hash should be regenerated because its
	// algorithm or embedded cost no longer matches the current configuration.
	NeedsRehash(ctx context.Context, hashedPassword string) (bool, error)
}
