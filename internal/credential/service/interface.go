// Package service provides password hashing services for credential management.
// Implements bcrypt and Argon2id hashing with deployment-aware cost selection.
package service

// Hasher defines operations for a single password hashing algorithm.
// Implementations must generate a fresh random salt for every hash and embed the
// algorithm, cost parameters, and salt in the returned encoding so hashes remain
// verifiable without external state.
type Hasher interface {
	// Hash hashes a plain text password with a fresh random salt. The cost
	// parameters are resolved from the deployment environment on every call.
	Hash(password string) (string, error)

	// Verify performs a constant-time comparison between a plain text password and
	// a hashed password. Returns false with a nil error on mismatch; an error is
	// returned only when the hash cannot be processed.
	Verify(password string, hashedPassword string) (bool, error)

	// Cost extracts the cost parameter embedded in a hashed password.
	Cost(hashedPassword string) (int, error)
}

// CredentialService defines operations for password hashing and verification across
// the supported algorithms. New hashes use the active algorithm; stored hashes of any
// supported algorithm are verified transparently via their self-describing prefix.
type CredentialService interface {
	// HashPassword hashes a password using the active algorithm.
	HashPassword(password string) (string, error)

	// VerifyPassword verifies a password against a stored hash of any supported
	// algorithm. Returns false with a nil error on mismatch.
	VerifyPassword(password string, hashedPassword string) (bool, error)

	// HashCost extracts the cost parameter embedded in a stored hash.
	HashCost(hashedPassword string) (int, error)

	// NeedsRehash reports whether a stored hash should be regenerated because its
	// algorithm or embedded cost no longer matches the current configuration.
	NeedsRehash(hashedPassword string) (bool, error)
}
