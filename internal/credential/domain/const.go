// Package domain defines core domain models for password hashing and verification.
// Supports bcrypt and Argon2id with self-describing hash encodings.
package domain

import (
	"errors"
	"strings"
)

// Algorithm defines the password hashing algorithm.
type Algorithm string

const (
	AlgorithmBcrypt   Algorithm = "bcrypt"
	AlgorithmArgon2id Algorithm = "argon2id"
)

// Validate checks if the algorithm is valid.
func (a Algorithm) Validate() error {
	switch a {
	case AlgorithmBcrypt, AlgorithmArgon2id:
		return nil
	default:
		return errors.New("invalid hashing algorithm")
	}
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// DetectAlgorithm identifies the hashing algorithm from a hash's self-describing prefix.
// bcrypt hashes start with $2a$, $2b$, or $2y$; Argon2id hashes start with $argon2id$.
// Returns ErrUnknownHashFormat when no supported prefix matches.
func DetectAlgorithm(hashedPassword string) (Algorithm, error) {
	switch {
	case strings.HasPrefix(hashedPassword, "$argon2id$"):
		return AlgorithmArgon2id, nil
	case strings.HasPrefix(hashedPassword, "$2a$"),
		strings.HasPrefix(hashedPassword, "$2b$"),
		strings.HasPrefix(hashedPassword, "$2y$"):
		return AlgorithmBcrypt, nil
	default:
		return "", ErrUnknownHashFormat
	}
}
