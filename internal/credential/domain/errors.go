package domain

import (
	"github.com/allisson/go-credential/internal/errors"
)

var (
	// ErrHashPassword indicates password hashing failed.
	ErrHashPassword = errors.Wrap(errors.ErrInternal, "failed to hash password")

	// ErrVerifyPassword indicates password verification failed.
	ErrVerifyPassword = errors.Wrap(errors.ErrInternal, "failed to verify password")

	// ErrInspectHash indicates reading parameters from a stored hash failed.
	ErrInspectHash = errors.Wrap(errors.ErrInternal, "failed to inspect password hash")

	// ErrInvalidAlgorithm indicates an unsupported hashing algorithm was provided.
	ErrInvalidAlgorithm = errors.Wrap(errors.ErrInvalidInput, "invalid hashing algorithm")

	// ErrInvalidHashCost indicates the configured hash cost is outside the supported range.
	ErrInvalidHashCost = errors.Wrap(errors.ErrInvalidInput, "invalid hash cost")

	// ErrUnknownHashFormat indicates the stored hash has no recognizable algorithm prefix.
	ErrUnknownHashFormat = errors.Wrap(errors.ErrInvalidInput, "unknown password hash format")
)
