package domain

import (
	"github.com/allisson/go-credential/internal/errors"
)

var (
	// ErrGenerateRandomBytes indicates random byte generation failed.
	ErrGenerateRandomBytes = errors.Wrap(errors.ErrInternal, "failed to generate random bytes")

	// ErrGenerateSecureToken indicates secure token generation failed.
	ErrGenerateSecureToken = errors.Wrap(errors.ErrInternal, "failed to generate secure token")

	// ErrGenerateToken indicates token generation failed.
	ErrGenerateToken = errors.Wrap(errors.ErrInternal, "failed to generate token")

	// ErrInvalidFormat indicates an unsupported token format was provided.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid token format")

	// ErrInvalidTokenLength indicates the requested token length is invalid.
	ErrInvalidTokenLength = errors.Wrap(errors.ErrInvalidInput, "invalid token length")
)
