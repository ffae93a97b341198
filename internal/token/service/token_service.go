package service

import (
	apperrors "github.com/allisson/go-credential/internal/errors"
	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// tokenService implements TokenService using an injected entropy source.
type tokenService struct {
	entropy           EntropySource
	defaultByteLength int
}

// NewTokenService creates a new TokenService with the given entropy source.
// A defaultByteLength below 1 falls back to the domain default of 32 bytes.
func NewTokenService(entropy EntropySource, defaultByteLength int) TokenService {
	if defaultByteLength < 1 {
		defaultByteLength = tokenDomain.DefaultByteLength
	}
	return &tokenService{
		entropy:           entropy,
		defaultByteLength: defaultByteLength,
	}
}

// GenerateRandomBytes creates length cryptographically secure random bytes and returns
// them as a lowercase hex string of exactly 2*length characters. The length is validated
// before any entropy is consumed.
func (s *tokenService) GenerateRandomBytes(length int) (string, error) {
	generator := NewHexGenerator(s.entropy)

	token, err := generator.Generate(length)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate random bytes")
	}

	return token, nil
}

// GenerateSecureToken creates a hex-encoded secure token from length random bytes.
// A length of zero selects the configured default, producing a 64-character token
// for the standard 32-byte default.
func (s *tokenService) GenerateSecureToken(length int) (string, error) {
	if length == 0 {
		length = s.defaultByteLength
	}

	token, err := s.GenerateRandomBytes(length)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate secure token")
	}

	return token, nil
}

// GenerateToken creates a token in the given format from length random bytes.
// A length of zero selects the configured default. The UUID format ignores length.
func (s *tokenService) GenerateToken(format tokenDomain.Format, length int) (string, error) {
	if length == 0 {
		length = s.defaultByteLength
	}

	generator, err := NewFormatGenerator(format, s.entropy)
	if err != nil {
		return "", err
	}

	token, err := generator.Generate(length)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate token")
	}

	return token, nil
}
