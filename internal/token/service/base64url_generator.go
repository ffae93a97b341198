package service

import (
	"encoding/base64"
	"errors"

	"github.com/jellydator/validation"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
	appValidation "github.com/allisson/go-credential/internal/validation"
)

type base64URLGenerator struct {
	entropy EntropySource
}

// NewBase64URLGenerator creates a new base64url token generator. Generates URL-safe
// base64 tokens from cryptographically secure random bytes.
func NewBase64URLGenerator(entropy EntropySource) FormatGenerator {
	return &base64URLGenerator{entropy: entropy}
}

// Generate creates a token from length random bytes, encoded as URL-safe base64.
// The length is validated before any entropy is consumed. Returns an error if
// length is less than 1.
func (g *base64URLGenerator) Generate(length int) (string, error) {
	if length < 1 {
		return "", tokenDomain.ErrInvalidTokenLength
	}

	buf := make([]byte, length)
	if err := g.entropy.Fill(buf); err != nil {
		return "", err
	}
	defer tokenDomain.Zero(buf)

	return base64.URLEncoding.EncodeToString(buf), nil
}

// Validate checks if the token is a non-empty URL-safe base64 string.
func (g *base64URLGenerator) Validate(token string) error {
	if len(token) == 0 {
		return errors.New("token cannot be empty")
	}
	return validation.Validate(token, appValidation.Base64URL)
}
