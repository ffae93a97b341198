package service

import (
	"encoding/hex"
	"errors"

	"github.com/jellydator/validation"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
	appValidation "github.com/allisson/go-credential/internal/validation"
)

type hexGenerator struct {
	entropy EntropySource
}

// NewHexGenerator creates a new hex token generator. Generates lowercase hex tokens
// from cryptographically secure random bytes.
func NewHexGenerator(entropy EntropySource) FormatGenerator {
	return &hexGenerator{entropy: entropy}
}

// Generate creates a token from length random bytes, encoded as lowercase hex.
// The output contains exactly 2*length characters. The length is validated before
// any entropy is consumed. Returns an error if length is less than 1.
func (g *hexGenerator) Generate(length int) (string, error) {
	if length < 1 {
		return "", tokenDomain.ErrInvalidTokenLength
	}

	buf := make([]byte, length)
	if err := g.entropy.Fill(buf); err != nil {
		return "", err
	}
	defer tokenDomain.Zero(buf)

	return hex.EncodeToString(buf), nil
}

// Validate checks if the token is a non-empty, even-length lowercase hex string.
func (g *hexGenerator) Validate(token string) error {
	if len(token) == 0 {
		return errors.New("token cannot be empty")
	}
	if len(token)%2 != 0 {
		return errors.New("token length must be even")
	}
	return validation.Validate(token, appValidation.LowercaseHex)
}
