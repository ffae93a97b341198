package service

import (
	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// NewFormatGenerator creates a new token generator based on the specified format.
// Entropy is only consumed by generators that read random bytes directly.
func NewFormatGenerator(format tokenDomain.Format, entropy EntropySource) (FormatGenerator, error) {
	switch format {
	case tokenDomain.FormatHex:
		return NewHexGenerator(entropy), nil
	case tokenDomain.FormatBase64URL:
		return NewBase64URLGenerator(entropy), nil
	case tokenDomain.FormatUUID:
		return NewUUIDGenerator(), nil
	default:
		return nil, tokenDomain.ErrInvalidFormat
	}
}
