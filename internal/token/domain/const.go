// Package domain defines core domain models for secure token generation.
// Supports hex, base64url, and UUID token formats backed by the operating system CSPRNG.
package domain

import (
	"errors"
)

// Format defines the token output format.
type Format string

const (
	FormatHex       Format = "hex"
	FormatBase64URL Format = "base64url"
	FormatUUID      Format = "uuid"
)

// DefaultByteLength is the number of random bytes used when no explicit length is
// requested. 32 bytes (256 bits) encodes to a 64-character hex token.
const DefaultByteLength = 32

// Validate checks if the format is valid.
func (f Format) Validate() error {
	switch f {
	case FormatHex, FormatBase64URL, FormatUUID:
		return nil
	default:
		return errors.New("invalid token format")
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}
