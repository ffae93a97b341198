// Package commands contains CLI command implementations for the application.
package commands

import (
	"fmt"
	"io"
	"os"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// parseTokenFormat converts an encoding string to tokenDomain.Format.
// Returns an error if the encoding string is invalid.
func parseTokenFormat(encoding string) (tokenDomain.Format, error) {
	switch encoding {
	case "hex":
		return tokenDomain.FormatHex, nil
	case "base64url":
		return tokenDomain.FormatBase64URL, nil
	case "uuid":
		return tokenDomain.FormatUUID, nil
	default:
		return "", fmt.Errorf(
			"invalid encoding: %s (valid options: hex, base64url, uuid)",
			encoding,
		)
	}
}
