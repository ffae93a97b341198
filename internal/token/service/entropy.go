package service

import (
	"crypto/rand"

	apperrors "github.com/allisson/go-credential/internal/errors"
)

// osEntropySource implements EntropySource using the operating system CSPRNG.
type osEntropySource struct{}

// NewEntropySource creates an EntropySource backed by crypto/rand.
func NewEntropySource() EntropySource {
	return osEntropySource{}
}

// Fill overwrites buf entirely with random bytes from the operating system CSPRNG.
// Returns the underlying error unretried if the random source fails.
func (osEntropySource) Fill(buf []byte) error {
	if _, err := rand.Read(buf); err != nil {
		return apperrors.Wrap(err, "failed to read entropy")
	}
	return nil
}
