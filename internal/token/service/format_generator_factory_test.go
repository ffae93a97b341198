package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

func TestNewFormatGenerator(t *testing.T) {
	entropy := NewEntropySource()

	tests := []struct {
		name        string
		format      tokenDomain.Format
		expectError bool
	}{
		{
			name:        "Success_Hex",
			format:      tokenDomain.FormatHex,
			expectError: false,
		},
		{
			name:        "Success_Base64URL",
			format:      tokenDomain.FormatBase64URL,
			expectError: false,
		},
		{
			name:        "Success_UUID",
			format:      tokenDomain.FormatUUID,
			expectError: false,
		},
		{
			name:        "Error_InvalidFormat",
			format:      tokenDomain.Format("invalid"),
			expectError: true,
		},
		{
			name:        "Error_EmptyFormat",
			format:      tokenDomain.Format(""),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewFormatGenerator(tt.format, entropy)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, gen)
				assert.ErrorIs(t, err, tokenDomain.ErrInvalidFormat)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, gen)
			}
		})
	}
}

func TestNewFormatGenerator_FunctionalTest(t *testing.T) {
	entropy := NewEntropySource()

	// Test that each generator can actually generate tokens
	formats := []tokenDomain.Format{
		tokenDomain.FormatHex,
		tokenDomain.FormatBase64URL,
		tokenDomain.FormatUUID,
	}

	for _, format := range formats {
		t.Run("Generate_"+format.String(), func(t *testing.T) {
			gen, err := NewFormatGenerator(format, entropy)
			assert.NoError(t, err)
			assert.NotNil(t, gen)

			token, err := gen.Generate(16)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)

			// Validate the generated token
			err = gen.Validate(token)
			assert.NoError(t, err)
		})
	}
}
