package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/go-credential/internal/errors"
)

func TestErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{
			name:        "ErrGenerateRandomBytes",
			err:         ErrGenerateRandomBytes,
			expectedMsg: "failed to generate random bytes",
		},
		{
			name:        "ErrGenerateSecureToken",
			err:         ErrGenerateSecureToken,
			expectedMsg: "failed to generate secure token",
		},
		{
			name:        "ErrGenerateToken",
			err:         ErrGenerateToken,
			expectedMsg: "failed to generate token",
		},
		{
			name:        "ErrInvalidFormat",
			err:         ErrInvalidFormat,
			expectedMsg: "invalid token format",
		},
		{
			name:        "ErrInvalidTokenLength",
			err:         ErrInvalidTokenLength,
			expectedMsg: "invalid token length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.expectedMsg)
		})
	}
}

func TestErrors_Types(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedType error
	}{
		{
			name:         "ErrGenerateRandomBytes_IsInternal",
			err:          ErrGenerateRandomBytes,
			expectedType: apperrors.ErrInternal,
		},
		{
			name:         "ErrGenerateSecureToken_IsInternal",
			err:          ErrGenerateSecureToken,
			expectedType: apperrors.ErrInternal,
		},
		{
			name:         "ErrGenerateToken_IsInternal",
			err:          ErrGenerateToken,
			expectedType: apperrors.ErrInternal,
		},
		{
			name:         "ErrInvalidFormat_IsInvalidInput",
			err:          ErrInvalidFormat,
			expectedType: apperrors.ErrInvalidInput,
		},
		{
			name:         "ErrInvalidTokenLength_IsInvalidInput",
			err:          ErrInvalidTokenLength,
			expectedType: apperrors.ErrInvalidInput,
		},
		{
			name:         "ErrInvalidFormat_IsInternal",
			err:          ErrInvalidFormat,
			expectedType: apperrors.ErrInternal,
		},
		{
			name:         "ErrInvalidTokenLength_IsInternal",
			err:          ErrInvalidTokenLength,
			expectedType: apperrors.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, apperrors.Is(tt.err, tt.expectedType),
				"expected %v to be of type %v", tt.err, tt.expectedType)
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	// Verify that all errors are distinct
	errors := []error{
		ErrGenerateRandomBytes,
		ErrGenerateSecureToken,
		ErrGenerateToken,
		ErrInvalidFormat,
		ErrInvalidTokenLength,
	}

	// Check each error against all others
	for i := 0; i < len(errors); i++ {
		for j := i + 1; j < len(errors); j++ {
			assert.NotEqual(t, errors[i].Error(), errors[j].Error(),
				"errors at index %d and %d have the same message", i, j)
		}
	}
}
