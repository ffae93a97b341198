// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"

	validation "github.com/jellydator/validation"
)

// LowercaseHex validates that a string contains only lowercase hexadecimal digits.
var LowercaseHex = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_hex_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return validation.NewError("validation_hex", "must contain only lowercase hexadecimal digits")
		}
	}
	return nil
})

// Base64URL validates that a string is valid base64 URL-encoded data.
var Base64URL = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_base64url_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	_, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return validation.NewError("validation_base64url", "must be valid base64 URL-encoded data")
	}
	return nil
})
