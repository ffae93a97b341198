// Package mocks provides mock implementations for testing token use cases.
package mocks

import (
	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// MockTokenService is a mock implementation of TokenService for testing.
type MockTokenService struct {
	mock.Mock
}

// GenerateRandomBytes mocks the GenerateRandomBytes method of TokenService.
func (m *MockTokenService) GenerateRandomBytes(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}

// GenerateSecureToken mocks the GenerateSecureToken method of TokenService.
func (m *MockTokenService) GenerateSecureToken(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}

// GenerateToken mocks the GenerateToken method of TokenService.
func (m *MockTokenService) GenerateToken(format tokenDomain.Format, length int) (string, error) {
	args := m.Called(format, length)
	return args.String(0), args.Error(1)
}
