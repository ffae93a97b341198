// Package mocks provides mock implementations for credential use case testing.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockCredentialService is a mock implementation of service.CredentialService.
type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialService) VerifyPassword(password string, hashedPassword string) (bool, error) {
	args := m.Called(password, hashedPassword)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialService) HashCost(hashedPassword string) (int, error) {
	args := m.Called(hashedPassword)
	return args.Int(0), args.Error(1)
}

func (m *MockCredentialService) NeedsRehash(hashedPassword string) (bool, error) {
	args := m.Called(hashedPassword)
	return args.Bool(0), args.Error(1)
}
