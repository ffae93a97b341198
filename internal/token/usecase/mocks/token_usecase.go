package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// GenerateRandomBytes mocks the GenerateRandomBytes method of TokenUseCase.
func (m *MockTokenUseCase) GenerateRandomBytes(ctx context.Context, length int) (string, error) {
	args := m.Called(ctx, length)
	return args.String(0), args.Error(1)
}

// GenerateSecureToken mocks the GenerateSecureToken method of TokenUseCase.
func (m *MockTokenUseCase) GenerateSecureToken(ctx context.Context, length int) (string, error) {
	args := m.Called(ctx, length)
	return args.String(0), args.Error(1)
}

// GenerateToken mocks the GenerateToken method of TokenUseCase.
func (m *MockTokenUseCase) GenerateToken(
	ctx context.Context,
	format tokenDomain.Format,
	length int,
) (string, error) {
	args := m.Called(ctx, format, length)
	return args.String(0), args.Error(1)
}
