package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCredentialUseCase is a mock implementation of usecase.CredentialUseCase.
type MockCredentialUseCase struct {
	mock.Mock
}

func (m *MockCredentialUseCase) HashPassword(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialUseCase) VerifyPassword(ctx context.Context, password string, hashedPassword string) (bool, error) {
	args := m.Called(ctx, password, hashedPassword)
	return args.Bool(0), args.Error(1)
}

func (m *MockCredentialUseCase) HashCost(ctx context.Context, hashedPassword string) (int, error) {
	args := m.Called(ctx, hashedPassword)
	return args.Int(0), args.Error(1)
}

func (m *MockCredentialUseCase) NeedsRehash(ctx context.Context, hashedPassword string) (bool, error) {
	args := m.Called(ctx, hashedPassword)
	return args.Bool(0), args.Error(1)
}
