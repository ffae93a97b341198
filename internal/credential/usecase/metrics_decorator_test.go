package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/go-credential/internal/credential/usecase"
	"github.com/allisson/go-credential/internal/credential/usecase/mocks"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestCredentialUseCaseWithMetrics_HashPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("HashPassword", ctx, "Password123!").Return("$2a$10$abcdefghijklmnopqrstuv", nil).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "password_hash", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "password_hash", mock.AnythingOfType("time.Duration"), "success").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		hashedPassword, err := uc.HashPassword(ctx, "Password123!")

		require.NoError(t, err)
		assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", hashedPassword)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorStatus", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("HashPassword", ctx, "Password123!").Return("", errors.New("failed to hash password")).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "password_hash", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "password_hash", mock.AnythingOfType("time.Duration"), "error").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		hashedPassword, err := uc.HashPassword(ctx, "Password123!")

		require.Error(t, err)
		assert.Empty(t, hashedPassword)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCredentialUseCaseWithMetrics_VerifyPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("VerifyPassword", ctx, "Password123!", "$2a$10$abcdefghijklmnopqrstuv").Return(true, nil).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "password_verify", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "password_verify", mock.AnythingOfType("time.Duration"), "success").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		match, err := uc.VerifyPassword(ctx, "Password123!", "$2a$10$abcdefghijklmnopqrstuv")

		require.NoError(t, err)
		assert.True(t, match)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Success_MismatchStillRecordsSuccess", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("VerifyPassword", ctx, "WrongPassword", "$2a$10$abcdefghijklmnopqrstuv").Return(false, nil).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "password_verify", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "password_verify", mock.AnythingOfType("time.Duration"), "success").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		// A mismatch is a successful verification with a negative answer
		match, err := uc.VerifyPassword(ctx, "WrongPassword", "$2a$10$abcdefghijklmnopqrstuv")

		require.NoError(t, err)
		assert.False(t, match)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorStatus", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("VerifyPassword", ctx, "Password123!", "garbage").Return(false, errors.New("failed to verify password")).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "password_verify", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "password_verify", mock.AnythingOfType("time.Duration"), "error").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		match, err := uc.VerifyPassword(ctx, "Password123!", "garbage")

		require.Error(t, err)
		assert.False(t, match)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCredentialUseCaseWithMetrics_HashCost(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("HashCost", ctx, "$2a$12$abcdefghijklmnopqrstuv").Return(12, nil).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "hash_cost", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "hash_cost", mock.AnythingOfType("time.Duration"), "success").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		cost, err := uc.HashCost(ctx, "$2a$12$abcdefghijklmnopqrstuv")

		require.NoError(t, err)
		assert.Equal(t, 12, cost)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

func TestCredentialUseCaseWithMetrics_NeedsRehash(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("NeedsRehash", ctx, "$2a$04$abcdefghijklmnopqrstuv").Return(true, nil).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "needs_rehash", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "needs_rehash", mock.AnythingOfType("time.Duration"), "success").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		needsRehash, err := uc.NeedsRehash(ctx, "$2a$04$abcdefghijklmnopqrstuv")

		require.NoError(t, err)
		assert.True(t, needsRehash)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorStatus", func(t *testing.T) {
		mockUseCase := &mocks.MockCredentialUseCase{}
		mockUseCase.On("NeedsRehash", ctx, "garbage").Return(false, errors.New("failed to inspect password hash")).Once()
		mockMetrics := &mockBusinessMetrics{}
		mockMetrics.On("RecordOperation", ctx, "credential", "needs_rehash", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "credential", "needs_rehash", mock.AnythingOfType("time.Duration"), "error").Once()
		uc := usecase.NewCredentialUseCaseWithMetrics(mockUseCase, mockMetrics)

		needsRehash, err := uc.NeedsRehash(ctx, "garbage")

		require.Error(t, err)
		assert.False(t, needsRehash)
		mockUseCase.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
