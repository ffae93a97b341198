package usecase

import (
	"context"
	"time"

	"github.com/allisson/go-credential/internal/metrics"
	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// GenerateRandomBytes records metrics for random byte generation operations.
func (t *tokenUseCaseWithMetrics) GenerateRandomBytes(ctx context.Context, length int) (string, error) {
	start := time.Now()
	token, err := t.next.GenerateRandomBytes(ctx, length)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "random_bytes_generate", status)
	t.metrics.RecordDuration(ctx, "token", "random_bytes_generate", time.Since(start), status)

	return token, err
}

// GenerateSecureToken records metrics for secure token generation operations.
func (t *tokenUseCaseWithMetrics) GenerateSecureToken(ctx context.Context, length int) (string, error) {
	start := time.Now()
	token, err := t.next.GenerateSecureToken(ctx, length)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "secure_token_generate", status)
	t.metrics.RecordDuration(ctx, "token", "secure_token_generate", time.Since(start), status)

	return token, err
}

// GenerateToken records metrics for format-specific token generation operations.
func (t *tokenUseCaseWithMetrics) GenerateToken(
	ctx context.Context,
	format tokenDomain.Format,
	length int,
) (string, error) {
	start := time.Now()
	token, err := t.next.GenerateToken(ctx, format, length)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "token_generate", status)
	t.metrics.RecordDuration(ctx, "token", "token_generate", time.Since(start), status)

	return token, err
}
