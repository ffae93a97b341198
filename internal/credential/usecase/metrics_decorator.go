package usecase

import (
	"context"
	"time"

	"github.com/allisson/go-credential/internal/metrics"
)

// credentialUseCaseWithMetrics wraps CredentialUseCase with business metrics recording.
type credentialUseCaseWithMetrics struct {
	next    CredentialUseCase
	metrics metrics.BusinessMetrics
}

// NewCredentialUseCaseWithMetrics creates a CredentialUseCase decorated with metrics recording.
func NewCredentialUseCaseWithMetrics(next CredentialUseCase, businessMetrics metrics.BusinessMetrics) CredentialUseCase {
	return &credentialUseCaseWithMetrics{
		next:    next,
		metrics: businessMetrics,
	}
}

// HashPassword records metrics for password hashing operations.
func (c *credentialUseCaseWithMetrics) HashPassword(ctx context.Context, password string) (string, error) {
	start := time.Now()
	hashedPassword, err := c.next.HashPassword(ctx, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential", "password_hash", status)
	c.metrics.RecordDuration(ctx, "credential", "password_hash", time.Since(start), status)

	return hashedPassword, err
}

// VerifyPassword records metrics for password verification operations.
func (c *credentialUseCaseWithMetrics) VerifyPassword(ctx context.Context, password string, hashedPassword string) (bool, error) {
	start := time.Now()
	match, err := c.next.VerifyPassword(ctx, password, hashedPassword)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential", "password_verify", status)
	c.metrics.RecordDuration(ctx, "credential", "password_verify", time.Since(start), status)

	return match, err
}

// HashCost records metrics for hash cost inspection operations.
func (c *credentialUseCaseWithMetrics) HashCost(ctx context.Context, hashedPassword string) (int, error) {
	start := time.Now()
	cost, err := c.next.HashCost(ctx, hashedPassword)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential", "hash_cost", status)
	c.metrics.RecordDuration(ctx, "credential", "hash_cost", time.Since(start), status)

	return cost, err
}

// NeedsRehash records metrics for rehash check operations.
func (c *credentialUseCaseWithMetrics) NeedsRehash(ctx context.Context, hashedPassword string) (bool, error) {
	start := time.Now()
	needsRehash, err := c.next.NeedsRehash(ctx, hashedPassword)

	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "credential", "needs_rehash", status)
	c.metrics.RecordDuration(ctx, "credential", "needs_rehash", time.Since(start), status)

	return needsRehash, err
}
