package usecase

import (
	"context"
	"log/slog"

	"github.com/jellydator/validation"

	credentialDomain "github.com/allisson/go-credential/internal/credential/domain"
	credentialService "github.com/allisson/go-credential/internal/credential/service"
	appValidation "github.com/allisson/go-credential/internal/validation"
)

type credentialUseCase struct {
	credentialService credentialService.CredentialService
	logger            *slog.Logger
}

func (c *credentialUseCase) validatePassword(password string) error {
	err := validation.Validate(password,
		validation.Required.Error("password is required"),
	)
	return appValidation.WrapValidationError(err)
}

func (c *credentialUseCase) validateHashedPassword(hashedPassword string) error {
	err := validation.Validate(hashedPassword,
		validation.Required.Error("hashed password is required"),
	)
	return appValidation.WrapValidationError(err)
}

// HashPassword hashes a plain text password after validating it is non-empty.
func (c *credentialUseCase) HashPassword(ctx context.Context, password string) (string, error) {
	// Validate input
	if err := c.validatePassword(password); err != nil {
		return "", err
	}

	// Hash password with a fresh random salt
	hashedPassword, err := c.credentialService.HashPassword(password)
	if err != nil {
		c.logger.ErrorContext(ctx, "password hashing failed", slog.Any("error", err))
		return "", credentialDomain.ErrHashPassword
	}

	return hashedPassword, nil
}

// VerifyPassword verifies a plain text password against a stored hash.
func (c *credentialUseCase) VerifyPassword(ctx context.Context, password string, hashedPassword string) (bool, error) {
	// Validate inputs
	if err := c.validatePassword(password); err != nil {
		return false, err
	}
	if err := c.validateHashedPassword(hashedPassword); err != nil {
		return false, err
	}

	// Verify password with a constant-time comparison
	match, err := c.credentialService.VerifyPassword(password, hashedPassword)
	if err != nil {
		c.logger.ErrorContext(ctx, "password verification failed", slog.Any("error", err))
		return false, credentialDomain.ErrVerifyPassword
	}

	return match, nil
}

// HashCost extracts the cost parameter embedded in a stored hash.
func (c *credentialUseCase) HashCost(ctx context.Context, hashedPassword string) (int, error) {
	// Validate input
	if err := c.validateHashedPassword(hashedPassword); err != nil {
		return 0, err
	}

	// Read cost from the self-describing hash encoding
	cost, err := c.credentialService.HashCost(hashedPassword)
	if err != nil {
		c.logger.ErrorContext(ctx, "hash cost inspection failed", slog.Any("error", err))
		return 0, credentialDomain.ErrInspectHash
	}

	return cost, nil
}

// NeedsRehash reports whether a stored hash matches the current configuration.
func (c *credentialUseCase) NeedsRehash(ctx context.Context, hashedPassword string) (bool, error) {
	// Validate input
	if err := c.validateHashedPassword(hashedPassword); err != nil {
		return false, err
	}

	// Compare the embedded algorithm and cost against the current configuration
	needsRehash, err := c.credentialService.NeedsRehash(hashedPassword)
	if err != nil {
		c.logger.ErrorContext(ctx, "rehash check failed", slog.Any("error", err))
		return false, credentialDomain.ErrInspectHash
	}

	return needsRehash, nil
}

// NewCredentialUseCase creates a new credential use case instance.
func NewCredentialUseCase(credentialSvc credentialService.CredentialService, logger *slog.Logger) CredentialUseCase {
	return &credentialUseCase{
		credentialService: credentialSvc,
		logger:            logger,
	}
}
