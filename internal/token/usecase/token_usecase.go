package usecase

import (
	"context"
	"log/slog"

	"github.com/jellydator/validation"

	tokenDomain "github.com/allisson/go-credential/internal/token/domain"
	tokenService "github.com/allisson/go-credential/internal/token/service"
	appValidation "github.com/allisson/go-credential/internal/validation"
)

// tokenUseCase implements TokenUseCase for secure token generation operations.
type tokenUseCase struct {
	tokenService tokenService.TokenService
	logger       *slog.Logger
}

// NewTokenUseCase creates a new TokenUseCase with injected dependencies.
func NewTokenUseCase(service tokenService.TokenService, logger *slog.Logger) TokenUseCase {
	return &tokenUseCase{
		tokenService: service,
		logger:       logger,
	}
}

// validateLength validates that the requested byte length is a positive integer.
func (t *tokenUseCase) validateLength(length int) error {
	err := validation.Validate(length,
		validation.Required.Error("length must be a positive integer"),
		validation.Min(1).Error("length must be a positive integer"),
	)
	return appValidation.WrapValidationError(err)
}

// validateOptionalLength validates a byte length where zero selects the default.
func (t *tokenUseCase) validateOptionalLength(length int) error {
	err := validation.Validate(length,
		validation.Min(0).Error("length must not be negative"),
	)
	return appValidation.WrapValidationError(err)
}

// GenerateRandomBytes creates length cryptographically secure random bytes and returns
// them as a lowercase hex string of exactly 2*length characters. The length is validated
// before any entropy is consumed.
func (t *tokenUseCase) GenerateRandomBytes(ctx context.Context, length int) (string, error) {
	if err := t.validateLength(length); err != nil {
		return "", err
	}

	token, err := t.tokenService.GenerateRandomBytes(length)
	if err != nil {
		t.logger.ErrorContext(ctx, "random bytes generation failed", slog.Any("error", err))
		return "", tokenDomain.ErrGenerateRandomBytes
	}

	return token, nil
}

// GenerateSecureToken creates a hex-encoded secure token from length random bytes.
// A length of zero selects the configured default of 32 bytes, producing a
// 64-character token.
func (t *tokenUseCase) GenerateSecureToken(ctx context.Context, length int) (string, error) {
	if err := t.validateOptionalLength(length); err != nil {
		return "", err
	}

	token, err := t.tokenService.GenerateSecureToken(length)
	if err != nil {
		t.logger.ErrorContext(ctx, "secure token generation failed", slog.Any("error", err))
		return "", tokenDomain.ErrGenerateSecureToken
	}

	return token, nil
}

// GenerateToken creates a token in the given format from length random bytes.
// A length of zero selects the configured default. The UUID format ignores length.
func (t *tokenUseCase) GenerateToken(
	ctx context.Context,
	format tokenDomain.Format,
	length int,
) (string, error) {
	if err := format.Validate(); err != nil {
		return "", tokenDomain.ErrInvalidFormat
	}
	if err := t.validateOptionalLength(length); err != nil {
		return "", err
	}

	token, err := t.tokenService.GenerateToken(format, length)
	if err != nil {
		t.logger.ErrorContext(ctx, "token generation failed",
			slog.String("format", format.String()),
			slog.Any("error", err),
		)
		return "", tokenDomain.ErrGenerateToken
	}

	return token, nil
}
