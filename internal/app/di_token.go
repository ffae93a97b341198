package app

import (
	"fmt"

	tokenService "github.com/allisson/go-credential/internal/token/service"
	tokenUseCase "github.com/allisson/go-credential/internal/token/usecase"
)

// EntropySource returns the operating system entropy source.
func (c *Container) EntropySource() tokenService.EntropySource {
	c.entropySourceInit.Do(func() {
		c.entropySource = c.initEntropySource()
	})
	return c.entropySource
}

// TokenService returns the token generation service.
func (c *Container) TokenService() tokenService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = c.initTokenService()
	})
	return c.tokenService
}

// TokenUseCase returns the token use case.
func (c *Container) TokenUseCase() (tokenUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// initEntropySource creates the operating system entropy source.
func (c *Container) initEntropySource() tokenService.EntropySource {
	return tokenService.NewEntropySource()
}

// initTokenService creates the token service with the configured default byte length.
func (c *Container) initTokenService() tokenService.TokenService {
	entropySource := c.EntropySource()
	return tokenService.NewTokenService(entropySource, c.config.TokenDefaultByteLength)
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (tokenUseCase.TokenUseCase, error) {
	logger := c.Logger()
	tokenSvc := c.TokenService()

	baseUseCase := tokenUseCase.NewTokenUseCase(tokenSvc, logger)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		return tokenUseCase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
