package app

import (
	"fmt"

	credentialDomain "github.com/allisson/go-credential/internal/credential/domain"
	credentialService "github.com/allisson/go-credential/internal/credential/service"
	credentialUseCase "github.com/allisson/go-credential/internal/credential/usecase"
)

// CredentialService returns the password hashing service.
func (c *Container) CredentialService() (credentialService.CredentialService, error) {
	var err error
	c.credentialServiceInit.Do(func() {
		c.credentialService, err = c.initCredentialService()
		if err != nil {
			c.initErrors["credentialService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialService"]; exists {
		return nil, storedErr
	}
	return c.credentialService, nil
}

// CredentialUseCase returns the credential use case.
func (c *Container) CredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	var err error
	c.credentialUseCaseInit.Do(func() {
		c.credentialUseCase, err = c.initCredentialUseCase()
		if err != nil {
			c.initErrors["credentialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialUseCase"]; exists {
		return nil, storedErr
	}
	return c.credentialUseCase, nil
}

// initCredentialService creates the credential service from the hashing configuration.
// The deployment environment is injected so the effective cost tracks the
// production flag at call time.
func (c *Container) initCredentialService() (credentialService.CredentialService, error) {
	environment := c.Environment()

	credentialSvc, err := credentialService.NewCredentialService(
		credentialDomain.Algorithm(c.config.HashAlgorithm),
		environment,
		c.config.HashBaseCost,
		c.config.HashProductionCostOffset,
		c.config.HashMaxConcurrent,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create credential service: %w", err)
	}

	return credentialSvc, nil
}

// initCredentialUseCase creates the credential use case with all its dependencies.
func (c *Container) initCredentialUseCase() (credentialUseCase.CredentialUseCase, error) {
	logger := c.Logger()

	credentialSvc, err := c.CredentialService()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential service for credential use case: %w", err)
	}

	baseUseCase := credentialUseCase.NewCredentialUseCase(credentialSvc, logger)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for credential use case: %w", err)
		}
		return credentialUseCase.NewCredentialUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
