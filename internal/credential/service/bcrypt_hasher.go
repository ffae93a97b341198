package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/allisson/go-credential/internal/config"
	credentialDomain "github.com/allisson/go-credential/internal/credential/domain"
	apperrors "github.com/allisson/go-credential/internal/errors"
)

// bcryptHasher implements Hasher using the bcrypt algorithm.
type bcryptHasher struct {
	environment config.Environment
	baseCost    int
	costOffset  int
}

// NewBcryptHasher creates a new bcrypt hasher. Production deployments hash at
// baseCost plus costOffset; all other deployments use baseCost. Returns
// ErrInvalidHashCost if either the base or the production cost falls outside
// the bcrypt cost range.
func NewBcryptHasher(environment config.Environment, baseCost, costOffset int) (Hasher, error) {
	return newBcryptHasher(environment, baseCost, costOffset)
}

func newBcryptHasher(environment config.Environment, baseCost, costOffset int) (*bcryptHasher, error) {
	if baseCost < bcrypt.MinCost || baseCost > bcrypt.MaxCost {
		return nil, credentialDomain.ErrInvalidHashCost
	}
	if costOffset < 0 || baseCost+costOffset > bcrypt.MaxCost {
		return nil, credentialDomain.ErrInvalidHashCost
	}

	return &bcryptHasher{
		environment: environment,
		baseCost:    baseCost,
		costOffset:  costOffset,
	}, nil
}

// cost resolves the effective bcrypt cost for the current call. The deployment
// flag is read on every call so a flip takes effect without a restart.
func (h *bcryptHasher) cost() int {
	if h.environment.Production() {
		return h.baseCost + h.costOffset
	}
	return h.baseCost
}

// Hash hashes a password using bcrypt with a fresh random salt. The cost is
// embedded in the resulting hash alongside the salt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost())
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password with bcrypt")
	}
	return string(hashed), nil
}

// Verify performs a constant-time comparison between password and hashedPassword.
// Returns false with a nil error on mismatch.
func (h *bcryptHasher) Verify(password string, hashedPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return true, nil
	}
	if apperrors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, apperrors.Wrap(err, "failed to verify password with bcrypt")
}

// Cost extracts the bcrypt cost embedded in hashedPassword.
func (h *bcryptHasher) Cost(hashedPassword string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read bcrypt cost")
	}
	return cost, nil
}
