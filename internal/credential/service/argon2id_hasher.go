package service

import (
	"strconv"
	"strings"

	"github.com/allisson/go-pwdhash"

	"github.com/allisson/go-credential/internal/config"
	credentialDomain "github.com/allisson/go-credential/internal/credential/domain"
	apperrors "github.com/allisson/go-credential/internal/errors"
)

// argon2idHasher implements Hasher using the Argon2id algorithm.
// Two policy-backed hashers are built up front; the deployment environment picks
// one per call, so a flag flip changes the hashing policy without a restart.
type argon2idHasher struct {
	environment config.Environment
	standard    *pwdhash.PasswordHasher
	production  *pwdhash.PasswordHasher
}

// NewArgon2idHasher creates a new Argon2id hasher. Uses the Interactive policy
// for standard deployments and the stronger Moderate policy in production.
func NewArgon2idHasher(environment config.Environment) (Hasher, error) {
	standard, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	production, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &argon2idHasher{
		environment: environment,
		standard:    standard,
		production:  production,
	}, nil
}

// hasher selects the policy-backed hasher for the current call.
func (h *argon2idHasher) hasher() *pwdhash.PasswordHasher {
	if h.environment.Production() {
		return h.production
	}
	return h.standard
}

// Hash hashes a password using Argon2id with a fresh random salt. The policy
// parameters and salt are embedded in the resulting PHC string.
func (h *argon2idHasher) Hash(password string) (string, error) {
	hashed, err := h.hasher().Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password with argon2id")
	}
	return hashed, nil
}

// Verify performs a constant-time comparison between password and hashedPassword.
// The hash parameters are read from the PHC string, so hashes produced under either
// policy verify correctly. Returns false with a nil error on mismatch.
func (h *argon2idHasher) Verify(password string, hashedPassword string) (bool, error) {
	ok, err := h.hasher().Verify([]byte(password), hashedPassword)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to verify password with argon2id")
	}
	return ok, nil
}

// Cost extracts the Argon2id time cost (t) embedded in hashedPassword.
// Encoders order the PHC parameter segment differently (m=65536,t=3,p=4 vs
// m=65536,p=4,t=3), so the segment is scanned instead of matched positionally.
func (h *argon2idHasher) Cost(hashedPassword string) (int, error) {
	parts := strings.Split(hashedPassword, "$")
	if len(parts) < 4 || parts[1] != "argon2id" {
		return 0, credentialDomain.ErrUnknownHashFormat
	}

	for _, param := range strings.Split(parts[3], ",") {
		if !strings.HasPrefix(param, "t=") {
			continue
		}
		timeCost, err := strconv.Atoi(strings.TrimPrefix(param, "t="))
		if err != nil {
			return 0, apperrors.Wrap(err, "failed to parse argon2id time cost")
		}
		return timeCost, nil
	}

	return 0, credentialDomain.ErrUnknownHashFormat
}
