package service

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/allisson/go-credential/internal/config"
	credentialDomain "github.com/allisson/go-credential/internal/credential/domain"
)

// credentialService implements CredentialService by routing operations to
// algorithm-specific hashers based on the hash's self-describing prefix.
type credentialService struct {
	algorithm credentialDomain.Algorithm
	bcrypt    *bcryptHasher
	hashers   map[credentialDomain.Algorithm]Hasher
	limiter   *semaphore.Weighted
}

// NewCredentialService creates a new CredentialService. The algorithm selects which
// hasher produces new hashes; verification routes stored hashes to the hasher matching
// their prefix. When maxConcurrent is greater than zero, hashing and verification are
// bounded to that many concurrent operations.
func NewCredentialService(
	algorithm credentialDomain.Algorithm,
	environment config.Environment,
	baseCost, costOffset, maxConcurrent int,
) (CredentialService, error) {
	if err := algorithm.Validate(); err != nil {
		return nil, credentialDomain.ErrInvalidAlgorithm
	}

	bcryptHasher, err := newBcryptHasher(environment, baseCost, costOffset)
	if err != nil {
		return nil, err
	}

	argon2idHasher, err := NewArgon2idHasher(environment)
	if err != nil {
		return nil, err
	}

	var limiter *semaphore.Weighted
	if maxConcurrent > 0 {
		limiter = semaphore.NewWeighted(int64(maxConcurrent))
	}

	return &credentialService{
		algorithm: algorithm,
		bcrypt:    bcryptHasher,
		hashers: map[credentialDomain.Algorithm]Hasher{
			credentialDomain.AlgorithmBcrypt:   bcryptHasher,
			credentialDomain.AlgorithmArgon2id: argon2idHasher,
		},
		limiter: limiter,
	}, nil
}

// acquire blocks until a hashing slot is available when a limiter is configured.
// Hashing has no internal cancellation, so acquisition uses a background context.
func (s *credentialService) acquire() {
	if s.limiter == nil {
		return
	}
	_ = s.limiter.Acquire(context.Background(), 1)
}

// release returns a hashing slot to the limiter.
func (s *credentialService) release() {
	if s.limiter == nil {
		return
	}
	s.limiter.Release(1)
}

// HashPassword hashes a password using the active algorithm.
func (s *credentialService) HashPassword(password string) (string, error) {
	s.acquire()
	defer s.release()

	return s.hashers[s.algorithm].Hash(password)
}

// VerifyPassword verifies a password against a stored hash. The hash's algorithm is
// detected from its prefix, so hashes produced under a previously active algorithm
// remain verifiable.
func (s *credentialService) VerifyPassword(password string, hashedPassword string) (bool, error) {
	algorithm, err := credentialDomain.DetectAlgorithm(hashedPassword)
	if err != nil {
		return false, err
	}

	s.acquire()
	defer s.release()

	return s.hashers[algorithm].Verify(password, hashedPassword)
}

// HashCost extracts the cost parameter embedded in a stored hash.
func (s *credentialService) HashCost(hashedPassword string) (int, error) {
	algorithm, err := credentialDomain.DetectAlgorithm(hashedPassword)
	if err != nil {
		return 0, err
	}

	return s.hashers[algorithm].Cost(hashedPassword)
}

// NeedsRehash reports whether a stored hash should be regenerated. A hash needs
// regeneration when its algorithm differs from the active one, or when it is a
// bcrypt hash whose embedded cost differs from the current effective cost.
// Argon2id parameters are policy-managed, so same-algorithm Argon2id hashes are
// kept as-is.
func (s *credentialService) NeedsRehash(hashedPassword string) (bool, error) {
	algorithm, err := credentialDomain.DetectAlgorithm(hashedPassword)
	if err != nil {
		return false, err
	}

	if algorithm != s.algorithm {
		return true, nil
	}

	if algorithm == credentialDomain.AlgorithmBcrypt {
		storedCost, err := s.bcrypt.Cost(hashedPassword)
		if err != nil {
			return false, err
		}
		return storedCost != s.bcrypt.cost(), nil
	}

	return false, nil
}
