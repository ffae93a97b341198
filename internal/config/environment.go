package config

import (
	"github.com/allisson/go-env"
)

// Environment reports deployment state read from the process environment.
// It is injected into components whose behavior depends on the deployment
// rather than read as ambient global state, keeping that behavior testable.
type Environment interface {
	// Production reports whether the production deployment flag is set.
	// The flag is read on every call, never cached, so a runtime flip
	// takes effect immediately.
	Production() bool
}

// envEnvironment implements Environment on top of process environment variables.
type envEnvironment struct{}

// Production reads the PRODUCTION flag from the environment.
func (envEnvironment) Production() bool {
	return env.GetBool("PRODUCTION", false)
}

// NewEnvironment creates an Environment backed by process environment variables.
func NewEnvironment() Environment {
	return envEnvironment{}
}

// StaticEnvironment is an Environment with a fixed production flag, for tests
// and for callers that resolve deployment state through other means.
type StaticEnvironment struct {
	IsProduction bool
}

// Production returns the fixed production flag.
func (s StaticEnvironment) Production() bool {
	return s.IsProduction
}
