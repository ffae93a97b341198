// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// HashAlgorithm is the password hashing algorithm to use ("bcrypt" or "argon2id").
	HashAlgorithm string
	// HashBaseCost is the bcrypt cost factor used in non-production deployments.
	HashBaseCost int
	// HashProductionCostOffset is added to HashBaseCost when the production flag is set.
	HashProductionCostOffset int
	// HashMaxConcurrent bounds the number of in-flight hashing operations (0 = unbounded).
	HashMaxConcurrent int

	// TokenDefaultByteLength is the number of random bytes behind a secure token
	// when the caller does not specify a length.
	TokenDefaultByteLength int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "credential"),

		// Password hashing
		HashAlgorithm:            env.GetString("HASH_ALGORITHM", "bcrypt"),
		HashBaseCost:             env.GetInt("HASH_BASE_COST", 10),
		HashProductionCostOffset: env.GetInt("HASH_PRODUCTION_COST_OFFSET", 2),
		HashMaxConcurrent:        env.GetInt("HASH_MAX_CONCURRENT", 0),

		// Token generation
		TokenDefaultByteLength: env.GetInt("TOKEN_DEFAULT_BYTE_LENGTH", 32),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
