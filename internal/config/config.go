// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
	customValidation "github.com/allisson/luhn/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
	// LogFormat is the log handler format ("json" or "text").
	LogFormat string

	// SeparatorPolicy is the default separator policy for the check command ("strict" or "lenient").
	SeparatorPolicy string

	// GenerateMaxAttempts bounds rejection sampling before the constructive fallback. Zero is unbounded.
	GenerateMaxAttempts int
	// GenerateSeed selects a deterministic random source when non-zero.
	GenerateSeed int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is the path the Prometheus textfile is written to on shutdown.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel:  env.GetString("LOG_LEVEL", "warn"),
		LogFormat: env.GetString("LOG_FORMAT", "json"),

		// Validation
		SeparatorPolicy: strings.ToLower(
			strings.TrimSpace(env.GetString("SEPARATOR_POLICY", string(luhnDomain.SeparatorStrict))),
		),

		// Generation
		GenerateMaxAttempts: env.GetInt("GENERATE_MAX_ATTEMPTS", luhnDomain.DefaultMaxAttempts),
		GenerateSeed:        env.GetInt("GENERATE_SEED", 0),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "luhn"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		validation.Field(&c.LogFormat,
			validation.Required,
			validation.In("json", "text"),
		),
		validation.Field(&c.SeparatorPolicy,
			validation.Required,
			validation.In(string(luhnDomain.SeparatorStrict), string(luhnDomain.SeparatorLenient)),
		),
		validation.Field(&c.GenerateMaxAttempts, validation.Min(0)),
		validation.Field(&c.GenerateSeed, validation.Min(0)),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required, customValidation.MetricName),
		),
		validation.Field(&c.MetricsTextfile, customValidation.NoWhitespace),
	)
	return customValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Variables already present in the environment take precedence
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
