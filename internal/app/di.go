// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/allisson/luhn/internal/config"
	luhnService "github.com/allisson/luhn/internal/luhn/service"
	luhnUsecase "github.com/allisson/luhn/internal/luhn/usecase"
	"github.com/allisson/luhn/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	logOutput       io.Writer
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	randomSource luhnService.RandomSource
	generator    luhnService.NumberGenerator

	// Use Cases
	luhnUseCase luhnUsecase.LuhnUseCase

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	randomSourceInit    sync.Once
	generatorInit       sync.Once
	luhnUseCaseInit     sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		logOutput:  os.Stderr,
		initErrors: make(map[string]error),
	}
}

// SetLogOutput redirects the logger output. It has no effect once the logger was created.
func (c *Container) SetLogOutput(w io.Writer) {
	c.logOutput = w
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level and format in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the OpenTelemetry metrics provider.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// A no-op implementation is returned when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// RandomSource returns the random source used by the generator.
func (c *Container) RandomSource() luhnService.RandomSource {
	c.randomSourceInit.Do(func() {
		c.randomSource = c.initRandomSource()
	})
	return c.randomSource
}

// NumberGenerator returns the Luhn number generator.
func (c *Container) NumberGenerator() luhnService.NumberGenerator {
	c.generatorInit.Do(func() {
		c.generator = luhnService.NewGenerator(c.RandomSource(), c.config.GenerateMaxAttempts)
	})
	return c.generator
}

// LuhnUseCase returns the Luhn use case instance.
func (c *Container) LuhnUseCase() (luhnUsecase.LuhnUseCase, error) {
	var err error
	c.luhnUseCaseInit.Do(func() {
		c.luhnUseCase, err = c.initLuhnUseCase()
		if err != nil {
			c.initErrors["luhnUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["luhnUseCase"]; exists {
		return nil, storedErr
	}
	return c.luhnUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
// Metrics are written to the configured textfile before the provider is shut down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if c.config.MetricsTextfile != "" {
			if err := c.metricsProvider.WriteTextfile(c.config.MetricsTextfile); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics textfile: %w", err))
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	// Return combined errors if any occurred
	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level and format.
// Every record carries the invocation id so one command run can be traced across lines.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if c.config.LogFormat == "text" {
		handler = slog.NewTextHandler(c.logOutput, opts)
	} else {
		handler = slog.NewJSONHandler(c.logOutput, opts)
	}

	return slog.New(handler).With(slog.String("invocation_id", uuid.NewString()))
}

// initMetricsProvider creates the metrics provider for the configured namespace.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initRandomSource selects a deterministic source when a seed is configured.
func (c *Container) initRandomSource() luhnService.RandomSource {
	if c.config.GenerateSeed != 0 {
		c.Logger().Warn("using seeded random source, output is reproducible",
			slog.Int("seed", c.config.GenerateSeed),
		)
		return luhnService.NewSeededSource(uint64(c.config.GenerateSeed))
	}
	return luhnService.NewCryptoSource()
}

// initLuhnUseCase creates the Luhn use case with all its dependencies.
func (c *Container) initLuhnUseCase() (luhnUsecase.LuhnUseCase, error) {
	baseUseCase := luhnUsecase.NewLuhnUseCase(c.NumberGenerator(), c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for luhn use case: %w", err)
		}
		return luhnUsecase.NewLuhnUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
