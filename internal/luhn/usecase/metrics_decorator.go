package usecase

import (
	"context"
	"time"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
	"github.com/allisson/luhn/internal/metrics"
)

const metricsDomain = "luhn"

// luhnUseCaseWithMetrics decorates LuhnUseCase with metrics instrumentation.
type luhnUseCaseWithMetrics struct {
	next    LuhnUseCase
	metrics metrics.BusinessMetrics
}

// NewLuhnUseCaseWithMetrics wraps a LuhnUseCase with metrics recording.
func NewLuhnUseCaseWithMetrics(useCase LuhnUseCase, m metrics.BusinessMetrics) LuhnUseCase {
	return &luhnUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Check records metrics for validation operations. Status is "valid", "invalid" or "error".
func (l *luhnUseCaseWithMetrics) Check(
	ctx context.Context,
	number string,
	policy luhnDomain.SeparatorPolicy,
) (*luhnDomain.CheckResult, error) {
	start := time.Now()
	result, err := l.next.Check(ctx, number, policy)

	status := "error"
	if err == nil {
		status = "invalid"
		if result.Valid {
			status = "valid"
		}
	}

	l.metrics.RecordOperation(ctx, metricsDomain, "check", status)
	l.metrics.RecordDuration(ctx, metricsDomain, "check", time.Since(start), status)

	return result, err
}

// Generate records metrics for generation operations. Status is "success", "fallback" or "error".
func (l *luhnUseCaseWithMetrics) Generate(ctx context.Context, length int) (*luhnDomain.Generation, error) {
	start := time.Now()
	generation, err := l.next.Generate(ctx, length)

	operation := "generate"
	if length != 0 {
		operation = "generate_length"
	}

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case generation.Fallback:
		status = "fallback"
	}

	l.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	l.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
	if err == nil && generation.Attempts > 0 {
		l.metrics.RecordAttempts(ctx, metricsDomain, operation, generation.Attempts)
	}

	return generation, err
}
