package usecase

import (
	"context"
	"log/slog"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
	luhnService "github.com/allisson/luhn/internal/luhn/service"
)

// luhnUseCase implements LuhnUseCase.
type luhnUseCase struct {
	generator luhnService.NumberGenerator
	logger    *slog.Logger
}

// NewLuhnUseCase creates a new LuhnUseCase backed by the given generator.
func NewLuhnUseCase(generator luhnService.NumberGenerator, logger *slog.Logger) LuhnUseCase {
	return &luhnUseCase{
		generator: generator,
		logger:    logger,
	}
}

// Check validates number under policy. Numbers are only logged masked.
func (l *luhnUseCase) Check(
	ctx context.Context,
	number string,
	policy luhnDomain.SeparatorPolicy,
) (*luhnDomain.CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, luhnDomain.ErrInvalidSeparatorPolicy
	}

	valid := luhnService.IsValidWithPolicy(number, policy)

	l.logger.DebugContext(ctx, "luhn number checked",
		slog.String("number", luhnDomain.Mask(luhnDomain.Normalize(number, policy))),
		slog.String("policy", policy.String()),
		slog.Bool("valid", valid),
	)

	return &luhnDomain.CheckResult{Number: number, Valid: valid}, nil
}

// Generate creates a Luhn-valid number by rejection sampling or, with a length, constructively.
func (l *luhnUseCase) Generate(ctx context.Context, length int) (*luhnDomain.Generation, error) {
	var (
		generation *luhnDomain.Generation
		err        error
	)
	if length == 0 {
		generation, err = l.generator.Generate(ctx)
	} else {
		generation, err = l.generator.GenerateLength(ctx, length)
	}
	if err != nil {
		return nil, err
	}

	if generation.Fallback {
		l.logger.WarnContext(ctx, "rejection sampling exhausted, used constructive fallback",
			slog.Int("attempts", generation.Attempts),
		)
	}

	l.logger.DebugContext(ctx, "luhn number generated",
		slog.String("number", luhnDomain.Mask(generation.Number)),
		slog.Int("length", len(generation.Number)),
		slog.Int("attempts", generation.Attempts),
	)

	return generation, nil
}
