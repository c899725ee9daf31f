package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/luhn/internal/errors"
	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
	luhnUsecase "github.com/allisson/luhn/internal/luhn/usecase"
)

// MaxCount is the largest number of values a single generate invocation prints.
const MaxCount = 1000

// RunGenerate prints count Luhn-valid numbers, one per line.
// A zero length selects rejection sampling; any other length is generated constructively.
func RunGenerate(
	ctx context.Context,
	luhnUseCase luhnUsecase.LuhnUseCase,
	logger *slog.Logger,
	writer io.Writer,
	args []string,
	length int,
	count int,
	format string,
) error {
	if len(args) != 0 {
		return apperrors.ErrUsage
	}
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := validation.Validate(count, validation.Min(1), validation.Max(MaxCount)); err != nil {
		return apperrors.Wrapf(luhnDomain.ErrInvalidCount, "count must be between 1 and %d, got %d", MaxCount, count)
	}

	numbers := make([]string, 0, count)
	fallbacks := 0
	for range count {
		generation, err := luhnUseCase.Generate(ctx, length)
		if err != nil {
			return fmt.Errorf("failed to generate number: %w", err)
		}
		if generation.Fallback {
			fallbacks++
		}
		numbers = append(numbers, generation.Number)
	}

	logger.Info("generate completed",
		slog.Int("count", count),
		slog.Int("length", length),
		slog.Int("fallbacks", fallbacks),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{"numbers": numbers})
	}

	for _, number := range numbers {
		if _, err := fmt.Fprintln(writer, number); err != nil {
			return err
		}
	}
	return nil
}
