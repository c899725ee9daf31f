package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/allisson/luhn/internal/errors"
	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
	luhnUsecase "github.com/allisson/luhn/internal/luhn/usecase"
)

// RunCheck validates the single positional argument and prints Valid or Invalid.
// An invalid number is a result, not an error.
func RunCheck(
	ctx context.Context,
	luhnUseCase luhnUsecase.LuhnUseCase,
	logger *slog.Logger,
	writer io.Writer,
	args []string,
	separators string,
	format string,
) error {
	if len(args) != 1 {
		return apperrors.ErrUsage
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	policy, err := luhnDomain.ParseSeparatorPolicy(separators)
	if err != nil {
		return err
	}

	result, err := luhnUseCase.Check(ctx, args[0], policy)
	if err != nil {
		return fmt.Errorf("failed to check number: %w", err)
	}

	logger.Info("check completed",
		slog.String("policy", policy.String()),
		slog.Bool("valid", result.Valid),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"number": result.Number,
			"valid":  result.Valid,
		})
	}

	verdict := "Invalid"
	if result.Valid {
		verdict = "Valid"
	}
	_, err = fmt.Fprintln(writer, verdict)
	return err
}
