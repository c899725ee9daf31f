// Package usecase defines interfaces and implementations for Luhn use cases.
// Coordinates validation under a separator policy and number generation.
package usecase

import (
	"context"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

// LuhnUseCase defines the interface for validating and generating Luhn numbers.
type LuhnUseCase interface {
	// Check validates number after removing the characters ignored by policy.
	// An invalid number is reported in the result, never as an error.
	Check(
		ctx context.Context,
		number string,
		policy luhnDomain.SeparatorPolicy,
	) (*luhnDomain.CheckResult, error)

	// Generate creates a Luhn-valid number. A zero length draws random candidates until one
	// passes; any other length builds a number with exactly that many digits.
	Generate(ctx context.Context, length int) (*luhnDomain.Generation, error)
}
