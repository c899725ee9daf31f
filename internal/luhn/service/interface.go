// Package service implements the Luhn checksum: validation, check digit computation and
// number generation from an injectable source of randomness.
package service

import (
	"context"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

// RandomSource provides uniformly distributed random numbers to the generator.
type RandomSource interface {
	// Uint64N returns a uniform random number in [0, n). n must be greater than zero.
	Uint64N(n uint64) (uint64, error)
}

// NumberGenerator defines the interface for Luhn number generation.
type NumberGenerator interface {
	// Generate draws random candidates until one passes validation.
	Generate(ctx context.Context) (*luhnDomain.Generation, error)

	// GenerateLength builds a number of exactly length digits whose last digit is the check digit.
	GenerateLength(ctx context.Context, length int) (*luhnDomain.Generation, error)
}
