package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/allisson/luhn/internal/errors"
	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

type luhnGenerator struct {
	source      RandomSource
	maxAttempts int
}

// NewGenerator creates a Luhn number generator drawing randomness from source.
// maxAttempts bounds rejection sampling before the constructive fallback; zero or a
// negative value samples until a candidate passes.
func NewGenerator(source RandomSource, maxAttempts int) NumberGenerator {
	return &luhnGenerator{
		source:      source,
		maxAttempts: maxAttempts,
	}
}

// Generate returns a random Luhn-valid number using crypto/rand and the default attempt bound.
func Generate() (string, error) {
	gen := NewGenerator(NewCryptoSource(), luhnDomain.DefaultMaxAttempts)
	generation, err := gen.Generate(context.Background())
	if err != nil {
		return "", err
	}
	return generation.Number, nil
}

// Generate draws random numbers below CandidateUpperBound, applies the Luhn weighting to
// their digits and returns the first candidate accepted by IsValid. When maxAttempts is
// exhausted a DefaultLength number is built constructively and flagged as Fallback.
func (g *luhnGenerator) Generate(ctx context.Context) (*luhnDomain.Generation, error) {
	for attempt := 1; g.maxAttempts <= 0 || attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := g.source.Uint64N(luhnDomain.CandidateUpperBound)
		if err != nil {
			return nil, fmt.Errorf("failed to draw random candidate: %w", err)
		}

		candidate := weightDigits(n)
		if IsValid(candidate) {
			return &luhnDomain.Generation{Number: candidate, Attempts: attempt}, nil
		}
	}

	number, err := g.construct(luhnDomain.DefaultLength)
	if err != nil {
		return nil, err
	}

	return &luhnDomain.Generation{
		Number:   number,
		Attempts: g.maxAttempts,
		Fallback: true,
	}, nil
}

// GenerateLength creates a Luhn-valid number of the specified length.
// The last digit is calculated as the check digit.
func (g *luhnGenerator) GenerateLength(ctx context.Context, length int) (*luhnDomain.Generation, error) {
	if length < luhnDomain.MinLength || length > luhnDomain.MaxLength {
		return nil, errors.Wrapf(
			luhnDomain.ErrInvalidLength,
			"length must be between %d and %d, got %d",
			luhnDomain.MinLength,
			luhnDomain.MaxLength,
			length,
		)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	number, err := g.construct(length)
	if err != nil {
		return nil, err
	}

	return &luhnDomain.Generation{Number: number}, nil
}

// construct generates random digits for all positions except the last one and appends
// the check digit.
func (g *luhnGenerator) construct(length int) (string, error) {
	digits := make([]int, length)
	for i := 0; i < length-1; i++ {
		n, err := g.source.Uint64N(10)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = int(n) //nolint:gosec // n is bounded [0,9]
	}

	digits[length-1] = CheckDigit(digits[:length-1])

	number := make([]byte, length)
	for i, d := range digits {
		number[i] = byte('0' + d)
	}

	return string(number), nil
}

// weightDigits converts n to decimal and doubles every second digit counting from the
// least significant one (which is kept), subtracting 9 when the result exceeds 9.
// Digits stay most significant first, so the unweighted least significant digit ends up
// in the check digit position. Callers still filter candidates through IsValid.
func weightDigits(n uint64) string {
	digits := []byte(strconv.FormatUint(n, 10))
	for i := range digits {
		if (len(digits)-1-i)%2 == 1 {
			digits[i] = byte('0' + double(int(digits[i]-'0')))
		}
	}
	return string(digits)
}
