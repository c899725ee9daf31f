// Package domain defines the Luhn domain model: separator policies, check and generation
// results, length constraints and the errors returned by the luhn services.
package domain

import (
	"errors"
)

// SeparatorPolicy defines which non-digit characters are ignored during validation.
type SeparatorPolicy string

const (
	// SeparatorStrict ignores whitespace only. Any other non-digit invalidates the number.
	SeparatorStrict SeparatorPolicy = "strict"
	// SeparatorLenient ignores whitespace and hyphens.
	SeparatorLenient SeparatorPolicy = "lenient"
)

// Length and sampling constraints
const (
	// MinLength is the minimum number of digits a Luhn number can have (payload + check digit).
	MinLength = 2

	// MaxLength is the maximum length accepted for constructive generation.
	MaxLength = 255

	// DefaultLength is the length used by the constructive fallback (a common card length).
	DefaultLength = 16

	// CandidateUpperBound is the exclusive upper bound for random candidates (10^18).
	CandidateUpperBound uint64 = 0xDE0B6B3A7640000

	// DefaultMaxAttempts bounds the rejection-sampling loop before falling back.
	DefaultMaxAttempts = 1000
)

// Validate checks if the separator policy is known.
func (p SeparatorPolicy) Validate() error {
	switch p {
	case SeparatorStrict, SeparatorLenient:
		return nil
	default:
		return errors.New("invalid separator policy")
	}
}

// String returns the string representation of the separator policy.
func (p SeparatorPolicy) String() string {
	return string(p)
}
