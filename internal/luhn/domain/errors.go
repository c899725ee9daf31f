package domain

import (
	"github.com/allisson/luhn/internal/errors"
)

var (
	// ErrInvalidLength indicates a requested length is outside [MinLength, MaxLength].
	ErrInvalidLength = errors.Wrap(errors.ErrInvalidInput, "invalid luhn number length")

	// ErrInvalidSeparatorPolicy indicates an unknown separator policy was provided.
	ErrInvalidSeparatorPolicy = errors.Wrap(errors.ErrInvalidInput, "invalid separator policy")

	// ErrInvalidFormat indicates an unknown output format was provided.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid output format")

	// ErrInvalidCount indicates the number of values to generate is out of range.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "invalid count")
)
