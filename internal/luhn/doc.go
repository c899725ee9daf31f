/*
Package luhn validates and generates numbers protected by the Luhn (mod 10) checksum.

# Architecture

The module follows the same layering as the rest of the application:
  - domain: constants, separator policy, results, masking and domain errors
  - service: the validator, check digit math, the generator and randomness providers
  - usecase: orchestration, logging and metrics decoration

# Validation

	service.IsValid("4539 1488 0343 6467")  // true
	service.IsValid("2323-2005-7766-3554")  // false, hyphens are not separators
	service.IsValidWithPolicy("2323-2005-7766-3554", domain.SeparatorLenient) // true

Whitespace is always ignored. Inputs with fewer than two digits are never valid.

# Generation

	gen := service.NewGenerator(service.NewCryptoSource(), domain.DefaultMaxAttempts)
	generation, err := gen.Generate(ctx)

Generate draws random candidates until one passes validation. After maxAttempts
candidates it completes a random payload with a computed check digit instead.
GenerateLength always builds the number constructively:

	generation, err := gen.GenerateLength(ctx, 16)
*/
package luhn
