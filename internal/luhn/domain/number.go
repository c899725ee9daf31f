package domain

import (
	"strings"
	"unicode"
)

// CheckResult is the outcome of validating a single number.
type CheckResult struct {
	Number string
	Valid  bool
}

// Generation is the outcome of generating a single number.
type Generation struct {
	Number string
	// Attempts is the number of random candidates drawn by rejection sampling.
	Attempts int
	// Fallback is true when the number was built constructively after the attempts ran out.
	Fallback bool
}

// ParseSeparatorPolicy converts a string into a SeparatorPolicy.
func ParseSeparatorPolicy(s string) (SeparatorPolicy, error) {
	policy := SeparatorPolicy(strings.ToLower(strings.TrimSpace(s)))
	if err := policy.Validate(); err != nil {
		return "", ErrInvalidSeparatorPolicy
	}
	return policy, nil
}

// Normalize removes the characters ignored by the policy. Whitespace is always removed.
func Normalize(number string, policy SeparatorPolicy) string {
	var b strings.Builder
	b.Grow(len(number))
	for _, r := range number {
		if unicode.IsSpace(r) {
			continue
		}
		if policy == SeparatorLenient && r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Mask hides all but the first 6 and last 4 characters of a number so it can be logged.
// Numbers of 10 characters or fewer are fully masked.
func Mask(number string) string {
	runes := []rune(number)
	n := len(runes)
	if n <= 10 {
		return strings.Repeat("*", n)
	}

	var masked strings.Builder
	masked.Grow(len(number))
	masked.WriteString(string(runes[:6]))
	masked.WriteString(strings.Repeat("*", n-10))
	masked.WriteString(string(runes[n-4:]))
	return masked.String()
}
