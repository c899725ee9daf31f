package service

import (
	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

// IsValid reports whether number passes the Luhn checksum. Whitespace is ignored; any other
// non-digit character, including hyphens, makes the number invalid. Numbers with fewer than
// two digits are never valid.
func IsValid(number string) bool {
	return IsValidWithPolicy(number, luhnDomain.SeparatorStrict)
}

// IsValidWithPolicy reports whether number passes the Luhn checksum after removing the
// characters ignored by policy.
func IsValidWithPolicy(number string, policy luhnDomain.SeparatorPolicy) bool {
	digits := luhnDomain.Normalize(number, policy)
	if len(digits) < luhnDomain.MinLength {
		return false
	}

	sum := 0
	// The rightmost digit is never doubled, so with an even count the first one is.
	doubled := len(digits)%2 == 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if doubled {
			sum += double(d)
		} else {
			sum += d
		}
		doubled = !doubled
	}

	return sum%10 == 0
}

// CheckDigit calculates the Luhn check digit for the given payload.
// The payload must NOT include the check digit position.
func CheckDigit(payload []int) int {
	sum := 0
	length := len(payload)

	// The digit right before the check digit is doubled
	for i := 0; i < length; i++ {
		d := payload[length-1-i]
		if i%2 == 0 {
			d = double(d)
		}
		sum += d
	}

	return (10 - (sum % 10)) % 10
}

// double applies the Luhn weighting to a single digit.
func double(d int) int {
	if d < 5 {
		return d * 2
	}
	return d*2 - 9
}
