package service

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		expected bool
	}{
		{name: "Valid_Visa_Spaced", number: "4539 1488 0343 6467", expected: true},
		{name: "Valid_MasterCard_Spaced", number: "2323 2005 7766 3554", expected: true},
		{name: "Valid_MasterCard_Compact", number: "2323200577663554", expected: true},
		{name: "Valid_KnownLuhnNumber_79927398713", number: "79927398713", expected: true},
		{name: "Valid_KnownLuhnNumber_4532015112830366", number: "4532015112830366", expected: true},
		{name: "Valid_SimpleCase_18", number: "18", expected: true},
		{name: "Valid_DoubleZero", number: "00", expected: true},
		{name: "Valid_SpacedZeros", number: "0 0", expected: true},
		{name: "Valid_OddLength_059", number: "059", expected: true},
		{name: "Valid_TabsAndNewlines", number: "4539\t1488\n0343 6467", expected: true},
		{name: "Invalid_Diners_8273", number: "8273 1232 7352 0569", expected: false},
		{name: "Invalid_Sequential", number: "1234567812345678", expected: false},
		{name: "Invalid_KnownInvalidNumber", number: "4532015112830367", expected: false},
		{name: "Invalid_Hyphenated", number: "2323-2005-7766-3554", expected: false},
		{name: "Invalid_ContainsLetters", number: "453201511283036a", expected: false},
		{name: "Invalid_NonASCIIDigit", number: "4532015112830３66", expected: false},
		{name: "Invalid_SingleDigit", number: "5", expected: false},
		{name: "Invalid_SingleZero", number: "0", expected: false},
		{name: "Invalid_SingleDigitWithSpaces", number: " 5 ", expected: false},
		{name: "Invalid_Empty", number: "", expected: false},
		{name: "Invalid_OnlyWhitespace", number: " \t ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValid(tt.number))
		})
	}
}

func TestIsValidWithPolicy(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		policy   luhnDomain.SeparatorPolicy
		expected bool
	}{
		{name: "Strict_RejectsHyphens", number: "2323-2005-7766-3554", policy: luhnDomain.SeparatorStrict, expected: false},
		{name: "Lenient_AcceptsHyphens", number: "2323-2005-7766-3554", policy: luhnDomain.SeparatorLenient, expected: true},
		{name: "Lenient_WrongChecksum", number: "2323-2005-7766-3555", policy: luhnDomain.SeparatorLenient, expected: false},
		{name: "Lenient_MixedSeparators", number: "4539 1488-0343 6467", policy: luhnDomain.SeparatorLenient, expected: true},
		{name: "Lenient_RejectsDots", number: "4539.1488.0343.6467", policy: luhnDomain.SeparatorLenient, expected: false},
		{name: "Lenient_OnlyHyphens", number: "--", policy: luhnDomain.SeparatorLenient, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidWithPolicy(tt.number, tt.policy))
		})
	}
}

func TestIsValid_SingleDigitMutation(t *testing.T) {
	valid := []string{"4539148803436467", "2323200577663554", "79927398713", "4532015112830366"}

	for _, number := range valid {
		for i := 0; i < len(number); i++ {
			for d := byte('0'); d <= '9'; d++ {
				if number[i] == d {
					continue
				}
				mutated := number[:i] + string(d) + number[i+1:]
				assert.False(t, IsValid(mutated), "mutation %s of %s should be invalid", mutated, number)
			}
		}
	}
}

func TestIsValid_WhitespaceIndependence(t *testing.T) {
	inputs := []string{
		"4539 1488 0343 6467",
		" 2 3 2 3 2 0 0 5 7 7 6 6 3 5 5 4 ",
		"1234 5678 1234 5678",
		"0 5 9",
		"12 a4",
		"\t",
	}

	for _, input := range inputs {
		stripped := strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, input)
		assert.Equal(t, IsValid(stripped), IsValid(input), "input %q", input)
	}
}

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name          string
		payload       []int
		expectedDigit int
	}{
		{name: "SimpleCase_1", payload: []int{1}, expectedDigit: 8},
		{name: "SimpleCase_3", payload: []int{3}, expectedDigit: 4},
		{name: "AllZeros", payload: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, expectedDigit: 0},
		{name: "SimpleCase_79927398713", payload: []int{7, 9, 9, 2, 7, 3, 9, 8, 7, 1}, expectedDigit: 3},
		{name: "CreditCard_453201511283036", payload: []int{4, 5, 3, 2, 0, 1, 5, 1, 1, 2, 8, 3, 0, 3, 6}, expectedDigit: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedDigit, CheckDigit(tt.payload))
		})
	}
}
