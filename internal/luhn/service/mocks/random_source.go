// Package mocks provides mock implementations of the luhn service interfaces for testing.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockRandomSource is a mock implementation of RandomSource for testing.
type MockRandomSource struct {
	mock.Mock
}

// Uint64N mocks the Uint64N method of RandomSource.
func (m *MockRandomSource) Uint64N(n uint64) (uint64, error) {
	args := m.Called(n)
	return args.Get(0).(uint64), args.Error(1)
}
