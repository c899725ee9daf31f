package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

// MockNumberGenerator is a mock implementation of NumberGenerator for testing.
type MockNumberGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of NumberGenerator.
func (m *MockNumberGenerator) Generate(ctx context.Context) (*luhnDomain.Generation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*luhnDomain.Generation), args.Error(1)
}

// GenerateLength mocks the GenerateLength method of NumberGenerator.
func (m *MockNumberGenerator) GenerateLength(ctx context.Context, length int) (*luhnDomain.Generation, error) {
	args := m.Called(ctx, length)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*luhnDomain.Generation), args.Error(1)
}
