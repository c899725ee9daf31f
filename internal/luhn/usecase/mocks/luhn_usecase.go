// Package mocks provides mock implementations of the luhn use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

// MockLuhnUseCase is a mock implementation of LuhnUseCase for testing.
type MockLuhnUseCase struct {
	mock.Mock
}

// NewMockLuhnUseCase creates a MockLuhnUseCase whose expectations are asserted on test cleanup.
func NewMockLuhnUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLuhnUseCase {
	m := &MockLuhnUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Check mocks the Check method of LuhnUseCase.
func (m *MockLuhnUseCase) Check(
	ctx context.Context,
	number string,
	policy luhnDomain.SeparatorPolicy,
) (*luhnDomain.CheckResult, error) {
	args := m.Called(ctx, number, policy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*luhnDomain.CheckResult), args.Error(1)
}

// Generate mocks the Generate method of LuhnUseCase.
func (m *MockLuhnUseCase) Generate(ctx context.Context, length int) (*luhnDomain.Generation, error) {
	args := m.Called(ctx, length)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*luhnDomain.Generation), args.Error(1)
}
