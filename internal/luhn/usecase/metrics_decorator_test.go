package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
	luhnMocks "github.com/allisson/luhn/internal/luhn/usecase/mocks"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordAttempts(ctx context.Context, domain, operation string, attempts int) {
	m.Called(ctx, domain, operation, attempts)
}

func TestNewLuhnUseCaseWithMetrics(t *testing.T) {
	mockUseCase := luhnMocks.NewMockLuhnUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewLuhnUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.IsType(t, &luhnUseCaseWithMetrics{}, decorator)
}

func TestLuhnUseCaseWithMetrics_Check(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		result         *luhnDomain.CheckResult
		err            error
		expectedStatus string
	}{
		{
			name:           "Valid_RecordsValidStatus",
			result:         &luhnDomain.CheckResult{Number: "79927398713", Valid: true},
			expectedStatus: "valid",
		},
		{
			name:           "Invalid_RecordsInvalidStatus",
			result:         &luhnDomain.CheckResult{Number: "79927398712", Valid: false},
			expectedStatus: "invalid",
		},
		{
			name:           "Error_RecordsErrorStatus",
			err:            luhnDomain.ErrInvalidSeparatorPolicy,
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := luhnMocks.NewMockLuhnUseCase(t)
			mockMetrics := &mockBusinessMetrics{}

			number := "79927398713"
			if tt.result != nil {
				number = tt.result.Number
			}
			if tt.err != nil {
				mockUseCase.On("Check", ctx, number, luhnDomain.SeparatorStrict).Return(nil, tt.err).Once()
			} else {
				mockUseCase.On("Check", ctx, number, luhnDomain.SeparatorStrict).Return(tt.result, nil).Once()
			}
			mockMetrics.On("RecordOperation", ctx, "luhn", "check", tt.expectedStatus).Once()
			mockMetrics.On("RecordDuration", ctx, "luhn", "check", mock.AnythingOfType("time.Duration"), tt.expectedStatus).
				Once()

			decorator := NewLuhnUseCaseWithMetrics(mockUseCase, mockMetrics)
			result, err := decorator.Check(ctx, number, luhnDomain.SeparatorStrict)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			mockMetrics.AssertExpectations(t)
		})
	}
}

func TestLuhnUseCaseWithMetrics_Generate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name              string
		length            int
		generation        *luhnDomain.Generation
		err               error
		expectedOperation string
		expectedStatus    string
		expectedAttempts  int
	}{
		{
			name:              "Success_RecordsAttempts",
			length:            0,
			generation:        &luhnDomain.Generation{Number: "26", Attempts: 3},
			expectedOperation: "generate",
			expectedStatus:    "success",
			expectedAttempts:  3,
		},
		{
			name:              "Fallback_RecordsFallbackStatus",
			length:            0,
			generation:        &luhnDomain.Generation{Number: "3333333333333331", Attempts: 1000, Fallback: true},
			expectedOperation: "generate",
			expectedStatus:    "fallback",
			expectedAttempts:  1000,
		},
		{
			name:              "Length_SkipsAttempts",
			length:            4,
			generation:        &luhnDomain.Generation{Number: "3335"},
			expectedOperation: "generate_length",
			expectedStatus:    "success",
		},
		{
			name:              "Error_RecordsErrorStatus",
			length:            1,
			err:               luhnDomain.ErrInvalidLength,
			expectedOperation: "generate_length",
			expectedStatus:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := luhnMocks.NewMockLuhnUseCase(t)
			mockMetrics := &mockBusinessMetrics{}

			if tt.err != nil {
				mockUseCase.On("Generate", ctx, tt.length).Return(nil, tt.err).Once()
			} else {
				mockUseCase.On("Generate", ctx, tt.length).Return(tt.generation, nil).Once()
			}
			mockMetrics.On("RecordOperation", ctx, "luhn", tt.expectedOperation, tt.expectedStatus).Once()
			mockMetrics.On(
				"RecordDuration",
				ctx,
				"luhn",
				tt.expectedOperation,
				mock.AnythingOfType("time.Duration"),
				tt.expectedStatus,
			).Once()
			if tt.expectedAttempts > 0 {
				mockMetrics.On("RecordAttempts", ctx, "luhn", tt.expectedOperation, tt.expectedAttempts).Once()
			}

			decorator := NewLuhnUseCaseWithMetrics(mockUseCase, mockMetrics)
			generation, err := decorator.Generate(ctx, tt.length)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, generation)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.generation, generation)
			}
			mockMetrics.AssertExpectations(t)
			if tt.expectedAttempts == 0 {
				mockMetrics.AssertNotCalled(t, "RecordAttempts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
