// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/luhn/internal/errors"
)

var (
	// metricNameRegex matches a valid Prometheus metric name prefix
	metricNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// MetricName validates that a string can be used as a metric namespace
var MetricName = validation.NewStringRuleWithError(
	func(s string) bool {
		return metricNameRegex.MatchString(s)
	},
	validation.NewError("validation_metric_name", "must start with a letter or underscore and contain only letters, digits and underscores"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)
