// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	validation "github.com/jellydator/validation"

	"github.com/allisson/luhn/internal/app"
	apperrors "github.com/allisson/luhn/internal/errors"
	luhnDomain "github.com/allisson/luhn/internal/luhn/domain"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat accepts the supported output formats.
func validateFormat(format string) error {
	if err := validation.Validate(format, validation.Required, validation.In("text", "json")); err != nil {
		return apperrors.Wrapf(luhnDomain.ErrInvalidFormat, "format %q (valid options: text, json)", format)
	}
	return nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
