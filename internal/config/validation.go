package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if c.Corpus.CombinedFile == "" {
		errors = append(errors, ValidationError{
			Field:   "corpus.combined_file",
			Message: "combined corpus file path is required",
		})
	}

	if c.Tables.Directory == "" && len(c.Tables.Order) == 0 {
		errors = append(errors, ValidationError{
			Field:   "tables",
			Message: "either tables.directory or tables.order must be set",
		})
	}

	if c.Processing.Workers < 1 {
		errors = append(errors, ValidationError{
			Field:   "processing.workers",
			Message: fmt.Sprintf("workers must be at least 1, got %d", c.Processing.Workers),
		})
	}

	if c.Report.SampleSize < 0 {
		errors = append(errors, ValidationError{
			Field:   "report.sample_size",
			Message: fmt.Sprintf("sample_size must not be negative, got %d", c.Report.SampleSize),
		})
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level %q (expected debug, info, warn or error)", c.Logging.Level),
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid format %q (expected json or text)", c.Logging.Format),
		})
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
