package salesetl

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := pipeline.Run(ctx, cfg)
//	if errors.Is(err, salesetl.ErrSchema) {
//	    // input files lack a required column
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchema indicates the extracted dataset lacks a column the transform requires.
	ErrSchema = errors.New("schema error")

	// ErrStoreFailed indicates the relational store could not be opened or written.
	ErrStoreFailed = errors.New("store operation failed")

	// ErrNoData indicates a run finished without loading anything.
	ErrNoData = errors.New("no data loaded")

	// ErrNoColumns indicates a tabular file has no header to read columns from.
	ErrNoColumns = errors.New("no columns to parse from file")

	// ErrUnsupportedStore indicates the store location does not map to a known driver.
	ErrUnsupportedStore = errors.New("unsupported store location")
)

// usageErrorPatterns are the message prefixes cobra uses for command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnsupportedStore):
		return ExitConfigError
	case errors.Is(err, ErrStoreFailed):
		return ExitStoreError
	case errors.Is(err, ErrSchema):
		return ExitSchemaError
	case errors.Is(err, ErrNoData):
		return ExitNoData
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
