package pesel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	id, err := pesel.Parse(input)
//	if errors.Is(err, pesel.ErrMalformedInput) {
//	    // Reject the form field
//	}
var (
	// ErrMissingInput indicates no identifier was supplied.
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedInput indicates the identifier failed validation or decoding.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidIdentifiers indicates a batch contained at least one rejected identifier.
	ErrInvalidIdentifiers = errors.New("one or more identifiers are invalid")
)

// ParseError is returned by Parse. Err is always ErrMissingInput or
// ErrMalformedInput; Reason is a human-readable explanation and carries no
// additional error identity.
type ParseError struct {
	Input  string // Offending input (empty for ErrMissingInput)
	Reason string // Why the input was rejected
	Err    error  // ErrMissingInput or ErrMalformedInput
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrMissingInput) {
		return "pesel: " + e.Err.Error()
	}
	msg := fmt.Sprintf("pesel: %v %q", e.Err, e.Input)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the sentinel kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingInput):
		return ExitMissingInput
	case errors.Is(err, ErrMalformedInput):
		return ExitMalformedInput
	case errors.Is(err, ErrInvalidIdentifiers):
		return ExitInvalidIdentifiers
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
