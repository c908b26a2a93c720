package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the traceability CLI. These codes support programmatic
// composition and CI/CD integration.
const (
	// ExitSuccess indicates a valid graph.
	ExitSuccess = 0

	// ExitValidationFailed indicates the graph failed validation.
	ExitValidationFailed = 1

	// ExitFatal indicates the run aborted before completion (unreadable
	// directory, config error).
	ExitFatal = 2

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var xe *exitError
	if errors.As(err, &xe) {
		return xe.code
	}
	return ExitFatal
}

// isExitError reports whether err already carries an exit code, meaning its
// message has been rendered and must not be printed again.
func isExitError(err error) bool {
	var xe *exitError
	return errors.As(err, &xe)
}
