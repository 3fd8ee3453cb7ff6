package errs

import (
	"github.com/cockroachdb/errors"
)

// Process exit statuses.
const (
	ExitSelected  = 0
	ExitNoneFound = 1
	ExitTrouble   = 2
)

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Cause() error {
	return e.cause
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to an error.
// The exit code can be retrieved later using GetExitCode.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{
		cause: err,
		code:  code,
	}
}

// GetExitCode extracts the exit code from an error chain.
//
// It checks for exit codes in this order:
//  1. exitCoder attached via WithExitCode.
//  2. ErrNoMatch, which maps to ExitNoneFound.
//  3. Anything else, including BadPatternError and ConfigurationError, is ExitTrouble.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSelected
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	if errors.Is(err, ErrNoMatch) {
		return ExitNoneFound
	}

	return ExitTrouble
}
