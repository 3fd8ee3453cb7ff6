// Package errs holds the error taxonomy of a search run and the exit codes
// each kind of failure maps to.
package errs

import (
	"fmt"
	"io/fs"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for search operations.
var (
	// ErrNoPattern indicates that neither -e, -f nor a positional pattern was given.
	ErrNoPattern = errors.New("no pattern supplied")
	// ErrEmptyPatternSet indicates an attempt to build a pattern set with no patterns.
	ErrEmptyPatternSet = errors.New("pattern set must contain at least one pattern")
	// ErrConflictingMatchers indicates more than one of -E, -F and -G.
	ErrConflictingMatchers = errors.New("conflicting matchers specified")
	// ErrBackReference indicates a basic pattern using \1 through \9.
	ErrBackReference = errors.New("back-references are not supported")
	// ErrIsDirectory indicates a target that names a directory.
	ErrIsDirectory = errors.New("is a directory")
	// ErrNoMatch indicates a run that completed without selecting any line.
	ErrNoMatch = errors.New("no lines selected")
	// ErrInvalidColor indicates an unknown --color value.
	ErrInvalidColor = errors.New("invalid color mode")
)

// BadPatternError reports a pattern that failed to compile under its syntax.
type BadPatternError struct {
	Pattern string
	Err     error
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("bad pattern %q: %v", e.Pattern, e.Err)
}

func (e *BadPatternError) Unwrap() error {
	return e.Err
}

// OpenError reports a target that could not be opened or read.
type OpenError struct {
	Source string
	Err    error
}

// NewOpenError wraps err for source, dropping the operation and path that
// *fs.PathError would repeat.
func NewOpenError(source string, err error) *OpenError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &OpenError{Source: source, Err: err}
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an unusable command line or configuration.
type ConfigurationError struct {
	Err error
}

// NewConfigurationError wraps err as a ConfigurationError.
func NewConfigurationError(err error) error {
	if err == nil {
		return nil
	}
	return &ConfigurationError{Err: err}
}

func (e *ConfigurationError) Error() string {
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
