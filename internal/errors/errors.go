package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, missing files, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, process spawning, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidCommand indicates an unknown category or action, or missing arguments.
	ErrInvalidCommand = crdb.New("invalid command")

	// ErrNotFound indicates a shell config file or path does not exist.
	ErrNotFound = crdb.New("not found")

	// ErrDuplicateEntry indicates an entry with the same name is already recorded.
	ErrDuplicateEntry = crdb.New("entry already exists")

	// ErrMalformedEntry indicates a line matched an entry pattern but could not be split.
	ErrMalformedEntry = crdb.New("malformed entry")

	// ErrHomeNotSet indicates the HOME environment variable is unset or empty.
	ErrHomeNotSet = crdb.New("HOME is not set")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")
)

// Re-exported helpers from github.com/cockroachdb/errors.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Mark   = crdb.Mark
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: dotcli config list",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Classify turns an arbitrary error into an ExitError. Errors that already
// carry an ExitError are returned as is; known user-facing kinds map to
// ExitUser, everything else to ExitSystem.
func Classify(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr
	}

	switch {
	case Is(err, ErrInvalidCommand):
		return NewUserError(err, "Run 'dotcli --help' for usage")
	case Is(err, ErrNotFound), Is(err, ErrHomeNotSet):
		return NewUserError(err, "")
	case Is(err, ErrDuplicateEntry), Is(err, ErrMalformedEntry):
		return NewUserError(err, "")
	case Is(err, ErrInvalidConfig):
		return NewConfigError(err)
	default:
		return NewSystemError(err, "")
	}
}
