// Package errors provides error handling conventions for the dotcli CLI.
//
// It re-exports the constructors and inspection helpers of
// github.com/cockroachdb/errors so callers need a single import, defines
// sentinel errors for the failure kinds the CLI reports, and an ExitError
// type that carries an exit code and optional suggestion up to main.
//
// # Sentinel Errors
//
// Failure kinds are attached with [Mark] or by wrapping, and checked with
// [Is]:
//
//	if errors.Is(err, errors.ErrDuplicateEntry) {
//	    // alias already present
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (bad arguments, missing files, duplicates)
//   - ExitSystem (2): System-related error (I/O, process spawning, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and a suggestion:
//
//	err := errors.NewUserError(errors.ErrNotFound, "Create ~/.zshrc or pass --rc")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
