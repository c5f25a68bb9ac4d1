package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/dotcli/internal/errors"
)

// Validation errors for configuration fields.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrNoCandidates       = errors.New("candidates must not be empty")
	ErrInvalidPath        = errors.New("invalid path")
	ErrNegativeRetention  = errors.New("backup.retention must be >= 0")
)

// Validate checks a Config for validity.
// Returns nil if valid, or every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "version %d", cfg.Version))
	}

	if len(cfg.Candidates) == 0 {
		errs = append(errs, ErrNoCandidates)
	}
	for _, c := range cfg.Candidates {
		if err := validatePath(c); err != nil {
			errs = append(errs, &PathError{Field: "candidates", Path: c, Err: err})
		}
	}

	if cfg.RCFile != "" {
		if err := validatePath(cfg.RCFile); err != nil {
			errs = append(errs, &PathError{Field: "rc_file", Path: cfg.RCFile, Err: err})
		}
	}

	if cfg.Backup.Retention < 0 {
		errs = append(errs, ErrNegativeRetention)
	}

	return errs
}

// validatePath rejects syntactically unusable paths. Existence is not checked.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" || strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if cleaned := filepath.Clean(path); cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
