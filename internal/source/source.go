// Package source re-sources a shell config file after it changes.
package source

import (
	"context"
	"os/exec"
	"strings"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
)

// Sourcer applies an updated shell config file.
type Sourcer interface {
	Source(ctx context.Context, rcPath string) error
}

// Shell starts `<shell> -c '. <rcPath>'` and does not wait for it.
// Only a failure to start the process is reported.
type Shell struct {
	// Path is the shell binary, e.g. /bin/zsh.
	Path string

	// start is swapped in tests.
	start func(*exec.Cmd) error
}

// NewShell returns a Sourcer using the given shell binary.
func NewShell(shell string) *Shell {
	return &Shell{Path: shell}
}

// Source launches the shell and releases it.
func (s *Shell) Source(ctx context.Context, rcPath string) error {
	cmd := s.Command(rcPath)

	start := s.start
	if start == nil {
		start = startDetached
	}
	if err := start(cmd); err != nil {
		return errors.Wrapf(err, "starting %s", s.Path)
	}

	logging.FromContext(ctx).Debug("re-sourcing shell config", "shell", s.Path, "path", rcPath)
	return nil
}

// Command builds the command Source runs.
func (s *Shell) Command(rcPath string) *exec.Cmd {
	return exec.Command(s.Path, "-c", ". "+shellQuote(rcPath))
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Nop is a Sourcer that does nothing; used for --no-source.
type Nop struct{}

// Source implements Sourcer.
func (Nop) Source(context.Context, string) error { return nil }
