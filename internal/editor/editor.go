// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"os"
	"os/exec"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
)

// Open runs the user's editor on path and waits for it to exit.
// The editor is $EDITOR, then $VISUAL, then nano, then vi.
func Open(ctx context.Context, path string) error {
	editorCmd := detectEditor()
	logging.FromContext(ctx).Debug("opening editor", "editor", editorCmd, "path", path)

	cmd := exec.CommandContext(ctx, editorCmd, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", editorCmd)
	}
	return nil
}

func detectEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
