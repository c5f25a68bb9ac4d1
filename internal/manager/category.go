package manager

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/shellrc"
	"github.com/thoreinstein/dotcli/internal/source"
)

// Actions every category supports, in the order they are reported.
const (
	ActionAdd  = "add"
	ActionList = "list"
)

var actions = []string{ActionAdd, ActionList}

// Category is one kind of managed shell entry.
type Category interface {
	// Name is the CLI name of the category.
	Name() string
	// Noun is used in user messages ("alias", "path").
	Noun() string
	// Parse extracts the category's entries from config text.
	Parse(text string) ([]fmt.Stringer, error)
	// Add appends a new entry built from args (the words after "add").
	Add(ctx context.Context, s *Session, args []string) error
}

// Session is the state of one initialized run.
type Session struct {
	File    *shellrc.File
	Entries []fmt.Stringer
	Env     Env
	// Out receives list output.
	Out io.Writer
	// Notice receives confirmations from add.
	Notice io.Writer
	// Sourcer is nil when the caller asked not to re-source.
	Sourcer source.Sourcer
}

// invalidCommand reports an unknown word along with the valid choices.
func invalidCommand(valid []string) error {
	quoted := make([]string, len(valid))
	for i, v := range valid {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return errors.Mark(
		errors.Newf("invalid command, please use one of the following: [%s]", strings.Join(quoted, ", ")),
		errors.ErrInvalidCommand,
	)
}

func missingArgs(msg string) error {
	return errors.Mark(errors.Newf("invalid command, %s", msg), errors.ErrInvalidCommand)
}
