package manager

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/thoreinstein/dotcli/internal/entry"
	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
)

// AliasCategory manages `alias NAME="VALUE"` lines.
type AliasCategory struct{}

func (AliasCategory) Name() string { return "alias" }
func (AliasCategory) Noun() string { return "alias" }

func (AliasCategory) Parse(text string) ([]fmt.Stringer, error) {
	aliases, err := entry.ParseAliases(text)
	if err != nil {
		return nil, err
	}
	out := make([]fmt.Stringer, len(aliases))
	for i, a := range aliases {
		out[i] = a
	}
	return out, nil
}

// Add appends a new alias. Names already present in the file are rejected.
// The change is not applied to running shells; the user is told to
// source the file.
func (AliasCategory) Add(ctx context.Context, s *Session, args []string) error {
	if len(args) < 2 {
		return missingArgs("please provide a name and value to add")
	}
	name, value := args[0], args[1]

	text, err := s.File.Read()
	if err != nil {
		return err
	}
	existing, err := entry.ParseAliases(text)
	if err != nil {
		return err
	}
	if entry.HasAlias(existing, name) {
		return errors.Mark(errors.Newf("alias %s already exists", name), errors.ErrDuplicateEntry)
	}

	if err := s.File.Append(ctx, entry.FormatAlias(name, value)); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("added alias", "name", name, "path", s.File.Path())

	color.New(color.FgGreen).Fprintf(s.Notice, "Added alias to %s\n", s.File.Path())
	fmt.Fprintf(s.Notice, "Note: Please run `source %s` to apply the changes\n", s.File.Path())
	return nil
}
