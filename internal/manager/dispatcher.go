package manager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
	"github.com/thoreinstein/dotcli/internal/shellrc"
	"github.com/thoreinstein/dotcli/internal/source"
)

// Dispatcher maps a category and action to the matching operation.
type Dispatcher struct {
	env        Env
	categories map[string]Category
	candidates []string
	override   string
	sourcer    source.Sourcer
	backup     shellrc.Backuper
	out        io.Writer
	notice     io.Writer
	json       bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCandidates replaces the shell config search list.
func WithCandidates(c []string) Option {
	return func(d *Dispatcher) {
		d.candidates = c
	}
}

// WithRCFile edits path instead of searching the candidates.
func WithRCFile(path string) Option {
	return func(d *Dispatcher) {
		d.override = path
	}
}

// WithSourcer sets the port used to re-source after "path add".
// A nil Sourcer disables re-sourcing.
func WithSourcer(s source.Sourcer) Option {
	return func(d *Dispatcher) {
		d.sourcer = s
	}
}

// WithBackup backs the shell config up before every write.
func WithBackup(b shellrc.Backuper) Option {
	return func(d *Dispatcher) {
		d.backup = b
	}
}

// WithOutput sets where command output goes. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

// WithNotices sets where add confirmations go. Defaults to the output
// writer; io.Discard silences them.
func WithNotices(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.notice = w
	}
}

// WithJSON makes "list" print a JSON array instead of text lines.
func WithJSON(enabled bool) Option {
	return func(d *Dispatcher) {
		d.json = enabled
	}
}

// NewDispatcher returns a Dispatcher with the alias and path categories.
func NewDispatcher(env Env, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		env: env,
		categories: map[string]Category{
			AliasCategory{}.Name(): AliasCategory{},
			PathCategory{}.Name():  PathCategory{},
		},
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Categories returns the registered category names, sorted.
func (d *Dispatcher) Categories() []string {
	names := make([]string, 0, len(d.categories))
	for n := range d.categories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run executes `<category> <action> [args...]`.
func (d *Dispatcher) Run(ctx context.Context, category string, args []string) error {
	cat, ok := d.categories[category]
	if !ok {
		return invalidCommand(d.Categories())
	}

	s, err := d.Init(ctx, cat)
	if err != nil {
		return errors.Wrap(err, "initializing command")
	}

	if len(args) == 0 {
		return invalidCommand(actions)
	}

	logging.FromContext(ctx).Debug("dispatching", "category", category, "action", args[0])

	switch args[0] {
	case ActionAdd:
		return errors.Wrap(cat.Add(ctx, s, args[1:]), "executing command")
	case ActionList:
		return errors.Wrap(d.list(s, cat), "executing command")
	default:
		return invalidCommand(actions)
	}
}

// Locate returns the shell config file this dispatcher edits.
func (d *Dispatcher) Locate(ctx context.Context) (string, error) {
	loc := &shellrc.Locator{
		FS:         d.fs(),
		Home:       d.env.Home,
		Candidates: d.candidates,
		Override:   d.override,
	}
	return loc.Locate(ctx)
}

// Init locates the shell config and parses the category's entries.
func (d *Dispatcher) Init(ctx context.Context, cat Category) (*Session, error) {
	path, err := d.Locate(ctx)
	if err != nil {
		return nil, err
	}

	var fopts []shellrc.FileOption
	if d.backup != nil {
		fopts = append(fopts, shellrc.WithBackup(d.backup))
	}
	file := shellrc.NewFile(d.fs(), path, fopts...)

	text, err := file.Read()
	if err != nil {
		return nil, err
	}
	entries, err := cat.Parse(text)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	logging.FromContext(ctx).Debug("parsed entries", "category", cat.Name(), "count", len(entries))

	notice := d.notice
	if notice == nil {
		notice = d.out
	}

	return &Session{
		File:    file,
		Entries: entries,
		Env:     d.env,
		Out:     d.out,
		Notice:  notice,
		Sourcer: d.sourcer,
	}, nil
}

func (d *Dispatcher) list(s *Session, cat Category) error {
	if d.json {
		entries := s.Entries
		if entries == nil {
			entries = []fmt.Stringer{}
		}
		enc := json.NewEncoder(s.Out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(entries), "encoding output")
	}

	if len(s.Entries) == 0 {
		fmt.Fprintf(s.Out, "No %s entries found in %s\n", cat.Noun(), s.File.Path())
		return nil
	}
	for _, e := range s.Entries {
		fmt.Fprintln(s.Out, e.String())
	}
	return nil
}

func (d *Dispatcher) fs() afero.Fs {
	if d.env.FS == nil {
		return afero.NewOsFs()
	}
	return d.env.FS
}
