package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/entry"
	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/pkg/fileutil"
)

// LocateFunc returns the shell config path dotcli would edit.
type LocateFunc func(ctx context.Context) (string, error)

// HomeCheck verifies that a home directory is known.
type HomeCheck struct {
	Home string
}

var _ Check = (*HomeCheck)(nil)

func (c *HomeCheck) Name() string     { return "home" }
func (c *HomeCheck) Category() string { return "environment" }

func (c *HomeCheck) Run(context.Context) *CheckResult {
	r := &CheckResult{Name: c.Name(), Category: c.Category()}
	if c.Home == "" {
		r.Status = SeverityError
		r.Message = "HOME is not set"
		r.FixHint = "export HOME=/path/to/your/home"
		return r
	}
	r.Status = SeverityPass
	r.Message = "home directory is " + c.Home
	return r
}

// ConfigCheck reports the outcome of loading dotcli's own config file.
type ConfigCheck struct {
	LoadErr error
	File    string
}

var _ Check = (*ConfigCheck)(nil)

func (c *ConfigCheck) Name() string     { return "config-file" }
func (c *ConfigCheck) Category() string { return "config" }

func (c *ConfigCheck) Run(context.Context) *CheckResult {
	r := &CheckResult{Name: c.Name(), Category: c.Category()}
	switch {
	case c.LoadErr != nil:
		r.Status = SeverityError
		r.Message = c.LoadErr.Error()
		r.FixHint = "dotcli config edit"
	case c.File == "":
		r.Status = SeverityPass
		r.Message = "no config file, using defaults"
	default:
		r.Status = SeverityPass
		r.Message = "loaded " + c.File
	}
	return r
}

// ShellConfigCheck verifies the shell config exists and is not writable
// by group or others. The permission problem can be fixed.
type ShellConfigCheck struct {
	FS     afero.Fs
	Locate LocateFunc

	fixer permissionFixer
}

var (
	_ Check = (*ShellConfigCheck)(nil)
	_ Fixer = (*ShellConfigCheck)(nil)
)

func (c *ShellConfigCheck) Name() string     { return "shell-config" }
func (c *ShellConfigCheck) Category() string { return "shell" }

func (c *ShellConfigCheck) Run(ctx context.Context) *CheckResult {
	r := &CheckResult{Name: c.Name(), Category: c.Category()}
	c.fixer = permissionFixer{fs: c.FS}

	path, err := c.Locate(ctx)
	if err != nil {
		r.Status = SeverityError
		r.Message = err.Error()
		r.FixHint = "create ~/.zshrc or ~/.bashrc, or pass --rc <file>"
		return r
	}

	info, err := c.FS.Stat(path)
	if err != nil {
		r.Status = SeverityError
		r.Message = fmt.Sprintf("cannot stat %s: %v", path, err)
		return r
	}

	mode := info.Mode().Perm()
	r.Details = map[string]any{"path": path, "mode": fmt.Sprintf("%04o", mode)}

	if mode&0o022 != 0 {
		c.fixer.paths = []string{path}
		r.Status = SeverityWarning
		r.Message = fmt.Sprintf("%s is writable by group or others (mode %04o)", path, mode)
		r.Fixable = true
		r.FixHint = fmt.Sprintf("chmod %04o %s", secureFilePerm, path)
		return r
	}

	r.Status = SeverityPass
	r.Message = "editing " + path
	return r
}

func (c *ShellConfigCheck) CanFix() bool     { return c.fixer.CanFix() }
func (c *ShellConfigCheck) Fix() []FixResult { return c.fixer.Fix() }

// EntriesCheck parses the shell config the way `list` does and reports
// malformed alias lines and repeated entries.
type EntriesCheck struct {
	FS     afero.Fs
	Locate LocateFunc
}

var _ Check = (*EntriesCheck)(nil)

func (c *EntriesCheck) Name() string     { return "entries" }
func (c *EntriesCheck) Category() string { return "shell" }

func (c *EntriesCheck) Run(ctx context.Context) *CheckResult {
	r := &CheckResult{Name: c.Name(), Category: c.Category()}

	path, err := c.Locate(ctx)
	if err != nil {
		r.Status = SeverityInfo
		r.Message = "skipped, no shell config"
		return r
	}

	data, err := fileutil.ReadFileWithLimit(c.FS, path)
	if err != nil {
		r.Status = SeverityError
		r.Message = errors.Wrapf(err, "reading %s", path).Error()
		return r
	}
	text := string(data)

	aliases, err := entry.ParseAliases(text)
	if err != nil {
		r.Status = SeverityError
		r.Message = err.Error()
		r.FixHint = "every line mentioning \"alias\" must contain \"=\"; edit " + path
		return r
	}
	pathEntries := entry.ParsePaths(text)

	r.Details = map[string]any{"aliases": len(aliases), "paths": len(pathEntries)}

	if dups := repeated(aliases, func(a entry.Alias) string { return a.Name }); len(dups) > 0 {
		r.Status = SeverityWarning
		r.Message = "aliases defined more than once: " + strings.Join(dups, ", ")
		r.FixHint = "remove the earlier definitions from " + path
		return r
	}
	if dups := repeated(pathEntries, func(p entry.PathEntry) string { return p.Path }); len(dups) > 0 {
		r.Status = SeverityInfo
		r.Message = "PATH entries repeated: " + strings.Join(dups, ", ")
		return r
	}

	r.Status = SeverityPass
	r.Message = fmt.Sprintf("%d aliases, %d PATH entries", len(aliases), len(pathEntries))
	return r
}

// repeated returns the sorted keys that occur more than once.
func repeated[T any](items []T, key func(T) string) []string {
	seen := make(map[string]int, len(items))
	for _, it := range items {
		seen[key(it)]++
	}
	var dups []string
	for k, n := range seen {
		if n > 1 {
			dups = append(dups, k)
		}
	}
	sort.Strings(dups)
	return dups
}

// ShellBinaryCheck verifies the shell used to re-source after `path add`.
type ShellBinaryCheck struct {
	Shell   string
	Enabled bool

	// LookPath defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

var _ Check = (*ShellBinaryCheck)(nil)

func (c *ShellBinaryCheck) Name() string     { return "resource-shell" }
func (c *ShellBinaryCheck) Category() string { return "shell" }

func (c *ShellBinaryCheck) Run(context.Context) *CheckResult {
	r := &CheckResult{Name: c.Name(), Category: c.Category()}
	if !c.Enabled {
		r.Status = SeverityInfo
		r.Message = "re-sourcing disabled"
		return r
	}

	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	resolved, err := lookPath(c.Shell)
	if err != nil {
		r.Status = SeverityWarning
		r.Message = fmt.Sprintf("shell %q not found", c.Shell)
		r.FixHint = "set shell in the config file or DOTCLI_SHELL"
		return r
	}

	r.Status = SeverityPass
	r.Message = "re-sourcing with " + resolved
	return r
}

// BackupDirCheck verifies the backup directory is usable.
type BackupDirCheck struct {
	FS      afero.Fs
	Dir     string
	Enabled bool
}

var _ Check = (*BackupDirCheck)(nil)

func (c *BackupDirCheck) Name() string     { return "backup-dir" }
func (c *BackupDirCheck) Category() string { return "backup" }

func (c *BackupDirCheck) Run(context.Context) *CheckResult {
	r := &CheckResult{Name: c.Name(), Category: c.Category()}
	if !c.Enabled {
		r.Status = SeverityInfo
		r.Message = "backups disabled"
		return r
	}

	info, err := c.FS.Stat(c.Dir)
	switch {
	case os.IsNotExist(err):
		r.Status = SeverityPass
		r.Message = "no backups yet, " + c.Dir + " is created on first edit"
	case err != nil:
		r.Status = SeverityError
		r.Message = fmt.Sprintf("cannot stat %s: %v", c.Dir, err)
	case !info.IsDir():
		r.Status = SeverityError
		r.Message = c.Dir + " is not a directory"
		r.FixHint = "remove or rename " + c.Dir
	default:
		r.Status = SeverityPass
		r.Message = "backups stored in " + c.Dir
	}
	return r
}
