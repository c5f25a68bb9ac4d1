package doctor

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/errors"
)

// Fixer is implemented by checks that can repair what they found.
// CanFix and Fix must be called after Run.
type Fixer interface {
	CanFix() bool
	Fix() []FixResult
}

// FixResult describes one attempted repair.
type FixResult struct {
	Path        string `json:"path"`
	Fixed       bool   `json:"fixed"`
	Description string `json:"description"`
	Error       error  `json:"-"`
}

// secureFilePerm is the mode a writable-by-others shell config is reset to.
const secureFilePerm os.FileMode = 0o644

// permissionFixer resets the mode of files found to be writable by others.
type permissionFixer struct {
	fs    afero.Fs
	paths []string
}

func (f *permissionFixer) CanFix() bool {
	return len(f.paths) > 0
}

func (f *permissionFixer) Fix() []FixResult {
	results := make([]FixResult, 0, len(f.paths))
	for _, p := range f.paths {
		r := FixResult{Path: p}
		if err := f.fs.Chmod(p, secureFilePerm); err != nil {
			r.Description = fmt.Sprintf("failed to chmod %04o", secureFilePerm)
			r.Error = errors.Wrapf(err, "chmod %04o %s", secureFilePerm, p)
		} else {
			r.Fixed = true
			r.Description = fmt.Sprintf("chmod %04o", secureFilePerm)
		}
		results = append(results, r)
	}
	return results
}
