// Package cmd holds build metadata injected with -ldflags.
package cmd

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/thoreinstein/dotcli/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info renders the build metadata as printed by `dotcli version`.
func Info() string {
	return fmt.Sprintf("dotcli version %s\n  commit: %s\n  built:  %s\n  go:     %s\n",
		Version, Commit, Date, runtime.Version())
}
