package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotcli/internal/backup"
	"github.com/thoreinstein/dotcli/internal/config"
	"github.com/thoreinstein/dotcli/internal/manager"
	"github.com/thoreinstein/dotcli/internal/source"
)

// envFromOS is replaced in tests.
var envFromOS = manager.EnvFromOS

// dispatchOptions carries per-command flags into the dispatcher.
type dispatchOptions struct {
	json     bool
	noSource bool
}

// currentConfig returns the loaded config, or defaults when loading was skipped.
func currentConfig() *config.Config {
	if appConfig != nil {
		return appConfig
	}
	return config.Default()
}

// newDispatcher wires a Dispatcher from the loaded config and global flags.
func newDispatcher(cmd *cobra.Command, opts dispatchOptions) (*manager.Dispatcher, error) {
	env, err := envFromOS()
	if err != nil {
		return nil, err
	}
	return dispatcherFor(cmd, env, opts), nil
}

func dispatcherFor(cmd *cobra.Command, env manager.Env, opts dispatchOptions) *manager.Dispatcher {
	cfg := currentConfig()

	override := cfg.RCFile
	if rcFile != "" {
		override = rcFile
	}

	dopts := []manager.Option{
		manager.WithCandidates(cfg.Candidates),
		manager.WithRCFile(override),
		manager.WithOutput(cmd.OutOrStdout()),
		manager.WithJSON(opts.json),
	}
	if quiet {
		dopts = append(dopts, manager.WithNotices(io.Discard))
	}
	if cfg.AutoSource && !opts.noSource {
		dopts = append(dopts, manager.WithSourcer(source.NewShell(cfg.Shell)))
	}
	if cfg.Backup.Enabled {
		dopts = append(dopts, manager.WithBackup(newBackupManager(env, cfg)))
	}

	return manager.NewDispatcher(env, dopts...)
}

func newBackupManager(env manager.Env, cfg *config.Config) *backup.Manager {
	return backup.NewManager(env.FS, backup.WithRetentionCount(cfg.Backup.Retention))
}

// dispatch runs `<category> <args...>` through a fresh Dispatcher.
func dispatch(cmd *cobra.Command, category string, args []string, opts dispatchOptions) error {
	d, err := newDispatcher(cmd, opts)
	if err != nil {
		return err
	}
	return d.Run(cmd.Context(), category, args)
}

// prepend returns args with action in front.
func prepend(action string, args []string) []string {
	return append([]string{action}, args...)
}
