package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotcli/internal/backup"
	"github.com/thoreinstein/dotcli/internal/errors"
)

var backupListJSON bool

func init() {
	backupListCmd.Flags().BoolVar(&backupListJSON, "json", false, "Output in JSON format")
	backupCmd.AddCommand(backupListCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Inspect copies of the shell config taken before edits",
	Long: `dotcli copies your shell config aside before every change it makes.
Copies live under $XDG_DATA_HOME/dotcli/backups and the oldest are removed
once more than backup.retention exist.`,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups of the shell config",
	Example: `  # List backups, newest first
  dotcli backup list

  # Output as JSON
  dotcli backup list --json`,
	Args: cobra.NoArgs,
	RunE: runBackupList,
}

func runBackupList(cmd *cobra.Command, _ []string) error {
	env, err := envFromOS()
	if err != nil {
		return err
	}
	d := dispatcherFor(cmd, env, dispatchOptions{noSource: true})
	path, err := d.Locate(cmd.Context())
	if err != nil {
		return err
	}

	snaps, err := newBackupManager(env, currentConfig()).List(path)
	if err != nil && !errors.Is(err, backup.ErrNoBackupsFound) {
		return err
	}

	w := cmd.OutOrStdout()
	if backupListJSON {
		if snaps == nil {
			snaps = []backup.Snapshot{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(snaps), "encoding output")
	}
	return writeBackupTable(w, path, snaps)
}

func writeBackupTable(w io.Writer, path string, snaps []backup.Snapshot) error {
	if len(snaps) == 0 {
		fmt.Fprintf(w, "No backups found for %s\n", path)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSIZE\tSHA256")
	for _, s := range snaps {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Size, s.SHA256[:12])
	}
	return errors.Wrap(tw.Flush(), "writing output")
}
