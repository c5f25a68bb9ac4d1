package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotcli/internal/config"
	"github.com/thoreinstein/dotcli/internal/doctor"
	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/manager"
	"github.com/thoreinstein/dotcli/internal/paths"
)

var (
	doctorJSON bool
	doctorFix  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "repair fixable issues")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose problems with the shell config and dotcli setup",
	Long: `Run diagnostic checks on the shell config dotcli edits, the entries in
it, the shell used for re-sourcing, the dotcli config file and the backup
directory.

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// doctor must run with a broken config, so it reports configLoadErr as a
// check result instead of failing in checkConfig.
func newDoctorRunner(cmd *cobra.Command) *doctor.Runner {
	env, err := envFromOS()
	if err != nil {
		// a missing HOME is reported by HomeCheck
		env = manager.Env{FS: afero.NewOsFs()}
	}
	cfg := currentConfig()
	d := dispatcherFor(cmd, env, dispatchOptions{noSource: true})

	return doctor.NewRunner(
		&doctor.HomeCheck{Home: env.Home},
		&doctor.ConfigCheck{LoadErr: configLoadErr, File: config.FileUsed()},
		&doctor.ShellConfigCheck{FS: env.FS, Locate: d.Locate},
		&doctor.EntriesCheck{FS: env.FS, Locate: d.Locate},
		&doctor.ShellBinaryCheck{Shell: cfg.Shell, Enabled: cfg.AutoSource},
		&doctor.BackupDirCheck{FS: env.FS, Dir: paths.BackupDir(), Enabled: cfg.Backup.Enabled},
	)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	runner := newDoctorRunner(cmd)
	report := runner.Run(cmd.Context())
	w := cmd.OutOrStdout()

	if doctorFix {
		applyFixes(w, runner)
		report = runner.Run(cmd.Context())
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return errors.Wrap(err, "encoding output")
		}
	} else {
		writeDoctorText(w, report)
	}

	switch {
	case report.HasErrors():
		return errors.NewExitError(errors.New("doctor found errors"), errors.ExitSystem)
	case report.HasWarnings():
		return errors.NewExitError(errors.New("doctor found warnings"), errors.ExitUser)
	}
	return nil
}

func applyFixes(w io.Writer, runner *doctor.Runner) {
	for _, c := range runner.Checks() {
		f, ok := c.(doctor.Fixer)
		if !ok || !f.CanFix() {
			continue
		}
		for _, r := range f.Fix() {
			if r.Error != nil {
				fmt.Fprintf(w, "fix failed: %s: %v\n", r.Path, r.Error)
				continue
			}
			fmt.Fprintf(w, "fixed: %s (%s)\n", r.Path, r.Description)
		}
	}
}

func writeDoctorText(w io.Writer, report *doctor.Report) {
	for _, r := range report.Results {
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(r.Status), r.Category, r.Name, r.Message)
		if r.FixHint != "" && r.Status >= doctor.SeverityWarning {
			fmt.Fprintf(w, "  hint: %s\n", r.FixHint)
		}
	}
	fmt.Fprintf(w, "\nSummary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}
