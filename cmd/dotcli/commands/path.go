package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotcli/internal/manager"
)

var (
	pathListJSON bool
	pathNoSource bool
)

func init() {
	pathListCmd.Flags().BoolVar(&pathListJSON, "json", false, "Output in JSON format")
	pathAddCmd.Flags().BoolVar(&pathNoSource, "no-source", false, "Do not re-source the shell config after adding")
	pathCmd.AddCommand(pathAddCmd)
	pathCmd.AddCommand(pathListCmd)
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <action> [args...]",
	Short: "Manage PATH entries",
	Long: `Add directories to PATH in your shell config or list the PATH exports
already there.

Relative directories are resolved against the current directory and must
exist. Absolute directories are written as given.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "path", args, dispatchOptions{})
	},
}

var pathAddCmd = &cobra.Command{
	Use:   "add <dir>",
	Short: "Add a directory to PATH",
	Long: `Append export PATH="$PATH:<dir>" to your shell config, then re-source it
with the configured shell unless --no-source is given.`,
	Example: `  # Add a directory relative to the current one
  dotcli path add ./bin

  # Add without re-sourcing
  dotcli path add /opt/tools/bin --no-source`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "path", prepend(manager.ActionAdd, args), dispatchOptions{noSource: pathNoSource})
	},
}

var pathListCmd = &cobra.Command{
	Use:   "list",
	Short: "List PATH entries",
	Example: `  # List PATH entries
  dotcli path list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return dispatch(cmd, "path", []string{manager.ActionList}, dispatchOptions{json: pathListJSON})
	},
}
