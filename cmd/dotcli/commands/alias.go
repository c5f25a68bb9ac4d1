package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dotcli/internal/manager"
)

var aliasListJSON bool

func init() {
	aliasListCmd.Flags().BoolVar(&aliasListJSON, "json", false, "Output in JSON format")
	aliasCmd.AddCommand(aliasAddCmd)
	aliasCmd.AddCommand(aliasListCmd)
	rootCmd.AddCommand(aliasCmd)
}

var aliasCmd = &cobra.Command{
	Use:   "alias <action> [args...]",
	Short: "Manage shell aliases",
	Long: `Add aliases to your shell config or list the ones already there.

Aliases are appended as alias NAME="VALUE" below a "# Added by dotcli"
comment. Adding a name that already exists is an error.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "alias", args, dispatchOptions{})
	},
}

var aliasAddCmd = &cobra.Command{
	Use:   "add <name> <value>",
	Short: "Add an alias",
	Example: `  # Add an alias
  dotcli alias add ll "ls -la"

  See Also: dotcli alias list`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(cmd, "alias", prepend(manager.ActionAdd, args), dispatchOptions{})
	},
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List aliases",
	Long:  `List the aliases in your shell config, numbered in file order.`,
	Example: `  # List aliases
  dotcli alias list

  # Output as JSON
  dotcli alias list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return dispatch(cmd, "alias", []string{manager.ActionList}, dispatchOptions{json: aliasListJSON})
	},
}
