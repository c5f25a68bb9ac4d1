package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:     "shell",
	Aliases: []string{"where"},
	Short:   "Print the shell config file dotcli edits",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := newDispatcher(cmd, dispatchOptions{noSource: true})
		if err != nil {
			return err
		}
		path, err := d.Locate(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}
