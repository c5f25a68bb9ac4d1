package commands

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dotcli/internal/config"
	"github.com/thoreinstein/dotcli/internal/editor"
	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/paths"
	"github.com/thoreinstein/dotcli/pkg/fileutil"
)

var configFormat string

// openEditor is replaced in tests.
var openEditor = editor.Open

func init() {
	configListCmd.Flags().StringVar(&configFormat, "format", "yaml", "output format: yaml, toml")
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dotcli configuration",
	Long: `Manage dotcli configuration stored in ~/.config/dotcli/config.yaml.

Every key can also be set with a DOTCLI_ environment variable, e.g.
DOTCLI_AUTO_SOURCE=false or DOTCLI_BACKUP_RETENTION=10.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  dotcli config

  # Get a single value
  dotcli config get candidates

  See Also: dotcli config edit`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List the effective configuration in YAML or TOML format.`,
	Example: `  # List as TOML
  dotcli config list --format toml`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys. List values are printed one per line.`,
	Example: `  # Get backup retention
  dotcli config get backup.retention`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your editor ($EDITOR, then $VISUAL).

If no configuration file exists yet, one is written with the current
values first.`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := marshalConfig(currentConfig(), configFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing output")
}

func marshalConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(cfg)
		return data, errors.Wrap(err, "marshaling config")
	case "toml":
		data, err := toml.Marshal(cfg)
		return data, errors.Wrap(err, "marshaling config")
	default:
		return nil, errors.NewUserError(
			errors.Newf("unsupported format %q", format),
			"Use --format yaml or --format toml",
		)
	}
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	w := cmd.OutOrStdout()

	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	default:
		fmt.Fprintln(w, viper.GetString(key))
	}
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	fs := afero.NewOsFs()

	if _, err := fs.Stat(path); os.IsNotExist(err) {
		if err := writeDefaultConfig(fs, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	}

	return openEditor(cmd.Context(), path)
}

func writeDefaultConfig(fs afero.Fs, path string) error {
	if err := paths.EnsureDir(paths.AppConfigDir(), 0); err != nil {
		return err
	}
	data, err := marshalConfig(currentConfig(), "yaml")
	if err != nil {
		return err
	}
	return errors.Wrap(fileutil.AtomicWriteFile(fs, path, data, 0o600), "writing config file")
}
