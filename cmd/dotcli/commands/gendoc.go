package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/dotcli/cmd"
	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/paths"
)

var (
	genDocDir    string
	genDocFormat string
)

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "output format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		if genDocDir == "" {
			return errors.NewUserError(errors.New("output directory is required"), "Pass --dir <path>")
		}
		if err := paths.EnsureDir(genDocDir, 0o755); err != nil {
			return err
		}

		root := c.Root()
		root.DisableAutoGenTag = true

		var err error
		switch genDocFormat {
		case "markdown":
			err = doc.GenMarkdownTreeCustom(root, genDocDir, filePrepender, linkHandler)
		case "man":
			err = doc.GenManTree(root, &doc.GenManHeader{
				Title:   "DOTCLI",
				Section: "1",
				Source:  "dotcli " + cmd.Version,
			}, genDocDir)
		default:
			return errors.NewUserError(errors.Newf("unsupported format %q", genDocFormat), "Use --format markdown or --format man")
		}
		if err != nil {
			return errors.Wrapf(err, "generating %s", genDocFormat)
		}

		fmt.Fprintf(c.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
		return nil
	},
}

// filePrepender adds front matter titled after the command, e.g.
// dotcli_alias_add.md -> "dotcli alias add".
func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	title := strings.ReplaceAll(base, "_", " ")
	return fmt.Sprintf("---\ntitle: %q\ndescription: \"Reference for %s\"\n---\n", title, title)
}

func linkHandler(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + "/"
}
