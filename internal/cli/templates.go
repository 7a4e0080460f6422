package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/contestkit-labs/contestkit/internal/branding"
	"github.com/contestkit-labs/contestkit/internal/config"
	"github.com/contestkit-labs/contestkit/internal/output"
	"github.com/contestkit-labs/contestkit/internal/templates"
)

var templatesDir string

func init() {
	templatesCmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Directory of templates to list instead of the built-in ones")
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the static template files copied into new projects",
	Long: `List the static template files of each group and the path each is written
to. The ` + branding.Placeholder() + ` token in paths and contents is replaced by the project
name with spaces removed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.Resolve(templatesDir, config.KeyTemplatesDir)
		fsys, err := templates.Source(dir)
		if err != nil {
			return exitError(err)
		}

		out := cmd.OutOrStdout()
		if dir == "" {
			fmt.Fprintln(out, output.StyleDim.Render("built-in templates"))
		} else {
			fmt.Fprintln(out, output.StyleDim.Render(dir))
		}

		for _, group := range templates.Groups() {
			files, err := templates.ListFiles(fsys, group)
			if err != nil {
				return exitError(err)
			}

			fmt.Fprintf(out, "\n%s (%d)\n", output.StyleNoun.Render(group.Name), len(files))
			for _, rel := range files {
				fmt.Fprintf(out, "  %-40s -> %s\n", rel, templates.OutputPath(group, rel))
			}
		}
		return nil
	},
}
