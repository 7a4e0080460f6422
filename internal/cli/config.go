package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/contestkit-labs/contestkit/internal/config"
	"github.com/contestkit-labs/contestkit/internal/output"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.contestkit/config.yaml.

Keys:
  output_dir     directory new projects are created in (default: current directory)
  templates_dir  directory of templates used instead of the built-in ones`,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return exitError(fmt.Errorf("setting config key %q: %w", key, err))
		}
		output.Info("saved setting", "file", config.FilePath())
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a configuration value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting and its value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, output.StyleDim.Render(config.FilePath()))
		for _, key := range config.Keys() {
			value := config.Get(key)
			if value == "" {
				value = output.StyleDim.Render("(unset)")
			}
			fmt.Fprintf(out, "%s%s %s\n", key, strings.Repeat(" ", 14-len(key)), value)
		}
		return nil
	},
}
