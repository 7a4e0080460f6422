package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/contestkit-labs/contestkit/internal/branding"
	"github.com/contestkit-labs/contestkit/internal/config"
	clierrors "github.com/contestkit-labs/contestkit/internal/errors"
	"github.com/contestkit-labs/contestkit/internal/output"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates a .NET solution for solving the puzzles of a coding
contest: a shared library that reads and downloads puzzle inputs, a console
runner and a web API, packaged as a zip archive.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.SetupLoggingTo(cmd.ErrOrStderr(), verbose)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// exitError reports err and attaches its exit code so main can return it
// without printing it again.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *clierrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	output.Error(err.Error())
	return &clierrors.ExitError{Code: clierrors.ExitCodeFor(err), Err: err, Printed: true}
}
