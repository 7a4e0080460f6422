package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/contestkit-labs/contestkit/internal/branding"
	"github.com/contestkit-labs/contestkit/internal/config"
	"github.com/contestkit-labs/contestkit/internal/options"
	"github.com/contestkit-labs/contestkit/internal/output"
	"github.com/contestkit-labs/contestkit/internal/preset"
	"github.com/contestkit-labs/contestkit/internal/prompt"
	"github.com/contestkit-labs/contestkit/internal/scaffold"
	"github.com/contestkit-labs/contestkit/internal/templates"
)

var (
	createPreset       string
	createOutputDir    string
	createTemplatesDir string
	createKeepDir      bool
)

// newFs is the filesystem projects are written to.
var newFs = afero.NewOsFs

func init() {
	createCmd.Flags().StringVarP(&createPreset, "preset", "p", "", "YAML file of answers to skip questions for")
	createCmd.Flags().StringVarP(&createOutputDir, "output-dir", "o", "", "Directory to create the project in (default: output_dir setting or .)")
	createCmd.Flags().StringVar(&createTemplatesDir, "templates-dir", "", "Directory of templates to use instead of the built-in ones")
	createCmd.Flags().BoolVar(&createKeepDir, "keep-dir", false, "Keep the project directory next to the archive")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a contest solution project",
	Long: `Ask a series of questions about the contest and generate a .NET solution
for it, archived as <name>.zip. Answers can be supplied ahead of time with a
preset file or CONTESTKIT_PRESET_<KEY> environment variables; only the
remaining questions are asked.

Examples:
  ` + branding.CLIName() + ` create
  ` + branding.CLIName() + ` create --preset contest.yaml --output-dir ~/src
  CONTESTKIT_PRESET_NAME="Code Quest" ` + branding.CLIName() + ` create --keep-dir`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exitError(runCreate(cmd.InOrStdin(), cmd.OutOrStdout()))
	},
}

func runCreate(in io.Reader, out io.Writer) error {
	opts := &options.Options{}

	p := preset.FromEnv()
	if createPreset != "" {
		loaded, err := preset.Load(createPreset)
		if err != nil {
			return err
		}
		output.Info("using preset", "file", loaded.Source)
		p = loaded
	}
	if err := p.Apply(opts); err != nil {
		return err
	}

	prompter := prompt.New(in, out, prompt.WithClearScreen(isTerminal(out)))
	if err := prompter.Collect(opts); err != nil {
		return err
	}

	tmpl, err := templates.Source(config.Resolve(createTemplatesDir, config.KeyTemplatesDir))
	if err != nil {
		return err
	}

	outputDir := config.Resolve(createOutputDir, config.KeyOutputDir)
	if outputDir == "" {
		outputDir = "."
	}

	g := scaffold.NewGenerator(newFs(), tmpl,
		scaffold.WithOutputDir(outputDir),
		scaffold.WithKeepDir(createKeepDir),
	)
	result, err := g.Generate(opts)
	if err != nil {
		return err
	}

	printResult(out, opts, result)
	return nil
}

func printResult(w io.Writer, opts *options.Options, result *scaffold.Result) {
	for _, warning := range result.Warnings {
		output.Warn(warning)
	}

	fmt.Fprintln(w, output.Checkmark(fmt.Sprintf("Created %s (%d files)",
		output.StyleNoun.Render(result.Archive), len(result.Files))))
	if createKeepDir {
		fmt.Fprintf(w, "  project directory kept at %s\n", output.StyleNoun.Render(result.OutputDir))
		for _, f := range result.Files {
			fmt.Fprintf(w, "    %s\n", f)
		}
	}

	name := opts.FormattedName()
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. Unzip %s and open %s.sln\n", filepath.Base(result.Archive), name)
	fmt.Fprintln(w, "  2. Add a class deriving from SolutionService under Console for each puzzle,")
	fmt.Fprintln(w, "     with a parameterless constructor calling base(...) for that puzzle")
	if opts.PrivateInputs.Value() {
		fmt.Fprintln(w, "  3. Download inputs with PuzzleGateway using your session token")
	} else {
		fmt.Fprintln(w, "  3. Put puzzle inputs under Shared/Inputs")
	}
	fmt.Fprintln(w, "  4. Run 'dotnet run --project Console'")
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
