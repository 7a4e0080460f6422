package scaffold

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/contestkit-labs/contestkit/internal/branding"
	clierrors "github.com/contestkit-labs/contestkit/internal/errors"
	"github.com/contestkit-labs/contestkit/internal/options"
	"github.com/contestkit-labs/contestkit/internal/output"
	"github.com/contestkit-labs/contestkit/internal/templates"
)

// Result holds the outcome of a generation.
type Result struct {
	// OutputDir is the working directory the project was written to. It no
	// longer exists unless the generator keeps it.
	OutputDir string
	Archive   string
	// Files are project-relative, slash separated, in the order written.
	Files    []string
	Warnings []string
}

// Generator writes projects to a filesystem.
type Generator struct {
	fs          afero.Fs
	templates   fs.FS
	outputDir   string
	keepDir     bool
	placeholder string
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutputDir sets the directory the project and archive are created in.
func WithOutputDir(dir string) Option {
	return func(g *Generator) { g.outputDir = dir }
}

// WithKeepDir leaves the working directory in place after archiving.
func WithKeepDir(keep bool) Option {
	return func(g *Generator) { g.keepDir = keep }
}

// WithPlaceholder overrides the token replaced by the project name.
func WithPlaceholder(token string) Option {
	return func(g *Generator) { g.placeholder = token }
}

// NewGenerator returns a generator that reads templates from tmpl and writes
// to fsys.
func NewGenerator(fsys afero.Fs, tmpl fs.FS, opts ...Option) *Generator {
	g := &Generator{
		fs:          fsys,
		templates:   tmpl,
		outputDir:   ".",
		placeholder: branding.Placeholder(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes the project described by o, archives it and removes the
// working directory. Any existing project directory or archive of the same
// name is replaced.
func (g *Generator) Generate(o *options.Options) (*Result, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", clierrors.ErrInvalidOptions, err)
	}

	name := o.FormattedName()
	dir := filepath.Join(g.outputDir, name)
	zipPath := filepath.Join(g.outputDir, name+".zip")
	if err := checkLayout(g.outputDir, dir, zipPath); err != nil {
		return nil, fmt.Errorf("%w: %w", clierrors.ErrInvalidOptions, err)
	}

	result := &Result{
		OutputDir: dir,
		Archive:   zipPath,
	}

	for _, p := range []string{dir, zipPath} {
		exists, err := afero.Exists(g.fs, p)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", p, err)
		}
		if !exists {
			continue
		}
		if err := g.fs.RemoveAll(p); err != nil {
			return nil, fmt.Errorf("removing %s: %w", p, err)
		}
		output.Debug("removed previous output", "path", p)
		result.Warnings = append(result.Warnings, fmt.Sprintf("replaced existing %s", p))
	}

	if err := g.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	for _, group := range templates.Groups() {
		files, err := staticFiles(g.templates, group, g.placeholder, name)
		if err != nil {
			return nil, err
		}
		if group == templates.Shared {
			files = append(files, Render(o, SharedDocuments())...)
		}

		for _, f := range files {
			if err := g.write(dir, f); err != nil {
				return nil, err
			}
			result.Files = append(result.Files, f.Path)
		}
		output.Debug("generated group", "group", group.Name, "files", len(files))
	}

	if err := writeArchive(g.fs, dir, zipPath); err != nil {
		return nil, fmt.Errorf("archiving %s: %w", name, err)
	}
	output.Debug("wrote archive", "path", zipPath)

	if !g.keepDir {
		if err := g.fs.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("removing working directory: %w", err)
		}
	}

	return result, nil
}

// checkLayout makes sure the working directory is a direct child of the
// output directory and the archive lies outside it, since both are removed.
func checkLayout(outputDir, dir, zipPath string) error {
	if filepath.Dir(dir) != filepath.Clean(outputDir) {
		return fmt.Errorf("project directory %s is not inside %s", dir, outputDir)
	}
	rel, err := filepath.Rel(dir, zipPath)
	if err != nil || rel == "." || !strings.HasPrefix(rel, "..") {
		return fmt.Errorf("archive %s would be inside %s", zipPath, dir)
	}
	return nil
}

func (g *Generator) write(dir string, f File) error {
	p := filepath.Join(dir, filepath.FromSlash(f.Path))
	if err := g.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Path, err)
	}
	if err := afero.WriteFile(g.fs, p, f.Content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	return nil
}
