// Package templates provides the static project template files that are
// copied into every generated project with the name placeholder substituted.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed all:files
var embedded embed.FS

// Suffix is stripped from template file names on output so dotfiles can be
// stored without affecting this repository (".gitignore.tmpl").
const Suffix = ".tmpl"

// Group is a directory of static templates copied together.
type Group struct {
	// Name is the group's directory under the template root.
	Name string

	// Target is the output directory relative to the project root.
	Target string
}

// Fixed group order: top-level files first, then the shared library, then
// the two auxiliary projects.
var (
	Root    = Group{Name: "root", Target: ""}
	Shared  = Group{Name: "shared", Target: "Shared"}
	Console = Group{Name: "console", Target: "Console"}
	WebAPI  = Group{Name: "webapi", Target: "WebAPI"}
)

// Groups returns every template group in generation order.
func Groups() []Group {
	return []Group{Root, Shared, Console, WebAPI}
}

// Source returns the template filesystem. An empty dir selects the embedded
// templates; otherwise dir must contain one subdirectory per group.
func Source(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, "files")
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("checking templates directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// ListFiles returns the template paths of a group, relative to the group
// directory, in lexical order.
func ListFiles(fsys fs.FS, group Group) ([]string, error) {
	var files []string

	err := fs.WalkDir(fsys, group.Name, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, group.Name+"/")
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s templates: %w", group.Name, err)
	}

	return files, nil
}

// OutputPath maps a template path within a group to its path in the
// generated project, before placeholder substitution.
func OutputPath(group Group, rel string) string {
	return path.Join(group.Target, strings.TrimSuffix(rel, Suffix))
}
