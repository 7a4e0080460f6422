package scaffold

import (
	"io/fs"
	"path"
	"strings"

	"github.com/contestkit-labs/contestkit/internal/templates"

	clierrors "github.com/contestkit-labs/contestkit/internal/errors"
)

// required lists the templates every group must provide, relative to the
// group directory. Extra files in a template directory are copied as well.
var required = map[string][]string{
	templates.Root.Name: {
		".vscode/launch.json",
		".vscode/tasks.json",
		".editorconfig",
		".gitignore.tmpl",
		"LICENSE",
		"REPLACE.sln",
	},
	templates.Shared.Name: {
		"Shared.csproj",
		"Exceptions/InputNotFoundException.cs",
	},
	templates.Console.Name: {
		"Console.csproj",
		"Program.cs",
	},
	templates.WebAPI.Name: {
		"WebAPI.csproj",
		"Program.cs",
	},
}

// Substitute replaces every occurrence of placeholder in content with name.
func Substitute(content, placeholder, name string) string {
	return strings.ReplaceAll(content, placeholder, name)
}

// staticFiles reads a template group and returns its files with the
// placeholder substituted in both paths and contents. Required templates
// come first in their listed order, followed by any others lexically.
func staticFiles(fsys fs.FS, group templates.Group, placeholder, name string) ([]File, error) {
	listed, err := templates.ListFiles(fsys, group)
	if err != nil {
		return nil, clierrors.NewTemplateError(group.Name, err)
	}

	present := make(map[string]bool, len(listed))
	for _, rel := range listed {
		present[rel] = true
	}

	order := make([]string, 0, len(listed))
	seen := make(map[string]bool, len(listed))
	for _, rel := range required[group.Name] {
		if !present[rel] {
			return nil, clierrors.NewTemplateError(path.Join(group.Name, rel), fs.ErrNotExist)
		}
		order = append(order, rel)
		seen[rel] = true
	}
	for _, rel := range listed {
		if !seen[rel] {
			order = append(order, rel)
		}
	}

	files := make([]File, 0, len(order))
	for _, rel := range order {
		src := path.Join(group.Name, rel)
		data, err := fs.ReadFile(fsys, src)
		if err != nil {
			return nil, clierrors.NewTemplateError(src, err)
		}

		files = append(files, File{
			Path:    Substitute(templates.OutputPath(group, rel), placeholder, name),
			Content: []byte(Substitute(string(data), placeholder, name)),
		})
	}

	return files, nil
}
