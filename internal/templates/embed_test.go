package templates

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsOrder(t *testing.T) {
	groups := Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, "root", groups[0].Name)
	assert.Equal(t, "shared", groups[1].Name)
	assert.Equal(t, "console", groups[2].Name)
	assert.Equal(t, "webapi", groups[3].Name)
}

func TestListFiles(t *testing.T) {
	fsys, err := Source("")
	require.NoError(t, err)

	tests := []struct {
		name      string
		group     Group
		wantFiles []string
	}{
		{
			name:  "root",
			group: Root,
			wantFiles: []string{
				".editorconfig",
				".gitignore.tmpl",
				".vscode/launch.json",
				".vscode/tasks.json",
				"LICENSE",
				"REPLACE.sln",
			},
		},
		{
			name:      "shared",
			group:     Shared,
			wantFiles: []string{"Exceptions/InputNotFoundException.cs", "Shared.csproj"},
		},
		{
			name:      "console",
			group:     Console,
			wantFiles: []string{"Console.csproj", "Program.cs"},
		},
		{
			name:      "webapi",
			group:     WebAPI,
			wantFiles: []string{"Program.cs", "WebAPI.csproj", "appsettings.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := ListFiles(fsys, tt.group)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.wantFiles, files)
		})
	}
}

func TestEveryTemplateUsesPlaceholderOrIsGeneric(t *testing.T) {
	fsys, err := Source("")
	require.NoError(t, err)

	withPlaceholder := 0
	for _, g := range Groups() {
		files, err := ListFiles(fsys, g)
		require.NoError(t, err)
		for _, f := range files {
			data, err := fs.ReadFile(fsys, g.Name+"/"+f)
			require.NoError(t, err)
			if strings.Contains(string(data), "REPLACE") {
				withPlaceholder++
			}
		}
	}
	assert.Greater(t, withPlaceholder, 5, "most templates should carry the name placeholder")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, ".gitignore", OutputPath(Root, ".gitignore.tmpl"))
	assert.Equal(t, "REPLACE.sln", OutputPath(Root, "REPLACE.sln"))
	assert.Equal(t, "Shared/Exceptions/InputNotFoundException.cs", OutputPath(Shared, "Exceptions/InputNotFoundException.cs"))
	assert.Equal(t, "WebAPI/appsettings.json", OutputPath(WebAPI, "appsettings.json"))
}

func TestSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "root"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "root", "LICENSE"), []byte("REPLACE"), 0o644))

	fsys, err := Source(dir)
	require.NoError(t, err)

	files, err := ListFiles(fsys, Root)
	require.NoError(t, err)
	assert.Equal(t, []string{"LICENSE"}, files)
}

func TestSourceMissingDirectory(t *testing.T) {
	_, err := Source(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSourceNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := Source(file)
	assert.Error(t, err)
}

func TestRunnersScanOwnAssembly(t *testing.T) {
	fsys, err := Source("")
	require.NoError(t, err)

	for _, path := range []string{"console/Program.cs", "webapi/Program.cs"} {
		data, err := fs.ReadFile(fsys, path)
		require.NoError(t, err, path)

		content := string(data)
		assert.Contains(t, content, "Assembly.GetExecutingAssembly()", path)
		assert.NotContains(t, content, "typeof(ISolutionService).Assembly", path)
	}
}
