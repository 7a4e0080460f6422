//go:build integration

package integration_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // CONTESTKIT_HOME
	OutputDir string // where projects are generated
	PresetDir string // preset files written by the test
}

// setupTestEnv creates isolated temp directories and points CONTESTKIT_HOME
// at one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		OutputDir: t.TempDir(),
		PresetDir: t.TempDir(),
	}
	t.Setenv("CONTESTKIT_HOME", env.HomeDir)
	return env
}

// writePreset writes a preset file and returns its path.
func writePreset(t *testing.T, env *testEnv, name, content string) string {
	t.Helper()
	path := filepath.Join(env.PresetDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing preset %s: %v", name, err)
	}
	return path
}

// readZip returns the entries of a zip archive on disk by name.
func readZip(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer zr.Close()

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(data)
	}
	return entries
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist", path)
	}
}

func assertEntryContains(t *testing.T, entries map[string]string, name, substr string) {
	t.Helper()
	content, ok := entries[name]
	if !ok {
		t.Errorf("archive missing %s", name)
		return
	}
	if !strings.Contains(content, substr) {
		t.Errorf("%s should contain %q", name, substr)
	}
}
