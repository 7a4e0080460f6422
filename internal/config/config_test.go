package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := filepath.Join(t.TempDir(), ".contestkit")
	t.Setenv("CONTESTKIT_HOME", dir)
	return dir
}

func TestDirHonoursHomeOverride(t *testing.T) {
	dir := setupHome(t)

	if got := Dir(); got != dir {
		t.Errorf("Dir() = %q, want %q", got, dir)
	}
	if got := FilePath(); got != filepath.Join(dir, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestSetAndGet(t *testing.T) {
	dir := setupHome(t)
	Load()

	if err := Set(KeyOutputDir, "/tmp/projects"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "output_dir: /tmp/projects") {
		t.Errorf("config file = %q", data)
	}

	viper.Reset()
	Load()
	if got := Get(KeyOutputDir); got != "/tmp/projects" {
		t.Errorf("Get() after reload = %q, want /tmp/projects", got)
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set("mirror_url", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestEnvironmentOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("CONTESTKIT_TEMPLATES_DIR", "/srv/templates")
	Load()

	if got := Get(KeyTemplatesDir); got != "/srv/templates" {
		t.Errorf("Get() = %q, want /srv/templates", got)
	}
}

func TestResolve(t *testing.T) {
	setupHome(t)
	t.Setenv("CONTESTKIT_OUTPUT_DIR", "/from/env")
	Load()

	if got := Resolve("/from/flag", KeyOutputDir); got != "/from/flag" {
		t.Errorf("Resolve() with flag = %q", got)
	}
	if got := Resolve("", KeyOutputDir); got != "/from/env" {
		t.Errorf("Resolve() without flag = %q", got)
	}
}
