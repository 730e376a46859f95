package site

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFiles creates the files under dir, with their parent directories.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		file := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(file, []byte(content), 0664); err != nil {
			t.Fatal(err)
		}
	}
}

// newProject creates a project with a pages directory and returns its configuration.
func newProject(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"pages/index.snap":      "@title Home\n@import \"nav.snap\"\nhero \"Welcome\"",
		"pages/nav.snap":        "nav \"Site\"\n  link \"About\" href=/about",
		"pages/about.snap":      "@title About\ntext \"About us\"",
		"pages/blog/index.snap": "@title Blog\nlist\n  item \"First post\"",
		"logo.txt":              "LOGO",
		"secret.snap":           "text \"outside the pages\"",
	})

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}
