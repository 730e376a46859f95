package site

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		pages string
	}{
		{
			name:  "Pages directory",
			files: map[string]string{"pages/index.snap": "text"},
			pages: "pages",
		},
		{
			name:  "Project root",
			files: map[string]string{"index.snap": "text"},
			pages: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files)

			cfg, err := LoadConfig(dir)
			if err != nil {
				t.Fatal(err)
			}

			if want := filepath.Join(dir, tt.pages); cfg.PagesDir != want {
				t.Errorf("PagesDir = %s, want %s", cfg.PagesDir, want)
			}
			if want := filepath.Join(dir, DefaultOutDir); cfg.OutDir != want {
				t.Errorf("OutDir = %s, want %s", cfg.OutDir, want)
			}
			if cfg.Port != DefaultPort || cfg.Addr() != ":3000" {
				t.Errorf("Port = %d, Addr = %s", cfg.Port, cfg.Addr())
			}
			if cfg.CodeStyle != DefaultCodeStyle {
				t.Errorf("CodeStyle = %s", cfg.CodeStyle)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		ConfigFile: "pages: src\nout: public\nport: \"4000\"\ncodeStyle: monokai\n",
	})

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.PagesDir != filepath.Join(dir, "src") {
		t.Errorf("PagesDir = %s", cfg.PagesDir)
	}
	if cfg.OutDir != filepath.Join(dir, "public") {
		t.Errorf("OutDir = %s", cfg.OutDir)
	}
	if cfg.Port != 4000 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.CodeStyle != "monokai" {
		t.Errorf("CodeStyle = %s", cfg.CodeStyle)
	}
}

func TestLoadConfigInvalidPort(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{ConfigFile: "port: \"http\"\n"})

	if _, err := LoadConfig(dir); err == nil {
		t.Errorf("LoadConfig() accepted an invalid port")
	}
}
