// Package site turns a directory of .snap pages into a website: it builds static
// HTML, serves pages compiled on the fly with hot reload, and serves built output.
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hesusruiz/vcutils/yaml"
)

// ConfigFile is the optional project configuration, looked up in the project directory.
const ConfigFile = "snap.yaml"

const (
	DefaultOutDir    = "dist"
	DefaultPort      = 3000
	DefaultCodeStyle = "github"
)

// Config holds the resolved locations and settings of a project.
// All directories are absolute.
type Config struct {
	ProjectDir string
	PagesDir   string
	OutDir     string
	Port       int
	CodeStyle  string
}

// LoadConfig reads snap.yaml from projectDir, if present, and fills in the defaults.
// The pages directory defaults to projectDir/pages when it exists, and to projectDir otherwise.
func LoadConfig(projectDir string) (*Config, error) {
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ProjectDir: projectDir,
		OutDir:     filepath.Join(projectDir, DefaultOutDir),
		Port:       DefaultPort,
		CodeStyle:  DefaultCodeStyle,
	}

	pages := "pages"
	if info, err := os.Stat(filepath.Join(projectDir, pages)); err != nil || !info.IsDir() {
		pages = ""
	}

	configFile := filepath.Join(projectDir, ConfigFile)
	if _, err := os.Stat(configFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", configFile, err)
		}
		cfg.PagesDir = filepath.Join(projectDir, pages)
		return cfg, nil
	}

	y, err := yaml.ParseYamlFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFile, err)
	}

	cfg.PagesDir = filepath.Join(projectDir, y.String("pages", pages))
	cfg.OutDir = filepath.Join(projectDir, y.String("out", DefaultOutDir))
	cfg.CodeStyle = y.String("codeStyle", DefaultCodeStyle)

	if port := y.String("port", ""); port != "" {
		cfg.Port, err = strconv.Atoi(port)
		if err != nil || cfg.Port <= 0 {
			return nil, fmt.Errorf("%s: invalid port %q", configFile, port)
		}
	}

	return cfg, nil
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
