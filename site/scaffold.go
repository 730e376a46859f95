package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultProjectName is the directory created by Init when no name is given.
const DefaultProjectName = "my-snap-app"

// starterFiles are the pages of a new project, in creation order.
var starterFiles = []struct {
	name    string
	content string
}{
	{"index.snap", `@title My Snap App
@description Built with Snap 🫰

layout
  nav "My App"
    link "Home" href=/
    link "About" href=/about

  hero "Welcome to Snap 🫰" bg-gradient
    text "Build beautiful websites with minimal syntax. No CSS required."
    button "Get Started" href=/docs

  section "Features"
    grid cols=3
      card "Lightning Fast"
        text "Zero config, instant results. Just describe your page."
      card "LLM Native"
        text "Designed for AI. Generate full pages in ~100 tokens."
      card "Beautiful Defaults"
        text "Professional design out of the box. No styling needed."

  footer "Built with Snap 🫰"
`},
	{"about.snap", `@title About

layout
  nav "My App"
    link "Home" href=/
    link "About" href=/about

  section "About"
    text "This site was built with Snap, the LLM-native web framework."
    text "Describe your website, don't code it."

  footer "Built with Snap 🫰"
`},
}

// Init creates dir, if needed, and writes the starter pages into it.
// Existing files with the same names are overwritten. It returns the files written.
func Init(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var written []string
	for _, f := range starterFiles {
		file := filepath.Join(dir, f.name)
		if err := os.WriteFile(file, []byte(f.content), 0664); err != nil {
			return written, fmt.Errorf("creating project: %w", err)
		}
		written = append(written, file)
	}
	return written, nil
}
