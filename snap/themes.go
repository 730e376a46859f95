package snap

import (
	"net/url"
	"sort"
	"strings"
)

// DefaultTheme is the preset used when the page does not select one.
const DefaultTheme = "default"

const defaultFontLink = `<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800&display=swap" rel="stylesheet">`

// ThemePresets holds the custom property overrides of each named theme, in emission order.
var ThemePresets = map[string][]Declaration{
	"default": {
		{"--primary", "#6366f1"}, {"--secondary", "#8b5cf6"}, {"--accent", "#06b6d4"},
		{"--dark", "#0f172a"}, {"--light", "#f8fafc"}, {"--bg-light", "#f1f5f9"},
		{"--bg-muted", "#e2e8f0"}, {"--border", "#e2e8f0"}, {"--text", "#1e293b"}, {"--text-light", "#64748b"},
	},
	"dark": {
		{"--primary", "#818cf8"}, {"--secondary", "#a78bfa"}, {"--accent", "#22d3ee"},
		{"--dark", "#f8fafc"}, {"--light", "#0f172a"}, {"--bg-light", "#1e293b"},
		{"--bg-muted", "#334155"}, {"--border", "#334155"}, {"--text", "#f1f5f9"}, {"--text-light", "#94a3b8"},
		{"--card-bg", "#1e293b"}, {"--nav-bg", "#0f172a"},
	},
	"ocean": {
		{"--primary", "#0ea5e9"}, {"--secondary", "#06b6d4"}, {"--accent", "#14b8a6"},
		{"--dark", "#0c4a6e"}, {"--light", "#f0f9ff"}, {"--bg-light", "#e0f2fe"},
		{"--bg-muted", "#bae6fd"}, {"--border", "#7dd3fc"}, {"--text", "#0c4a6e"}, {"--text-light", "#0369a1"},
	},
	"sunset": {
		{"--primary", "#f97316"}, {"--secondary", "#ef4444"}, {"--accent", "#eab308"},
		{"--dark", "#431407"}, {"--light", "#fff7ed"}, {"--bg-light", "#ffedd5"},
		{"--bg-muted", "#fed7aa"}, {"--border", "#fdba74"}, {"--text", "#431407"}, {"--text-light", "#9a3412"},
	},
}

// theme is the result of resolving the theme directives of a page.
type theme struct {
	name     string
	css      string // preset, color and font overrides
	fontLink string
}

func rootBlock(decls []Declaration) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, d := range decls {
		sb.WriteString("  " + d.Property + ": " + d.Value + ";\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// resolveTheme builds the override layers that follow the base stylesheet:
// preset, then @color-X overrides, then the @font override.
func resolveTheme(meta Meta) theme {
	t := theme{
		name:     meta.String("theme", DefaultTheme),
		fontLink: defaultFontLink,
	}

	var sb strings.Builder
	if preset, ok := ThemePresets[t.name]; ok {
		sb.WriteString(rootBlock(preset))
	}

	// Color overrides are emitted in key order so the output does not depend on map iteration
	var colorKeys []string
	for k := range meta {
		if strings.HasPrefix(k, "color-") && !meta[k].Flag {
			colorKeys = append(colorKeys, k)
		}
	}
	sort.Strings(colorKeys)
	if len(colorKeys) > 0 {
		var overrides []Declaration
		for _, k := range colorKeys {
			overrides = append(overrides, Declaration{"--" + strings.TrimPrefix(k, "color-"), meta[k].Value})
		}
		sb.WriteString("\n" + rootBlock(overrides))
	}

	if font := strings.NewReplacer(`"`, "", "'", "").Replace(meta.String("font", "")); font != "" {
		t.fontLink = `<link href="https://fonts.googleapis.com/css2?family=` + encodeURIComponent(font) + `:wght@400;500;600;700;800&display=swap" rel="stylesheet">`
		sb.WriteString("\n:root { --font: '" + font + "', system-ui, sans-serif; }")
	}

	t.css = sb.String()
	return t
}

// darkOverrides returns the structural rules needed by the dark preset, or nothing.
func (t theme) darkOverrides() string {
	if t.name != "dark" {
		return ""
	}
	return darkStructuralCSS
}

// encodeURIComponent escapes s for use inside a URL query value, with spaces as %20.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
