package snap

import (
	"strings"
	"testing"
)

func TestInlineStyle(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     string
	}{
		{
			name:     "Center then bold",
			keywords: []string{"center", "bold"},
			want:     "text-align: center; display: flex; justify-content: center; align-items: center; flex-direction: column; font-weight: 700",
		},
		{
			name:     "Later keyword overrides in place",
			keywords: []string{"center", "left"},
			want:     "text-align: left; display: flex; justify-content: center; align-items: center; flex-direction: column",
		},
		{
			name:     "Colliding colors",
			keywords: []string{"primary", "white"},
			want:     "color: #ffffff",
		},
		{
			name:     "Unknown keyword",
			keywords: []string{"sparkly"},
			want:     "",
		},
		{
			name:     "Media keywords are not inline",
			keywords: []string{"bold", "mobile-only", "desktop-only"},
			want:     "font-weight: 700",
		},
		{
			name:     "Duplicates",
			keywords: []string{"rounded", "rounded"},
			want:     "border-radius: var(--radius)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InlineStyle(tt.keywords); got != tt.want {
				t.Errorf("InlineStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMediaRules(t *testing.T) {
	rules := mediaRules([]string{"bold", "desktop-only"})
	if len(rules) != 1 {
		t.Fatalf("mediaRules() = %v", rules)
	}
	if rules[0].Media != "(max-width: 767px)" {
		t.Errorf("Media = %s", rules[0].Media)
	}
}

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		name     string
		meta     Meta
		contains []string
		absent   []string
	}{
		{
			name:     "Default preset",
			meta:     Meta{},
			contains: []string{"--primary: #6366f1;", "family=Inter:wght"},
			absent:   []string{"--card-bg"},
		},
		{
			name:     "Unknown preset",
			meta:     Meta{"theme": {Value: "neon"}},
			absent:   []string{"--primary"},
		},
		{
			name:     "Ocean with color override",
			meta:     Meta{"theme": {Value: "ocean"}, "color-primary": {Value: "#123456"}},
			contains: []string{"--primary: #0ea5e9;", "--primary: #123456;"},
		},
		{
			name:     "Font",
			meta:     Meta{"font": {Value: `"Open Sans"`}},
			contains: []string{"family=Open%20Sans:wght", "--font: 'Open Sans', system-ui, sans-serif;"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := resolveTheme(tt.meta)
			all := th.css + th.fontLink
			for _, s := range tt.contains {
				if !strings.Contains(all, s) {
					t.Errorf("theme does not contain %q:\n%s", s, all)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(all, s) {
					t.Errorf("theme contains %q:\n%s", s, all)
				}
			}
		})
	}
}
