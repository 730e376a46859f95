package snap

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

var importFS = fstest.MapFS{
	"header.snap": {Data: []byte("nav \"Site\"\n@import \"nested.snap\"")},
	"nested.snap": {Data: []byte("text \"nested\"")},
	"parts/footer.snap": {Data: []byte("footer \"F\"")},
}

func TestExpandImports(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		want     string
		failures []string
	}{
		{
			name: "Single pass",
			src:  "@import \"header.snap\"\npage \"Home\"",
			want: "nav \"Site\"\n@import \"nested.snap\"\npage \"Home\"",
		},
		{
			name: "Subdirectory and trailing blanks",
			src:  "@import \"parts/footer.snap\"  \nbadge",
			want: "footer \"F\"\nbadge",
		},
		{
			name:     "Missing file",
			src:      "page\n@import \"missing.snap\"",
			want:     "page\n// Failed to import: missing.snap",
			failures: []string{"missing.snap"},
		},
		{
			name: "Indented import is not a directive",
			src:  "  @import \"header.snap\"",
			want: "  @import \"header.snap\"",
		},
		{
			name: "Trailing text is not a directive",
			src:  "@import \"header.snap\" now",
			want: "@import \"header.snap\" now",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := expandImports(tt.src, FSResolver(importFS))
			if got != tt.want {
				t.Errorf("expandImports() = %q, want %q", got, tt.want)
			}
			if len(diags) != len(tt.failures) {
				t.Fatalf("diagnostics = %v, want %d", diags, len(tt.failures))
			}
			for i, d := range diags {
				var ie *ImportError
				if !errors.As(d, &ie) {
					t.Fatalf("diagnostic %T is not an *ImportError", d)
				}
				if ie.Path != tt.failures[i] {
					t.Errorf("ImportError.Path = %s, want %s", ie.Path, tt.failures[i])
				}
				if !errors.Is(d, fs.ErrNotExist) {
					t.Errorf("ImportError does not wrap fs.ErrNotExist: %v", d)
				}
			}
		})
	}
}

func TestImportErrorLine(t *testing.T) {
	doc := ParseWith("page\ncard\n@import \"nope.snap\"", Options{Resolver: FSResolver(importFS)})

	if len(doc.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v", doc.Diagnostics)
	}
	var ie *ImportError
	if !errors.As(doc.Diagnostics[0], &ie) || ie.Line != 3 {
		t.Errorf("diagnostic = %v, want an ImportError at line 3", doc.Diagnostics[0])
	}
}

func TestDirResolver(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "nav.snap"), []byte("nav \"Shared\"\n  link \"Home\" href=/"), 0664); err != nil {
		t.Fatal(err)
	}

	doc := Parse("@import \"nav.snap\"\nhero \"Hi\"", dir)

	if got := outline(doc.Root); got != "nav(link),hero" {
		t.Errorf("outline = %s", got)
	}
	if len(doc.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", doc.Diagnostics)
	}
}
