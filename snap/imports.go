package snap

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hesusruiz/snap/sliceedit"
)

// A Resolver returns the contents of the file named by an @import directive.
type Resolver func(name string) ([]byte, error)

// DirResolver resolves relative import paths against baseDir.
// Absolute paths are read as they are.
func DirResolver(baseDir string) Resolver {
	return func(name string) ([]byte, error) {
		if !filepath.IsAbs(name) {
			name = filepath.Join(baseDir, name)
		}
		return os.ReadFile(name)
	}
}

// FSResolver resolves import paths inside fsys.
func FSResolver(fsys fs.FS) Resolver {
	return func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, path.Clean(strings.TrimPrefix(name, "/")))
	}
}

var reImport = regexp.MustCompile(`(?m)^@import[ \t]+"([^"]+)"[ \t\r]*$`)

// expandImports replaces every @import line of src with the contents of the named file.
// All replacements are computed against the original text, so imported text is never
// scanned for further imports. A file that can not be read is replaced by a comment
// line and reported in the returned diagnostics.
func expandImports(src string, resolve Resolver) (string, []error) {
	matches := reImport.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src, nil
	}

	var diags []error
	buf := sliceedit.NewBuffer([]byte(src))

	for _, m := range matches {
		start, end := m[0], m[1]
		name := src[m[2]:m[3]]

		data, err := resolve(name)
		if err != nil {
			diags = append(diags, &ImportError{
				Path: name,
				Line: strings.Count(src[:start], "\n") + 1,
				Err:  err,
			})
			buf.Replace(start, end, "// Failed to import: "+name)
			continue
		}
		buf.Replace(start, end, string(data))
	}

	return buf.String(), diags
}
