package snap

import (
	"strings"

	"go.uber.org/zap"
)

// A Directive is the value of an @name line. Flag is set when the line has no value.
type Directive struct {
	Value string
	Flag  bool
}

// Meta holds the page directives, keyed by directive name.
type Meta map[string]Directive

// String returns the value of the directive, or def if it is absent or a bare flag.
func (m Meta) String(key string, def string) string {
	d, ok := m[key]
	if !ok || d.Flag {
		return def
	}
	return d.Value
}

// A Var is one template variable declared with @var or @var-NAME.
type Var struct {
	Name  string
	Value string
}

// Document is the result of parsing a page.
type Document struct {
	Root *Node
	Meta Meta

	// Components maps a definition name to the raw text between @define and @end
	Components map[string]string

	// Vars lists the template variables in declaration order
	Vars []Var

	// Diagnostics collects non-fatal problems, like imports that could not be read
	Diagnostics []error

	Filename  string
	CodeStyle string

	log *zap.SugaredLogger
}

// Variables returns the substitution table. A later declaration of a name wins.
func (doc *Document) Variables() map[string]string {
	vars := make(map[string]string, len(doc.Vars))
	for _, v := range doc.Vars {
		vars[v.Name] = v.Value
	}
	return vars
}

// Title returns the page title.
func (doc *Document) Title() string {
	return doc.Meta.String("title", "Snap App")
}

func (doc *Document) logger() *zap.SugaredLogger {
	if doc.log == nil {
		return zap.NewNop().Sugar()
	}
	return doc.log
}

// Compile parses src, resolving imports against baseDir, and renders the page.
func Compile(src string, baseDir string) string {
	return Render(Parse(src, baseDir))
}

// CompileWith is like Compile with explicit parse options.
func CompileWith(src string, opts Options) (string, *Document) {
	doc := ParseWith(src, opts)
	return Render(doc), doc
}

// stripQuotes removes a leading and a trailing quote character, independently.
func stripQuotes(s string) string {
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "'") {
		s = s[1:]
	}
	if strings.HasSuffix(s, `"`) || strings.HasSuffix(s, "'") {
		s = s[:len(s)-1]
	}
	return s
}
