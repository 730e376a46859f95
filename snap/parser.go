package snap

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Options control how a page is parsed.
type Options struct {
	// Filename is only used in diagnostics and logs
	Filename string

	// Resolver reads imported files. The default reads from the current directory.
	Resolver Resolver

	// CodeStyle is the highlighting style for code blocks with a language,
	// unless the page sets @code-style
	CodeStyle string

	Logger *zap.SugaredLogger
}

var (
	reDirective = regexp.MustCompile(`^@([\w-]+)\s*(.*)$`)
	reVar       = regexp.MustCompile(`^(\w+)\s*=\s*"([^"]*)"`)
)

// Parse parses the page source, resolving imports against baseDir.
// It never fails: malformed input degrades into text nodes and diagnostics.
func Parse(src string, baseDir string) *Document {
	return ParseWith(src, Options{Resolver: DirResolver(baseDir)})
}

// ParseWith parses the page source with the given options.
func ParseWith(src string, opts Options) *Document {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	resolve := opts.Resolver
	if resolve == nil {
		resolve = DirResolver(".")
	}

	doc := &Document{
		Root:       &Node{Kind: RootKind},
		Meta:       Meta{},
		Components: map[string]string{},
		Filename:   opts.Filename,
		CodeStyle:  opts.CodeStyle,
		log:        log,
	}

	// Imports are expanded before any line is interpreted
	expanded, diags := expandImports(src, resolve)
	for _, d := range diags {
		log.Debugw("import failed", "file", opts.Filename, "error", d)
	}
	doc.Diagnostics = append(doc.Diagnostics, diags...)

	p := newParser(doc, doc.Root, true)
	p.parse(expanded)

	log.Debugw("parsed", "file", opts.Filename, "components", len(doc.Components), "vars", len(doc.Vars))
	return doc
}

// parseFragment builds the tree of a stored component definition under a new root.
// Directive lines are ignored inside definitions.
func parseFragment(doc *Document, text string) *Node {
	root := &Node{Kind: RootKind}
	p := newParser(doc, root, false)
	p.parse(text)
	return root
}

type frame struct {
	node   *Node
	indent int
}

// parser is the tree builder. It assigns each line to the nearest preceding line
// with a smaller indentation.
type parser struct {
	doc        *Document
	stack      []frame
	directives bool
	log        *zap.SugaredLogger

	// verbatim is the raw-text node collecting the lines indented under it
	verbatim *Node
}

func newParser(doc *Document, root *Node, directives bool) *parser {
	return &parser{
		doc:        doc,
		stack:      []frame{{node: root, indent: -1}},
		directives: directives,
		log:        doc.logger(),
	}
}

func (p *parser) addDiagnostic(line int, msg string) {
	p.doc.Diagnostics = append(p.doc.Diagnostics, &SyntaxError{
		Filename: p.doc.Filename,
		Line:     line,
		Column:   1,
		Msg:      msg,
	})
}

func (p *parser) parse(text string) {
	var defining string
	var defStart int
	var defLines []string
	inDefinition := false

	for i, line := range strings.Split(text, "\n") {
		lineNum := i + 1
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)

		// Everything indented under a raw-text node belongs to its body, blank lines and comments included
		if p.verbatim != nil {
			if len(trimmed) == 0 {
				p.verbatim.Body = append(p.verbatim.Body, "")
				continue
			}
			if indentation(line) > p.verbatim.Indentation {
				p.verbatim.Body = append(p.verbatim.Body, line)
				continue
			}
			p.verbatim = nil
		}

		// Blank lines and comments are dropped everywhere, even inside definitions
		if len(trimmed) == 0 || isComment(trimmed) {
			continue
		}

		if !p.directives {
			if strings.HasPrefix(trimmed, "@") {
				p.log.Debugw("directive ignored inside component", "line", lineNum, "text", trimmed)
				continue
			}
			p.addLine(line, trimmed, lineNum)
			continue
		}

		if strings.HasPrefix(trimmed, "@define ") {
			if inDefinition {
				p.addDiagnostic(defStart, "definition of "+defining+" is not closed with @end")
			}
			defining = strings.TrimSpace(trimmed[len("@define "):])
			defStart = lineNum
			defLines = defLines[:0]
			inDefinition = true
			continue
		}

		if inDefinition {
			if trimmed == "@end" {
				p.doc.Components[defining] = strings.Join(defLines, "\n")
				inDefinition = false
				continue
			}
			// Body lines keep their indentation
			defLines = append(defLines, line)
			continue
		}

		if strings.HasPrefix(trimmed, "@") {
			p.directive(trimmed, lineNum)
			continue
		}

		p.addLine(line, trimmed, lineNum)
	}

	if inDefinition {
		p.addDiagnostic(defStart, "definition of "+defining+" is not closed with @end")
	}
}

func (p *parser) directive(trimmed string, lineNum int) {
	m := reDirective.FindStringSubmatch(trimmed)
	if m == nil {
		return
	}
	key, value := m[1], strings.TrimSpace(m[2])

	if len(value) == 0 {
		p.doc.Meta[key] = Directive{Flag: true}
	} else {
		p.doc.Meta[key] = Directive{Value: value}
	}

	switch {
	case key == "var":
		if vm := reVar.FindStringSubmatch(value); vm != nil {
			p.doc.Vars = append(p.doc.Vars, Var{Name: vm[1], Value: vm[2]})
		}
	case strings.HasPrefix(key, "var-"):
		if len(value) == 0 {
			value = "true"
		}
		p.doc.Vars = append(p.doc.Vars, Var{Name: key[len("var-"):], Value: stripQuotes(value)})
	case key == "end" && len(value) == 0:
		p.addDiagnostic(lineNum, "@end without @define")
	}
}

func (p *parser) addLine(line string, trimmed string, lineNum int) {
	n := ParseLine(trimmed)
	n.Indentation = indentation(line)
	n.LineNumber = lineNum

	if n.Props == nil {
		p.log.Debugw("unknown keyword, kept as text", "line", lineNum, "text", trimmed)
	}

	// Close every open ancestor at the same or deeper indentation
	for len(p.stack) > 1 && p.stack[len(p.stack)-1].indent >= n.Indentation {
		p.stack = p.stack[:len(p.stack)-1]
	}

	p.stack[len(p.stack)-1].node.AppendChild(n)
	p.stack = append(p.stack, frame{node: n, indent: n.Indentation})

	if n.IsRawText() {
		p.verbatim = n
	}
}
