package snap

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	hlhtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	"oss.terrastruct.com/d2/lib/textmeasure"
)

// converters holds one markdown converter per code highlighting style.
var converters sync.Map

// markdownFor returns a GitHub-flavoured converter whose fenced code blocks use style.
func markdownFor(style string) goldmark.Markdown {
	if md, ok := converters.Load(style); ok {
		return md.(goldmark.Markdown)
	}
	md := goldmark.New(goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(highlighting.WithStyle(style)),
	))
	actual, _ := converters.LoadOrStore(style, md)
	return actual.(goldmark.Markdown)
}

// rawText returns the verbatim body of the node, dedented to its least indented line.
// Nodes without a body use their content.
func (rc *renderContext) rawText(n *Node) string {
	lines := n.Body
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return rc.substitute(n.Content)
	}

	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if ind := indentation(l); minIndent < 0 || ind < minIndent {
			minIndent = ind
		}
	}

	var br ByteRenderer
	for i, l := range lines {
		if i > 0 {
			br.Render("\n")
		}
		if strings.TrimSpace(l) == "" {
			continue
		}
		br.Render(string([]rune(l)[minIndent:]))
	}
	return rc.substitute(br.String())
}

// renderCode emits a plain escaped block, or a highlighted one when the node has a lang property.
func renderCode(rc *renderContext, br *ByteRenderer, e *element) {
	lang := e.n.Props["lang"]
	if lang == "" {
		br.Render(`<pre class="snap-code`, e.classes(), `"`, e.styleAttr, `><code>`, escapeHTML(e.content), e.childHTML(), `</code></pre>`)
		return
	}

	text := rc.rawText(e.n)
	highlighted, err := highlight(text, lang, rc.codeStyle)
	if err != nil {
		rc.log.Debugw("highlighting failed", "lang", lang, "line", e.n.LineNumber, "error", err)
		br.Render(`<pre class="snap-code`, e.classes(), `"`, e.styleAttr, `><code>`, escapeHTML(text), `</code></pre>`)
		return
	}
	br.Render(`<pre class="snap-code snap-code-hl`, e.classes(), `"`, e.styleAttr, `><code class="language-`, escapeHTML(lang), `">`, highlighted, `</code></pre>`)
}

// highlight formats source with inline styles, without the surrounding pre element.
func highlight(source string, lang string, styleName string) ([]byte, error) {

	// Determine lexer
	l := lexers.Get(lang)
	if l == nil {
		l = lexers.Analyse(source)
	}
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	// styles.Get falls back to a default style for unknown names
	s := styles.Get(styleName)

	f := hlhtml.New(hlhtml.Standalone(false), hlhtml.PreventSurroundingPre(true))

	it, err := l.Tokenise(nil, source)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := f.Format(&out, s, it); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderMarkdown(rc *renderContext, br *ByteRenderer, e *element) {
	var out bytes.Buffer
	if err := markdownFor(rc.codeStyle).Convert([]byte(rc.rawText(e.n)), &out); err != nil {
		rc.log.Debugw("markdown conversion failed", "line", e.n.LineNumber, "error", err)
		br.Render(`<!-- markdown error: `, commentSafe(err.Error()), ` -->`)
		return
	}
	br.Render(`<div class="snap-markdown`, e.classes(), `"`, e.styleAttr, `>`, out.Bytes(), `</div>`)
}

func renderDiagram(rc *renderContext, br *ByteRenderer, e *element) {
	svg, err := diagramSVG(rc.rawText(e.n))
	if err != nil {
		rc.log.Debugw("diagram failed", "line", e.n.LineNumber, "error", err)
		br.Render(`<!-- diagram error: `, commentSafe(err.Error()), ` -->`)
		return
	}
	br.Render(`<div class="snap-diagram`, e.classes(), `"`, e.styleAttr, `>`, svg, `</div>`)
}

// diagramSVG compiles D2 source into an SVG image.
func diagramSVG(source string) ([]byte, error) {
	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return nil, err
	}

	defaultLayout := func(ctx context.Context, g *d2graph.Graph) error {
		return d2dagrelayout.Layout(ctx, g, nil)
	}
	diagram, _, err := d2lib.Compile(context.Background(), source, &d2lib.CompileOptions{
		Layout: defaultLayout,
		Ruler:  ruler,
	})
	if err != nil {
		return nil, err
	}

	return d2svg.Render(diagram, &d2svg.RenderOpts{
		Pad:     d2svg.DEFAULT_PADDING,
		ThemeID: d2themescatalog.NeutralDefault.ID,
	})
}

// commentSafe makes s safe to place inside an HTML comment.
func commentSafe(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "--", "- -"), "\n", " ")
}
