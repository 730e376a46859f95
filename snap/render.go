package snap

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// renderContext is the mutable state of one Render call.
// Nothing in it is shared between calls, so pages can be rendered concurrently.
type renderContext struct {
	doc  *Document
	vars map[string]string
	log  *zap.SugaredLogger

	// counter mints the ids of stateful widgets and the media-query classes
	counter int

	scripts ByteRenderer
	styles  ByteRenderer

	// expanding holds the components being expanded, outermost first
	expanding []string

	codeStyle string
}

func newRenderContext(doc *Document) *renderContext {
	rc := &renderContext{
		doc:  doc,
		vars: doc.Variables(),
		log:  doc.logger(),
	}
	rc.codeStyle = doc.Meta.String("code-style", doc.CodeStyle)
	if rc.codeStyle == "" {
		rc.codeStyle = "github"
	}
	return rc
}

func (rc *renderContext) nextID(prefix string) string {
	rc.counter++
	return prefix + "_" + strconv.Itoa(rc.counter)
}

func (rc *renderContext) nextClass() string {
	rc.counter++
	return "b" + strconv.Itoa(rc.counter)
}

var reVarRef = regexp.MustCompile(`\{(\w+)\}`)

// substitute replaces {name} placeholders with declared variables.
// Unknown names are left for client-side binding.
func (rc *renderContext) substitute(text string) string {
	if len(rc.vars) == 0 || !strings.Contains(text, "{") {
		return text
	}
	return reVarRef.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := rc.vars[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

// element is the per-node data shared by all rendering rules.
type element struct {
	n *Node

	content   string // content after variable substitution
	style     string // inline declarations
	styleAttr string // ` style="..."` or empty
	anim      string // animation classes with a leading blank
	media     string // media-query class with a leading blank
	children  []string
}

// classes returns the animation and media classes to append to the main class attribute.
func (e *element) classes() string {
	return e.anim + e.media
}

func (e *element) childHTML() string {
	return strings.Join(e.children, "\n")
}

func (e *element) contentOr(def string) string {
	if e.content == "" {
		return def
	}
	return e.content
}

type renderFunc func(rc *renderContext, br *ByteRenderer, e *element)

// renderers maps each kind to its rendering rule. Kinds without an entry use renderGeneric.
var renderers map[Kind]renderFunc

// childlessKinds never place their children in the output, so children are not rendered.
var childlessKinds = map[Kind]bool{
	ImageKind: true, InputKind: true, DividerKind: true, SpacerKind: true,
	VideoKind: true, EmbedKind: true, ToggleKind: true, CounterKind: true,
	ToastKind: true, StatKind: true, CountdownKind: true, UseKind: true,
	ChartKind: true, ProgressKind: true,
}

func init() {
	renderers = map[Kind]renderFunc{
		RootKind:        renderRoot,
		PageKind:        renderPage,
		LayoutKind:      renderLayout,
		NavKind:         renderNav,
		HeroKind:        renderHero,
		SectionKind:     renderSection,
		HeadingKind:     renderHeading,
		TextKind:        renderText,
		CardKind:        renderCard,
		GridKind:        renderGrid,
		RowKind:         renderRow,
		ColumnKind:      renderColumn,
		ButtonKind:      renderButton,
		LinkKind:        renderLink,
		ImageKind:       renderImage,
		FormKind:        renderForm,
		InputKind:       renderInput,
		TableKind:       renderTable,
		StatKind:        renderStat,
		BadgeKind:       renderBadge,
		DividerKind:     renderDivider,
		SpacerKind:      renderSpacer,
		FooterKind:      renderFooter,
		ListKind:        renderList,
		ItemKind:        renderItem,
		QuoteKind:       renderQuote,
		CodeKind:        renderCode,
		VideoKind:       renderVideo,
		EmbedKind:       renderEmbed,
		ChartKind:       renderChart,
		TabsKind:        renderTabs,
		AccordionKind:   renderAccordion,
		ModalKind:       renderModal,
		DropdownKind:    renderDropdown,
		ToggleKind:      renderToggle,
		CounterKind:     renderCounter,
		ToastKind:       renderToast,
		CarouselKind:    renderCarousel,
		PricingKind:     renderPricing,
		TestimonialKind: renderTestimonial,
		TimelineKind:    renderTimeline,
		ProgressKind:    renderProgress,
		AlertKind:       renderAlert,
		CountdownKind:   renderCountdown,
		UseKind:         renderUse,
		MarkdownKind:    renderMarkdown,
		DiagramKind:     renderDiagram,
	}
}

// renderNode renders a node and its subtree. Children are rendered before the
// node itself, so their ids and scripts come first.
func (rc *renderContext) renderNode(n *Node) string {
	e := &element{
		n:       n,
		content: rc.substitute(n.Content),
		style:   InlineStyle(n.Styles),
	}
	if e.style != "" {
		e.styleAttr = ` style="` + e.style + `"`
	}
	if len(n.Animations) > 0 {
		e.anim = " snap-" + strings.Join(n.Animations, " snap-")
	}

	if !childlessKinds[n.Kind] && !n.IsRawText() {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			e.children = append(e.children, rc.renderNode(c))
		}
	} else if n.FirstChild != nil {
		rc.log.Debugw("children ignored", "kind", n.Kind.String(), "line", n.LineNumber)
	}

	// Media-query keywords can not be inline, so they get a class and a stylesheet rule
	if rules := mediaRules(n.Styles); len(rules) > 0 {
		class := rc.nextClass()
		e.media = " " + class
		for _, r := range rules {
			rc.styles.Render("\n@media ", r.Media, " { .", class, " { ", serializeDecls(r.Decls, "; "), "; } }")
		}
	}

	render, ok := renderers[n.Kind]
	if !ok {
		render = renderGeneric
	}

	var br ByteRenderer
	render(rc, &br, e)

	if key := n.Props["bind"]; key != "" {
		return injectAttr(br.String(), ` data-bind="`+escapeHTML(key)+`"`)
	}
	return br.String()
}

// injectAttr adds attr to the first element tag of html.
func injectAttr(html string, attr string) string {
	for i := 0; i < len(html)-1; i++ {
		if html[i] != '<' || html[i+1] == '!' || html[i+1] == '/' {
			continue
		}
		j := i + 1
		for j < len(html) && html[j] != ' ' && html[j] != '>' && html[j] != '/' {
			j++
		}
		return html[:j] + attr + html[j:]
	}
	return html
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// splitList splits a comma separated property, trimming blanks and dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Containers and text

func renderRoot(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(e.childHTML())
}

func renderPage(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<main class="snap-page`, e.classes(), `"`, e.styleAttr, `>`)
	if e.content != "" {
		br.Render("<h1>", e.content, "</h1>")
	}
	br.Render(e.childHTML(), "</main>")
}

func renderLayout(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-layout`, e.classes(), `"`, e.styleAttr, `>`, e.childHTML(), `</div>`)
}

func renderNav(rc *renderContext, br *ByteRenderer, e *element) {
	brand := e.contentOr(e.n.Prop("brand", "App"))
	br.Render(`<nav class="snap-nav`, e.classes(), `"`, e.styleAttr, `><div class="snap-nav-inner">`)
	br.Render(`<a class="snap-nav-brand" href="/">`, brand, `</a>`)
	br.Render(`<div class="snap-nav-links">`, e.childHTML(), `</div></div></nav>`)
}

func renderHero(rc *renderContext, br *ByteRenderer, e *element) {
	class := "snap-hero"
	if e.n.HasStyle("bg-gradient") {
		class = "snap-hero snap-hero-gradient"
	}
	br.Render(`<section class="`, class, e.classes(), `"`, e.styleAttr, `><div class="snap-hero-inner">`)
	if e.content != "" {
		br.Render(`<h1 class="snap-hero-title">`, e.content, `</h1>`)
	}
	br.Render(e.childHTML(), `</div></section>`)
}

func renderSection(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<section class="snap-section`, e.classes(), `"`, e.styleAttr, `>`)
	if e.content != "" {
		br.Render(`<h2 class="snap-section-title">`, e.content, `</h2>`)
	}
	br.Render(e.childHTML(), `</section>`)
}

func renderHeading(rc *renderContext, br *ByteRenderer, e *element) {
	level := e.n.Prop("level", "2")
	br.Render(`<h`, level, ` class="snap-heading`, e.classes(), `"`, e.styleAttr, `>`, e.content, e.childHTML(), `</h`, level, `>`)
}

func renderText(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<p class="snap-text`, e.classes(), `"`, e.styleAttr, `>`, e.content, e.childHTML(), `</p>`)
}

func renderCard(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-card`, e.classes(), `"`, e.styleAttr, `>`)
	if e.content != "" {
		br.Render(`<h3 class="snap-card-title">`, e.content, `</h3>`)
	}
	br.Render(e.childHTML(), `</div>`)
}

func renderGrid(rc *renderContext, br *ByteRenderer, e *element) {
	cols := e.n.Prop("cols", "3")
	gap := e.n.Prop("gap", "1.5rem")
	br.Render(`<div class="snap-grid`, e.classes(), `" style="--cols:`, cols, `;--gap:`, gap, `;`, e.style, `">`, e.childHTML(), `</div>`)
}

func renderRow(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-row`, e.classes(), `"`, e.styleAttr, `>`, e.childHTML(), `</div>`)
}

func renderColumn(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-column`, e.classes(), `"`, e.styleAttr, `>`, e.childHTML(), `</div>`)
}

func renderButton(rc *renderContext, br *ByteRenderer, e *element) {
	variant := ""
	switch {
	case e.n.HasStyle("secondary"):
		variant = "snap-btn-secondary"
	case e.n.HasStyle("accent"):
		variant = "snap-btn-accent"
	case e.n.HasStyle("danger"):
		variant = "snap-btn-danger"
	}

	label := e.contentOr("Click")
	if href := e.n.Prop("href", e.n.Prop("to", "")); href != "" {
		br.Render(`<a href="`, href, `" class="snap-btn `, variant, e.classes(), `"`, e.styleAttr, `>`, label, e.childHTML(), `</a>`)
		return
	}
	br.Render(`<button class="snap-btn `, variant, e.classes(), `"`, e.styleAttr, `>`, label, e.childHTML(), `</button>`)
}

func renderLink(rc *renderContext, br *ByteRenderer, e *element) {
	href := e.n.Prop("href", e.n.Prop("to", "#"))
	br.Render(`<a href="`, href, `" class="snap-link`, e.classes(), `"`, e.styleAttr, `>`, e.contentOr(e.n.Prop("href", "Link")), e.childHTML(), `</a>`)
}

func renderImage(rc *renderContext, br *ByteRenderer, e *element) {
	src := e.n.Prop("src", e.content)
	alt := e.n.Prop("alt", e.content)
	br.Render(`<img src="`, src, `" alt="`, alt, `" class="snap-image`, e.classes(), `"`, e.styleAttr, ` />`)
}

func renderForm(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<form class="snap-form`, e.classes(), `"`, e.styleAttr, ` onsubmit="event.preventDefault()">`)
	if e.content != "" {
		br.Render(`<h3>`, e.content, `</h3>`)
	}
	br.Render(e.childHTML())

	hasButton := false
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == ButtonKind {
			hasButton = true
			break
		}
	}
	if !hasButton {
		br.Render(`<button class="snap-btn" type="submit">Submit</button>`)
	}
	br.Render(`</form>`)
}

var reBlanks = regexp.MustCompile(`\s+`)

func renderInput(rc *renderContext, br *ByteRenderer, e *element) {
	inputType := e.n.Prop("type", "text")
	label := e.contentOr(e.n.Prop("label", e.n.Prop("name", "")))
	name := e.n.Prop("name", reBlanks.ReplaceAllString(strings.ToLower(label), "_"))
	placeholder := e.n.Prop("placeholder", label)
	br.Render(`<div class="snap-field`, e.media, `"><label class="snap-label">`, label, `</label>`)
	br.Render(`<input type="`, inputType, `" name="`, name, `" placeholder="`, placeholder, `" class="snap-input"`, e.styleAttr, ` /></div>`)
}

func renderTable(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-table-wrap`, e.media, `"><table class="snap-table"`, e.styleAttr, `>`)
	if headers := splitList(e.n.Props["headers"]); len(headers) > 0 {
		br.Render(`<thead><tr>`)
		for _, h := range headers {
			br.Render(`<th>`, h, `</th>`)
		}
		br.Render(`</tr></thead>`)
	}
	br.Render(`<tbody>`, e.childHTML(), `</tbody></table></div>`)
}

func renderStat(rc *renderContext, br *ByteRenderer, e *element) {
	label := e.contentOr(e.n.Prop("label", ""))
	trend := e.n.Props["trend"]
	br.Render(`<div class="snap-stat`, e.classes(), `"`, e.styleAttr, `>`)
	br.Render(`<div class="snap-stat-value">`, e.n.Props["value"], `</div><div class="snap-stat-label">`, label, `</div>`)
	if trend != "" {
		trendClass := ""
		switch {
		case strings.HasPrefix(trend, "+"):
			trendClass = "up"
		case strings.HasPrefix(trend, "-"):
			trendClass = "down"
		}
		br.Render(`<div class="snap-stat-trend `, trendClass, `">`, trend, `</div>`)
	}
	br.Render(`</div>`)
}

func renderBadge(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<span class="snap-badge`, e.classes(), `"`, e.styleAttr, `>`, e.content, e.childHTML(), `</span>`)
}

func renderDivider(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<hr class="snap-divider`, e.media, `"`, e.styleAttr, ` />`)
}

func renderSpacer(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-spacer`, e.media, `" style="height:`, e.n.Prop("size", "2rem"), `"></div>`)
}

func renderFooter(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<footer class="snap-footer`, e.classes(), `"`, e.styleAttr, `>`)
	if e.content != "" {
		br.Render(`<p>`, e.content, `</p>`)
	}
	br.Render(e.childHTML(), `</footer>`)
}

func renderList(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<ul class="snap-list`, e.classes(), `"`, e.styleAttr, `>`, e.childHTML(), `</ul>`)
}

func renderItem(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<li class="snap-item`, e.classes(), `"`, e.styleAttr, `>`, e.content, e.childHTML(), `</li>`)
}

func renderQuote(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<blockquote class="snap-quote`, e.classes(), `"`, e.styleAttr, `>`, e.content, e.childHTML(), `</blockquote>`)
}

func renderVideo(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<video class="snap-video`, e.media, `" src="`, e.n.Props["src"], `" controls`, e.styleAttr, `></video>`)
}

func renderEmbed(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<iframe class="snap-embed`, e.media, `" src="`, e.n.Props["src"], `" frameborder="0"`, e.styleAttr, `></iframe>`)
}

// renderGeneric is used by the kinds without a dedicated rule, like avatar and icon.
func renderGeneric(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="`, strings.TrimSpace(e.classes()), `"`, e.styleAttr, `>`, e.content, e.childHTML(), `</div>`)
}
