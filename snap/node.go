package snap

import (
	"strconv"
	"strings"
)

// A Kind is the component type of a Node.
type Kind uint32

const (
	InvalidKind Kind = iota
	RootKind
	PageKind
	LayoutKind
	NavKind
	CardKind
	GridKind
	ChartKind
	FormKind
	TableKind
	HeadingKind
	TextKind
	ButtonKind
	ImageKind
	LinkKind
	HeroKind
	FooterKind
	SectionKind
	RowKind
	ColumnKind
	InputKind
	SpacerKind
	DividerKind
	ListKind
	ItemKind
	StatKind
	BadgeKind
	AvatarKind
	IconKind
	CodeKind
	QuoteKind
	VideoKind
	EmbedKind
	TabsKind
	AccordionKind
	ModalKind
	DropdownKind
	ToggleKind
	CounterKind
	ToastKind
	CarouselKind
	PricingKind
	TestimonialKind
	TimelineKind
	ProgressKind
	AlertKind
	CountdownKind
	UseKind
	MarkdownKind
	DiagramKind
)

var kindNames = [...]string{
	InvalidKind:     "invalid",
	RootKind:        "root",
	PageKind:        "page",
	LayoutKind:      "layout",
	NavKind:         "nav",
	CardKind:        "card",
	GridKind:        "grid",
	ChartKind:       "chart",
	FormKind:        "form",
	TableKind:       "table",
	HeadingKind:     "heading",
	TextKind:        "text",
	ButtonKind:      "button",
	ImageKind:       "image",
	LinkKind:        "link",
	HeroKind:        "hero",
	FooterKind:      "footer",
	SectionKind:     "section",
	RowKind:         "row",
	ColumnKind:      "column",
	InputKind:       "input",
	SpacerKind:      "spacer",
	DividerKind:     "divider",
	ListKind:        "list",
	ItemKind:        "item",
	StatKind:        "stat",
	BadgeKind:       "badge",
	AvatarKind:      "avatar",
	IconKind:        "icon",
	CodeKind:        "code",
	QuoteKind:       "quote",
	VideoKind:       "video",
	EmbedKind:       "embed",
	TabsKind:        "tabs",
	AccordionKind:   "accordion",
	ModalKind:       "modal",
	DropdownKind:    "dropdown",
	ToggleKind:      "toggle",
	CounterKind:     "counter",
	ToastKind:       "toast",
	CarouselKind:    "carousel",
	PricingKind:     "pricing",
	TestimonialKind: "testimonial",
	TimelineKind:    "timeline",
	ProgressKind:    "progress",
	AlertKind:       "alert",
	CountdownKind:   "countdown",
	UseKind:         "use",
	MarkdownKind:    "markdown",
	DiagramKind:     "diagram",
}

// kindByName maps the keyword at the start of a source line to its Kind.
// The root kind is not reachable from source text.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		if Kind(k) == InvalidKind || Kind(k) == RootKind {
			continue
		}
		m[name] = Kind(k)
	}
	return m
}()

// LookupKind returns the Kind for a component keyword, case-insensitively.
func LookupKind(keyword string) (Kind, bool) {
	k, ok := kindByName[strings.ToLower(keyword)]
	return k, ok
}

// String returns the DSL keyword of the Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Node is one element of the page tree.
type Node struct {
	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node

	Kind       Kind
	Content    string
	HasContent bool
	Props      map[string]string
	Styles     []string
	Animations []string

	// Raw is the trimmed source line and Indentation its leading whitespace width.
	Raw         string
	Indentation int
	LineNumber  int

	// Body holds the verbatim lines nested under a raw-text node, with their indentation
	Body []string
}

// IsRawText reports whether the lines nested under the node are kept verbatim
// instead of being parsed as child nodes.
func (n *Node) IsRawText() bool {
	switch n.Kind {
	case MarkdownKind, DiagramKind:
		return true
	case CodeKind:
		return n.Props["lang"] != ""
	}
	return false
}

// Prop returns the value of a property, or def when the property is absent or empty.
func (n *Node) Prop(key string, def string) string {
	if v := n.Props[key]; v != "" {
		return v
	}
	return def
}

// HasStyle returns true if the node lists the style keyword.
func (n *Node) HasStyle(keyword string) bool {
	for _, s := range n.Styles {
		if s == keyword {
			return true
		}
	}
	return false
}

// Children returns the direct children of the node in source order.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// AppendChild adds child as the last child of n.
//
// It will panic if child already has a parent or siblings.
func (n *Node) AppendChild(child *Node) {
	if child.Parent != nil || child.PrevSibling != nil || child.NextSibling != nil {
		panic("AppendChild called for an already attached child Node")
	}
	last := n.LastChild
	if last != nil {
		last.NextSibling = child
	} else {
		n.FirstChild = child
	}
	n.LastChild = child

	child.Parent = n
	child.PrevSibling = last
}

// String returns a compact representation of the node, for logging.
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString(n.Kind.String())
	if n.HasContent {
		sb.WriteString(" " + strconv.Quote(n.Content))
	}
	if n.LineNumber > 0 {
		sb.WriteString(" (line " + strconv.Itoa(n.LineNumber) + ")")
	}
	return sb.String()
}
