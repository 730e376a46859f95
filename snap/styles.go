package snap

import "strings"

// A Declaration is one CSS property/value pair, with kebab-case property names.
type Declaration struct {
	Property string
	Value    string
}

// A StyleRule is the set of declarations a style keyword stands for.
// Rules with a Media condition only apply at the stylesheet layer, never inline.
type StyleRule struct {
	Media string
	Decls []Declaration
}

func decl(pairs ...string) StyleRule {
	r := StyleRule{}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Decls = append(r.Decls, Declaration{pairs[i], pairs[i+1]})
	}
	return r
}

func media(condition string, pairs ...string) StyleRule {
	r := decl(pairs...)
	r.Media = condition
	return r
}

// StyleKeywords is the fixed table of style keywords.
var StyleKeywords = map[string]StyleRule{
	// Colors
	"primary":   decl("color", "var(--primary)"),
	"secondary": decl("color", "var(--secondary)"),
	"accent":    decl("color", "var(--accent)"),
	"muted":     decl("color", "var(--muted)"),
	"danger":    decl("color", "var(--danger)"),
	"success":   decl("color", "var(--success)"),
	"warning":   decl("color", "var(--warning)"),
	"dark":      decl("color", "var(--dark)"),
	"light":     decl("color", "var(--light)"),
	"white":     decl("color", "#ffffff"),

	// Backgrounds
	"bg-primary":   decl("background-color", "var(--primary)"),
	"bg-secondary": decl("background-color", "var(--secondary)"),
	"bg-accent":    decl("background-color", "var(--accent)"),
	"bg-dark":      decl("background-color", "var(--dark)"),
	"bg-light":     decl("background-color", "var(--bg-light)"),
	"bg-white":     decl("background-color", "#ffffff"),
	"bg-muted":     decl("background-color", "var(--bg-muted)"),
	"bg-gradient":  decl("background", "linear-gradient(135deg, var(--primary), var(--accent))"),

	// Sizing
	"small": decl("font-size", "0.875rem"),
	"large": decl("font-size", "1.25rem"),
	"xl":    decl("font-size", "1.5rem"),
	"xxl":   decl("font-size", "2rem"),
	"huge":  decl("font-size", "3rem"),
	"full":  decl("width", "100%"),
	"half":  decl("width", "50%"),
	"third": decl("width", "33.333%"),

	// Spacing
	"tight":    decl("padding", "0.5rem"),
	"cozy":     decl("padding", "1rem"),
	"spacious": decl("padding", "2rem"),
	"roomy":    decl("padding", "3rem"),

	// Layout
	"center": decl("text-align", "center", "display", "flex", "justify-content", "center", "align-items", "center", "flex-direction", "column"),
	"left":   decl("text-align", "left"),
	"right":  decl("text-align", "right"),
	"inline": decl("display", "inline-flex", "gap", "0.5rem", "align-items", "center"),
	"stack":  decl("display", "flex", "flex-direction", "column", "gap", "1rem"),
	"row":    decl("display", "flex", "flex-direction", "row", "gap", "1rem", "align-items", "center"),
	"wrap":   decl("flex-wrap", "wrap"),

	// Effects
	"rounded":   decl("border-radius", "var(--radius)"),
	"pill":      decl("border-radius", "999px"),
	"shadow":    decl("box-shadow", "var(--shadow)"),
	"shadow-lg": decl("box-shadow", "var(--shadow-lg)"),
	"border":    decl("border", "1px solid var(--border)"),
	"bold":      decl("font-weight", "700"),
	"italic":    decl("font-style", "italic"),
	"uppercase": decl("text-transform", "uppercase", "letter-spacing", "0.05em"),
	"underline": decl("text-decoration", "underline"),
	"clickable": decl("cursor", "pointer"),
	"no-wrap":   decl("white-space", "nowrap"),
	"truncate":  decl("overflow", "hidden", "text-overflow", "ellipsis", "white-space", "nowrap"),

	// Visibility
	"hidden":       decl("display", "none"),
	"mobile-only":  media("(min-width: 768px)", "display", "none"),
	"desktop-only": media("(max-width: 767px)", "display", "none"),
}

// AnimationKeywords is the set of keywords that attach an animation class.
var AnimationKeywords = map[string]bool{
	"fade-in":     true,
	"slide-up":    true,
	"slide-left":  true,
	"slide-right": true,
	"bounce":      true,
	"pulse":       true,
	"shake":       true,
	"hover-grow":  true,
	"hover-glow":  true,
	"hover-lift":  true,
}

// ResolveStyles merges the declarations of the keywords left to right.
// A later keyword overrides the value of a property set by an earlier one, keeping
// the position where the property first appeared. Unknown keywords and keywords with
// a media condition contribute nothing.
func ResolveStyles(keywords []string) []Declaration {
	var merged []Declaration
	index := make(map[string]int)

	for _, kw := range keywords {
		rule, ok := StyleKeywords[kw]
		if !ok || rule.Media != "" {
			continue
		}
		for _, d := range rule.Decls {
			if i, found := index[d.Property]; found {
				merged[i].Value = d.Value
				continue
			}
			index[d.Property] = len(merged)
			merged = append(merged, d)
		}
	}
	return merged
}

// InlineStyle serializes the resolved keywords into the value of a style attribute.
func InlineStyle(keywords []string) string {
	return serializeDecls(ResolveStyles(keywords), "; ")
}

// mediaRules returns the keywords whose rule carries a media condition, in order.
func mediaRules(keywords []string) []StyleRule {
	var rules []StyleRule
	for _, kw := range keywords {
		if rule, ok := StyleKeywords[kw]; ok && rule.Media != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}

func serializeDecls(decls []Declaration, sep string) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, sep)
}
