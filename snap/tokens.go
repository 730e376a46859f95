package snap

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// The keyword is the leading bareword of a line
	reKeyword = regexp.MustCompile(`^(\w[\w-]*)\s*(.*)$`)

	// Content is an optional double-quoted string right after the keyword
	reContent = regexp.MustCompile(`^"([^"]*)"(.*)$`)
)

// ParseLine converts one trimmed, non-blank, non-comment source line into a node.
// A line whose leading word is not a known component keyword becomes a text node
// carrying the whole line as its content.
func ParseLine(line string) *Node {
	textNode := func() *Node {
		return &Node{Kind: TextKind, Content: line, HasContent: true, Raw: line}
	}

	match := reKeyword.FindStringSubmatch(line)
	if match == nil {
		return textNode()
	}

	kind, ok := LookupKind(match[1])
	if !ok {
		return textNode()
	}

	n := &Node{Kind: kind, Props: map[string]string{}, Raw: line}
	rest := strings.TrimSpace(match[2])

	if m := reContent.FindStringSubmatch(rest); m != nil {
		n.Content = m[1]
		n.HasContent = true
		rest = strings.TrimSpace(m[2])
	}

	for _, token := range tokenize(rest) {
		if key, value, found := strings.Cut(token, "="); found {
			n.Props[key] = unquote(value)
			continue
		}
		if AnimationKeywords[token] {
			n.Animations = append(n.Animations, token)
			continue
		}
		// Unknown keywords are kept; they simply resolve to no declarations
		n.Styles = append(n.Styles, token)
	}

	// use names its component with a bare word
	if kind == UseKind && !n.HasContent && len(n.Styles) > 0 {
		n.Content = n.Styles[0]
		n.HasContent = true
		n.Styles = append([]string(nil), n.Styles[1:]...)
	}

	return n
}

// tokenize splits s on blanks that are not inside a single or double quoted run.
// The quote characters stay in the token.
func tokenize(s string) []string {
	var tokens []string
	var current strings.Builder
	var quote rune

	for _, c := range s {
		switch {
		case quote != 0:
			current.WriteRune(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			current.WriteRune(c)
		case c == ' ' || c == '\t':
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(c)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// indentation returns the number of leading whitespace characters of line.
// A tab counts as one character.
func indentation(line string) int {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	return utf8.RuneCountInString(line[:len(line)-len(trimmed)])
}

// isComment reports whether a trimmed line is a comment.
func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#")
}
