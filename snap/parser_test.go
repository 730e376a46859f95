package snap

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		kind       Kind
		content    string
		props      map[string]string
		styles     []string
		animations []string
	}{
		{
			name:    "Property round trip",
			line:    `button "Go" href=/x`,
			kind:    ButtonKind,
			content: "Go",
			props:   map[string]string{"href": "/x"},
		},
		{
			name:    "Unknown keyword",
			line:    `foo "bar"`,
			kind:    TextKind,
			content: `foo "bar"`,
		},
		{
			name:       "Styles and animations",
			line:       `card "Hi" shadow fade-in title='a b' bogus`,
			kind:       CardKind,
			content:    "Hi",
			props:      map[string]string{"title": "a b"},
			styles:     []string{"shadow", "bogus"},
			animations: []string{"fade-in"},
		},
		{
			name:  "Case insensitive keyword",
			line:  `GRID cols=2`,
			kind:  GridKind,
			props: map[string]string{"cols": "2"},
		},
		{
			name:  "Quoted value with blanks",
			line:  `chart values="1, 2, 3" labels="a,b,c"`,
			kind:  ChartKind,
			props: map[string]string{"values": "1, 2, 3", "labels": "a,b,c"},
		},
		{
			name:  "Split on first equal sign",
			line:  `link href=/search?q=x`,
			kind:  LinkKind,
			props: map[string]string{"href": "/search?q=x"},
		},
		{
			name:  "Last property wins",
			line:  `image src=a.png src=b.png`,
			kind:  ImageKind,
			props: map[string]string{"src": "b.png"},
		},
		{
			name:    "Not a bareword",
			line:    `<b>raw html</b>`,
			kind:    TextKind,
			content: `<b>raw html</b>`,
		},
		{
			name:    "Bare component name",
			line:    `use Banner`,
			kind:    UseKind,
			content: "Banner",
		},
		{
			name:    "Quoted component name",
			line:    `use "Banner" shadow`,
			kind:    UseKind,
			content: "Banner",
			styles:  []string{"shadow"},
		},
		{
			name:    "Bare component name with styles",
			line:    `use Banner shadow`,
			kind:    UseKind,
			content: "Banner",
			styles:  []string{"shadow"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if got.Kind != tt.kind {
				t.Errorf("ParseLine() kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Content != tt.content {
				t.Errorf("ParseLine() content = %q, want %q", got.Content, tt.content)
			}
			if len(got.Props) != 0 || len(tt.props) != 0 {
				if !reflect.DeepEqual(got.Props, tt.props) {
					t.Errorf("ParseLine() props = %v, want %v", got.Props, tt.props)
				}
			}
			if !reflect.DeepEqual(got.Styles, tt.styles) {
				t.Errorf("ParseLine() styles = %v, want %v", got.Styles, tt.styles)
			}
			if !reflect.DeepEqual(got.Animations, tt.animations) {
				t.Errorf("ParseLine() animations = %v, want %v", got.Animations, tt.animations)
			}
		})
	}
}

// outline prints the kinds of the tree, with children in parentheses.
func outline(n *Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s := c.Kind.String()
		if c.FirstChild != nil {
			s += "(" + outline(c) + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ",")
}

func TestParseIndentation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "Nested layout",
			src: `layout
  nav "N"
    link "A"
    link "B"
  section "S"
    card "C"
      text "T"
  footer "F"`,
			want: "layout(nav(link,link),section(card(text)),footer)",
		},
		{
			name: "Uneven dedent",
			src: `card "A"
    text "x"
  text "y"
badge "b"`,
			want: "card(text,text),badge",
		},
		{
			name: "Tabs count as one",
			src:  "list\n\titem \"a\"\n\titem \"b\"",
			want: "list(item,item)",
		},
		{
			name: "Blank lines and comments",
			src: `row

  // a comment
  # another comment
  column
  column`,
			want: "row(column,column)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := ParseWith(tt.src, Options{})
			if got := outline(doc.Root); got != tt.want {
				t.Errorf("outline = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseSiblingOrder(t *testing.T) {
	doc := ParseWith("grid\n  card \"1\"\n  card \"2\"\n  card \"3\"", Options{})

	var got []string
	for _, c := range doc.Root.FirstChild.Children() {
		got = append(got, c.Content)
	}
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}
}

func TestParseDirectives(t *testing.T) {
	src := `@title My Page
@standalone
@var name="World"
@var-site 'Snap'
// comment
@define Greeting
  text "Hello {name}"
  # dropped
@end
page
  use Greeting`

	doc := ParseWith(src, Options{})

	if got := doc.Meta["title"]; got != (Directive{Value: "My Page"}) {
		t.Errorf("title = %+v", got)
	}
	if got := doc.Meta["standalone"]; got != (Directive{Flag: true}) {
		t.Errorf("standalone = %+v", got)
	}
	if got := doc.Meta.String("standalone", "def"); got != "def" {
		t.Errorf("Meta.String() on a flag = %q, want the default", got)
	}

	wantVars := []Var{{Name: "name", Value: "World"}, {Name: "site", Value: "Snap"}}
	if !reflect.DeepEqual(doc.Vars, wantVars) {
		t.Errorf("Vars = %+v, want %+v", doc.Vars, wantVars)
	}

	wantComponents := map[string]string{"Greeting": `  text "Hello {name}"`}
	if !reflect.DeepEqual(doc.Components, wantComponents) {
		t.Errorf("Components = %q, want %q", doc.Components, wantComponents)
	}

	if got := outline(doc.Root); got != "page(use)" {
		t.Errorf("outline = %s", got)
	}
	if len(doc.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", doc.Diagnostics)
	}
}

func TestParseAllVarsKept(t *testing.T) {
	doc := ParseWith("@var a=\"1\"\n@var b=\"2\"\n@var a=\"3\"", Options{})

	if len(doc.Vars) != 3 {
		t.Fatalf("Vars = %+v, want 3 entries", doc.Vars)
	}
	vars := doc.Variables()
	if vars["a"] != "3" || vars["b"] != "2" {
		t.Errorf("Variables() = %v", vars)
	}
}

func TestParseUnclosedDefinition(t *testing.T) {
	doc := ParseWith("@define Card\n  card \"x\"\n", Options{Filename: "page.snap"})

	if _, ok := doc.Components["Card"]; ok {
		t.Errorf("unclosed definition was stored")
	}
	if len(doc.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want one", doc.Diagnostics)
	}
	var se *SyntaxError
	if !errors.As(doc.Diagnostics[0], &se) {
		t.Fatalf("diagnostic %T is not a *SyntaxError", doc.Diagnostics[0])
	}
	if se.Line != 1 || se.Filename != "page.snap" {
		t.Errorf("SyntaxError = %+v", se)
	}
}

func TestParseVerbatimBody(t *testing.T) {
	src := `markdown
  # Title

  Some *text*
text "after"`

	doc := ParseWith(src, Options{})

	if got := outline(doc.Root); got != "markdown,text" {
		t.Fatalf("outline = %s", got)
	}
	want := []string{"  # Title", "", "  Some *text*"}
	if got := doc.Root.FirstChild.Body; !reflect.DeepEqual(got, want) {
		t.Errorf("Body = %q, want %q", got, want)
	}
}

func TestParseCodeWithoutLangKeepsChildren(t *testing.T) {
	doc := ParseWith("code \"x\"\n  text \"inner\"", Options{})

	if got := outline(doc.Root); got != "code(text)" {
		t.Errorf("outline = %s", got)
	}
}

func TestLookupKind(t *testing.T) {
	if k, ok := LookupKind("Modal"); !ok || k != ModalKind {
		t.Errorf("LookupKind(Modal) = %v, %v", k, ok)
	}
	if _, ok := LookupKind("root"); ok {
		t.Errorf("root must not be reachable from source")
	}
	if got := CountdownKind.String(); got != "countdown" {
		t.Errorf("String() = %s", got)
	}
}

func TestAppendChildAttached(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("AppendChild did not panic for an attached child")
		}
	}()
	a, b, c := &Node{}, &Node{}, &Node{}
	a.AppendChild(c)
	b.AppendChild(c)
}
