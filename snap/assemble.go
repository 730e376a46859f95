package snap

import "strings"

const globalScripts = `
function snapTabs(id,idx){var el=document.getElementById(id);var btns=el.querySelectorAll('.snap-tabs-nav button');var panels=el.querySelectorAll('.snap-tab-panel');btns.forEach(function(b,i){b.classList.toggle('active',i===idx)});panels.forEach(function(p,i){p.classList.toggle('active',i===idx)});}
document.addEventListener('click',function(e){document.querySelectorAll('.snap-dropdown.open').forEach(function(d){if(!d.contains(e.target))d.classList.remove('open')})});
`

// Render produces the complete HTML document for a parsed page.
// The output depends only on the document, so repeated calls return the same bytes.
func Render(doc *Document) string {
	rc := newRenderContext(doc)
	root := doc.Root
	if root == nil {
		root = &Node{Kind: RootKind}
	}
	body := rc.renderNode(root)
	th := resolveTheme(doc.Meta)

	title := escapeHTML(doc.Title())
	description := doc.Meta.String("description", "")

	var br ByteRenderer

	br.Renderln("<!DOCTYPE html>")
	br.Renderln(`<html lang="en">`)
	br.Renderln("<head>")
	br.Renderln(`  <meta charset="UTF-8">`)
	br.Renderln(`  <meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	br.Renderln("  <title>", title, "</title>")
	if description != "" {
		br.Renderln(`  <meta name="description" content="`, escapeHTML(description), `">`)
	}

	// Social preview
	br.Render(`  <meta property="og:title" content="`, title, `">`)
	if description != "" {
		br.Render("\n", `  <meta property="og:description" content="`, escapeHTML(description), `">`)
	}
	if image := doc.Meta.String("og-image", ""); image != "" {
		br.Render("\n", `  <meta property="og:image" content="`, image, `">`)
	}
	br.Renderln()
	if favicon := doc.Meta.String("favicon", ""); favicon != "" {
		br.Renderln(`  <link rel="icon" href="`, favicon, `">`)
	}

	br.Renderln(`  <link rel="preconnect" href="https://fonts.googleapis.com">`)
	br.Renderln("  ", th.fontLink)
	br.Renderln("  <style>", baseCSS, th.css, th.darkOverrides(), componentCSS, animationCSS, interactiveCSS, rc.styles.Bytes(), "</style>")
	br.Renderln("</head>")
	br.Renderln("<body>")
	br.Renderln(body)
	br.Renderln("<script>", globalScripts, rc.scripts.Bytes(), dataScript(doc.Meta), "</script>")
	br.Renderln("</body>")
	br.Render("</html>")

	return br.String()
}

// dataScript fetches the JSON named by @data and fills every element flagged with data-bind.
func dataScript(meta Meta) string {
	url := strings.TrimPrefix(meta.String("data", ""), "url=")
	if url == "" {
		return ""
	}
	return `
fetch('` + jsString(url) + `').then(r=>r.json()).then(function(data){
  document.querySelectorAll('[data-bind]').forEach(function(el){
    var k=el.getAttribute('data-bind');
    if(data[k]!==undefined)el.textContent=data[k];
  });
}).catch(function(){});`
}
