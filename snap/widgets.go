package snap

import "strings"

// Stateful widgets mint an id from the render context and address it from their scripts.

var jsQuoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "</", `<\/`)

// jsString returns s as the body of a single-quoted JavaScript string.
func jsString(s string) string {
	return jsQuoter.Replace(s)
}

func renderTabs(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("tabs")

	br.Render(`<div class="snap-tabs`, e.classes(), `" id="`, id, `"><div class="snap-tabs-nav">`)
	for i, name := range strings.Split(e.content, ",") {
		active := ""
		if i == 0 {
			active = "active"
		}
		br.Render(`<button class="`, active, `" onclick="snapTabs('`, id, `',`, i, `)">`, strings.TrimSpace(name), `</button>`)
	}
	br.Render(`</div>`)

	// Each child is one panel
	for i, child := range e.children {
		if i == 0 {
			br.Render(`<div class="snap-tab-panel active">`, child, `</div>`)
			continue
		}
		br.Render(`<div class="snap-tab-panel">`, child, `</div>`)
	}
	br.Render(`</div>`)
}

func renderAccordion(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("acc")
	br.Render(`<div class="snap-accordion`, e.classes(), `" id="`, id, `">`)
	br.Render(`<div class="snap-accordion-header" onclick="this.parentElement.classList.toggle('open')">`, e.contentOr("Toggle"), `</div>`)
	br.Render(`<div class="snap-accordion-body"><div class="snap-accordion-body-inner">`, e.childHTML(), `</div></div></div>`)
}

func renderModal(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("modal")
	br.Render(`<button class="snap-btn`, e.classes(), `" onclick="document.getElementById('`, id, `').classList.add('open')">`, e.contentOr("Open"), `</button>`)
	br.Render(`<div class="snap-modal-overlay" id="`, id, `" onclick="if(event.target===this)this.classList.remove('open')"><div class="snap-modal-content">`)
	br.Render(`<button class="snap-modal-close" onclick="this.closest('.snap-modal-overlay').classList.remove('open')">&times;</button>`)
	br.Render(e.childHTML(), `</div></div>`)
}

func renderDropdown(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("dd")
	br.Render(`<div class="snap-dropdown`, e.classes(), `" id="`, id, `">`)
	br.Render(`<button class="snap-dropdown-btn" onclick="this.parentElement.classList.toggle('open')">`, e.contentOr("Select"), `</button>`)
	br.Render(`<div class="snap-dropdown-menu">`, e.childHTML(), `</div></div>`)
}

func renderToggle(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("toggle")
	br.Render(`<div class="snap-toggle`, e.classes(), `" id="`, id, `" onclick="this.classList.toggle('on')">`)
	br.Render(`<span class="snap-toggle-label">`, e.content, `</span>`)
	br.Render(`<div class="snap-toggle-track"><div class="snap-toggle-thumb"></div></div></div>`)
}

func renderCounter(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("cnt")
	initial := e.n.Prop("value", "0")

	rc.scripts.Render(`window['`, id, `']=`, initial, `;`)

	display := `document.querySelector('#` + id + ` .snap-counter-value').textContent=`
	br.Render(`<div class="snap-counter`, e.classes(), `" id="`, id, `">`)
	br.Render(`<button onclick="`, display, `--window['`, id, `']">−</button>`)
	br.Render(`<span class="snap-counter-value">`, initial, `</span>`)
	br.Render(`<button onclick="`, display, `++window['`, id, `']">+</button></div>`)
}

func renderToast(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("toast")

	rc.scripts.Render(`window.snapToast_`, id, `=function(){var t=document.getElementById('`, id,
		`');t.classList.add('show');setTimeout(function(){t.classList.remove('show')},3000)};`)

	br.Render(`<button class="snap-btn`, e.classes(), `" onclick="snapToast_`, id, `()">`, e.n.Prop("trigger", "Show Toast"), `</button>`)
	br.Render(`<div class="snap-toast" id="`, id, `">`, e.contentOr("Notification"), `</div>`)
}

func renderCarousel(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("car")

	rc.scripts.Render(`window.snapCarousel_`, id, `={idx:0,len:`, len(e.children), `};`)
	rc.scripts.Render(`function snapCarNav_`, id, `(d){var c=window.snapCarousel_`, id,
		`;c.idx=Math.max(0,Math.min(c.len-1,c.idx+d));document.querySelector('#`, id,
		` .snap-carousel-track').style.transform='translateX(-'+c.idx*100+'%)';}`)

	br.Render(`<div class="snap-carousel`, e.classes(), `" id="`, id, `">`)
	br.Render(`<div class="snap-carousel-track">`, e.childHTML(), `</div>`)
	br.Render(`<button class="snap-carousel-btn snap-carousel-prev" onclick="snapCarNav_`, id, `(-1)">‹</button>`)
	br.Render(`<button class="snap-carousel-btn snap-carousel-next" onclick="snapCarNav_`, id, `(1)">›</button></div>`)
}

func renderCountdown(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("cd")

	unit := func(value, label string) string {
		return `<div class="snap-countdown-unit"><span class="snap-countdown-value">'+` + value +
			`+'</span><span class="snap-countdown-label">` + label + `</span></div>`
	}

	rc.scripts.Render(`(function(){var t=new Date('`, jsString(e.n.Props["to"]), `').getTime();`)
	rc.scripts.Render(`function u(){var n=Date.now(),d=Math.max(0,t-n),dd=Math.floor(d/86400000),`,
		`hh=Math.floor(d%86400000/3600000),mm=Math.floor(d%3600000/60000),ss=Math.floor(d%60000/1000);`)
	rc.scripts.Render(`var e=document.getElementById('`, id, `');if(!e)return;e.innerHTML='`,
		unit("dd", "Days"), unit("hh", "Hours"), unit("mm", "Min"), unit("ss", "Sec"),
		`';if(d>0)requestAnimationFrame(u);}u()})();`)

	br.Render(`<div class="snap-countdown`, e.classes(), `" id="`, id, `"`, e.styleAttr, `></div>`)
}

// Static composite components

func renderPricing(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-pricing`, e.classes(), `"`, e.styleAttr, `>`)
	br.Render(`<div class="snap-pricing-title">`, e.content, `</div>`)
	br.Render(`<div class="snap-pricing-price">`, e.n.Props["price"],
		`<small style="font-size:0.4em;color:var(--text-light)">`, e.n.Prop("period", "/mo"), `</small></div>`)
	if features := splitList(e.n.Props["features"]); len(features) > 0 {
		br.Render(`<ul class="snap-pricing-features">`)
		for _, f := range features {
			br.Render(`<li>`, f, `</li>`)
		}
		br.Render(`</ul>`)
	}
	br.Render(e.childHTML(), `</div>`)
}

func renderTestimonial(rc *renderContext, br *ByteRenderer, e *element) {
	author := e.n.Props["author"]
	br.Render(`<div class="snap-testimonial`, e.classes(), `"`, e.styleAttr, `>`)
	br.Render(`<div class="snap-testimonial-text">`, e.content, e.childHTML(), `</div>`)
	br.Render(`<div class="snap-testimonial-author">`)
	if avatar := e.n.Props["avatar"]; avatar != "" {
		br.Render(`<img class="snap-testimonial-avatar" src="`, avatar, `" alt="`, author, `" />`)
	}
	br.Render(`<div><div class="snap-testimonial-name">`, author, `</div>`)
	br.Render(`<div class="snap-testimonial-role">`, e.n.Props["role"], `</div></div></div></div>`)
}

func renderTimeline(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-timeline`, e.classes(), `"`, e.styleAttr, `>`)
	for _, child := range e.children {
		br.Render(`<div class="snap-timeline-item">`, child, `</div>`)
	}
	br.Render(`</div>`)
}

func renderProgress(rc *renderContext, br *ByteRenderer, e *element) {
	value := e.n.Prop("value", "0")
	br.Render(`<div class="snap-progress`, e.classes(), `"`, e.styleAttr, `>`)
	if e.content != "" {
		br.Render(`<div class="snap-progress-label"><span>`, e.content, `</span><span>`, value, `%</span></div>`)
	}
	br.Render(`<div class="snap-progress-bar"><div class="snap-progress-fill" style="width:`, value, `%"></div></div></div>`)
}

func renderAlert(rc *renderContext, br *ByteRenderer, e *element) {
	br.Render(`<div class="snap-alert snap-alert-`, e.n.Prop("type", "info"), e.classes(), `"`, e.styleAttr, `>`, e.content, e.childHTML(), `</div>`)
}

// renderUse expands a component definition in place. The stored text is parsed
// like page source and rendered with the current context, so ids stay unique.
func renderUse(rc *renderContext, br *ByteRenderer, e *element) {
	name := e.content

	src, ok := rc.doc.Components[name]
	if !ok {
		rc.log.Debugw("unknown component", "name", name, "line", e.n.LineNumber)
		br.Render(`<!-- unknown component: `, name, ` -->`)
		return
	}

	for _, active := range rc.expanding {
		if active == name {
			rc.log.Debugw("recursive component", "name", name, "chain", strings.Join(rc.expanding, " > "))
			br.Render(`<!-- recursive component: `, name, ` -->`)
			return
		}
	}

	rc.expanding = append(rc.expanding, name)
	body := rc.renderNode(parseFragment(rc.doc, src))
	rc.expanding = rc.expanding[:len(rc.expanding)-1]

	br.Render(`<!-- component: `, name, ` -->`)
	br.Render(`<div class="snap-component`, e.classes(), `"`, e.styleAttr, `>`, body, `</div>`)
}

