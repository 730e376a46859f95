package snap

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var chartColors = []string{"#6366f1", "#8b5cf6", "#06b6d4", "#22c55e", "#f59e0b", "#ef4444", "#ec4899", "#14b8a6"}

// A Slice is one sector of a pie chart, with angles in radians.
type Slice struct {
	Start float64
	Sweep float64
	Mid   float64
}

// PieSlices lays out the values as consecutive sectors starting at twelve o'clock.
// Each sweep is proportional to the share of its value in the total.
func PieSlices(values []float64) []Slice {
	total := 0.0
	for _, v := range values {
		total += v
	}

	slices := make([]Slice, 0, len(values))
	angle := -math.Pi / 2
	for _, v := range values {
		sweep := v / total * 2 * math.Pi
		slices = append(slices, Slice{Start: angle, Sweep: sweep, Mid: angle + sweep/2})
		angle += sweep
	}
	return slices
}

// ChartMax returns the largest value, never less than 1.
// Like Math.max, the result is NaN when any value is NaN.
func ChartMax(values []float64) float64 {
	max := 1.0
	for _, v := range values {
		if math.IsNaN(v) {
			return math.NaN()
		}
		if v > max {
			max = v
		}
	}
	return max
}

// AxisLadder returns the labels of the five gridlines, at 0, 1/4, 1/2, 3/4 and 1 of max.
func AxisLadder(max float64) [5]float64 {
	var ladder [5]float64
	for i := range ladder {
		// Math.round rounds halves up
		ladder[i] = math.Floor(max*float64(i)/4 + 0.5)
	}
	return ladder
}

var reLeadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// parseNumber reads the longest numeric prefix of s, as parseFloat does in a browser.
// Text without a numeric prefix is NaN.
func parseNumber(s string) float64 {
	m := reLeadingNumber.FindString(strings.TrimSpace(s))
	switch m {
	case "":
		return math.NaN()
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	// Out of range exponents are reported as an error, with ±Inf as the value
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// jsNumber formats f as a JavaScript numeric literal.
func jsNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func jsNumbers(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = jsNumber(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func jsStrings(values []string) string {
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func renderChart(rc *renderContext, br *ByteRenderer, e *element) {
	id := rc.nextID("chart")
	chartType := e.n.Prop("type", "bar")

	var labels []string
	var values []float64
	for _, l := range strings.Split(e.n.Props["labels"], ",") {
		labels = append(labels, strings.TrimSpace(l))
	}
	for _, v := range strings.Split(e.n.Props["values"], ",") {
		values = append(values, parseNumber(v))
	}

	rc.scripts.Render(chartScript(id, chartType, labels, values))

	br.Render(`<div class="snap-chart`, e.classes(), `"`, e.styleAttr, `>`)
	if e.content != "" {
		br.Render(`<h3>`, e.content, `</h3>`)
	}
	br.Render(`<canvas id="`, id, `" height="`, e.n.Prop("height", "300"), `"></canvas></div>`)
}

// chartScript returns the canvas drawing code for one chart.
// Geometry that depends only on the data is computed here; the canvas width is only
// known in the browser.
func chartScript(id string, chartType string, labels []string, values []float64) string {
	var br ByteRenderer

	height := "300"
	if chartType == "pie" {
		height = "Math.min(300, W)"
	}

	br.Renderln()
	br.Renderln("(function(){")
	br.Renderln("  const canvas = document.getElementById('", id, "');")
	br.Renderln("  if(!canvas) return;")
	br.Renderln("  const ctx = canvas.getContext('2d');")
	br.Renderln("  const W = canvas.width = canvas.parentElement.offsetWidth;")
	br.Renderln("  const H = canvas.height = ", height, ";")
	br.Renderln("  const labels = ", jsStrings(labels), ";")
	br.Renderln("  const values = ", jsNumbers(values), ";")
	br.Renderln("  const colors = ", jsStrings(chartColors), ";")
	br.Renderln("  ctx.font = '12px Inter, system-ui, sans-serif';")

	switch chartType {
	case "pie":
		var slices []string
		for _, s := range PieSlices(values) {
			slices = append(slices, "["+jsNumber(s.Start)+","+jsNumber(s.Sweep)+","+jsNumber(s.Mid)+"]")
		}
		br.Renderln("  const slices = [", strings.Join(slices, ","), "];")
		br.Renderln("  const cx=W/2,cy=H/2,r=Math.min(cx,cy)-40;")
		br.Renderln("  slices.forEach((s,i)=>{ctx.beginPath();ctx.moveTo(cx,cy);ctx.arc(cx,cy,r,s[0],s[0]+s[1]);",
			"ctx.fillStyle=colors[i%colors.length];ctx.fill();",
			"ctx.fillStyle='#1e293b';ctx.fillText(labels[i],cx+Math.cos(s[2])*(r+20),cy+Math.sin(s[2])*(r+20));});")

	case "line":
		writeAxis(&br, values)
		br.Renderln("  const step=gW/(values.length-1||1);")
		br.Renderln("  ctx.beginPath();ctx.strokeStyle=colors[0];ctx.lineWidth=3;",
			"values.forEach((v,i)=>{const x=pad.l+i*step;const y=pad.t+gH*(1-v/max);i===0?ctx.moveTo(x,y):ctx.lineTo(x,y);",
			"ctx.fillStyle='#64748b';ctx.fillText(labels[i]||'',x-10,H-10);});ctx.stroke();")
		br.Renderln("  values.forEach((v,i)=>{const x=pad.l+i*step;const y=pad.t+gH*(1-v/max);",
			"ctx.beginPath();ctx.arc(x,y,5,0,Math.PI*2);ctx.fillStyle=colors[0];ctx.fill();",
			"ctx.fillStyle='#fff';ctx.beginPath();ctx.arc(x,y,2,0,Math.PI*2);ctx.fill();});")

	default:
		writeAxis(&br, values)
		br.Renderln("  const bW=Math.min(60,gW/values.length*0.7);")
		br.Renderln("  values.forEach((v,i)=>{const x=pad.l+(i+0.5)*(gW/values.length)-bW/2;const h=gH*(v/max);const y=pad.t+gH-h;",
			"ctx.fillStyle=colors[i%colors.length];ctx.beginPath();ctx.roundRect?ctx.roundRect(x,y,bW,h,4):ctx.fillRect(x,y,bW,h);ctx.fill();",
			"ctx.fillStyle='#64748b';ctx.fillText(labels[i]||'',x,H-10);});")
	}

	br.Render("})();")
	return br.String()
}

// writeAxis emits the plot area and the five gridlines shared by bar and line charts.
func writeAxis(br *ByteRenderer, values []float64) {
	max := ChartMax(values)
	ladder := AxisLadder(max)

	br.Renderln("  const max = ", jsNumber(max), ";")
	br.Renderln("  const ladder = ", jsNumbers(ladder[:]), ";")
	br.Renderln("  const pad={t:20,r:20,b:40,l:50};const gW=W-pad.l-pad.r,gH=H-pad.t-pad.b;")
	br.Renderln("  ctx.strokeStyle='#e2e8f0';ctx.lineWidth=1;",
		"ladder.forEach((l,i)=>{const y=pad.t+gH*(1-i/4);ctx.beginPath();ctx.moveTo(pad.l,y);ctx.lineTo(W-pad.r,y);ctx.stroke();",
		"ctx.fillStyle='#94a3b8';ctx.fillText(l,5,y+4);});")
}
