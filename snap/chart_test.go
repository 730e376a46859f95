package snap

import (
	"math"
	"strings"
	"testing"
)

func TestPieSlices(t *testing.T) {
	slices := PieSlices([]float64{1, 2, 3})
	if len(slices) != 3 {
		t.Fatalf("PieSlices() returned %d slices", len(slices))
	}

	if slices[0].Start != -math.Pi/2 {
		t.Errorf("first slice starts at %v, want -π/2", slices[0].Start)
	}

	total := 0.0
	for i, s := range slices {
		total += s.Sweep
		if math.Abs(s.Mid-(s.Start+s.Sweep/2)) > 1e-12 {
			t.Errorf("slice %d: mid %v is not halfway", i, s.Mid)
		}
		if i > 0 {
			prev := slices[i-1]
			if math.Abs(s.Start-(prev.Start+prev.Sweep)) > 1e-12 {
				t.Errorf("slice %d does not start where slice %d ends", i, i-1)
			}
		}
	}
	if math.Abs(total-2*math.Pi) > 1e-9 {
		t.Errorf("sum of sweeps = %v, want 2π", total)
	}
	if math.Abs(slices[2].Sweep-math.Pi) > 1e-12 {
		t.Errorf("half of the total must sweep π, got %v", slices[2].Sweep)
	}
}

func TestChartMax(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"Empty", nil, 1},
		{"Below one", []float64{0.2, 0.5}, 1},
		{"Largest", []float64{3, 9, 2}, 9},
		{"Negative", []float64{-4, -1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChartMax(tt.values); got != tt.want {
				t.Errorf("ChartMax() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := ChartMax([]float64{1, math.NaN()}); !math.IsNaN(got) {
		t.Errorf("ChartMax() with NaN = %v", got)
	}
}

func TestAxisLadder(t *testing.T) {
	want := [5]float64{0, 3, 5, 8, 10}
	if got := AxisLadder(10); got != want {
		t.Errorf("AxisLadder(10) = %v, want %v", got, want)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12", 12},
		{" 3.5 ", 3.5},
		{"12abc", 12},
		{"-2", -2},
		{".5", 0.5},
		{"1e3", 1000},
		{"Infinity", math.Inf(1)},
	}
	for _, tt := range tests {
		if got := parseNumber(tt.in); got != tt.want {
			t.Errorf("parseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"", "abc", "-"} {
		if got := parseNumber(in); !math.IsNaN(got) {
			t.Errorf("parseNumber(%q) = %v, want NaN", in, got)
		}
	}
}

func TestJSNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{1, "1"},
		{0.1, "0.1"},
		{-2.5, "-2.5"},
		{1e21, "1e+21"},
	}
	for _, tt := range tests {
		if got := jsNumber(tt.in); got != tt.want {
			t.Errorf("jsNumber(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestChartScript(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		contains []string
	}{
		{
			name: "Pie",
			src:  `chart type=pie values="1,2,3" labels="a,b,c"`,
			contains: []string{
				`<canvas id="chart_1" height="300">`,
				"const H = canvas.height = Math.min(300, W);",
				`const labels = ["a","b","c"];`,
				"const slices = [[-1.5707963267948966,",
			},
		},
		{
			name: "Bar with bad value",
			src:  `chart "Sales" values="4,x,8" labels="q1,q2,q3" height=200`,
			contains: []string{
				`<h3>Sales</h3><canvas id="chart_1" height="200">`,
				"const values = [4,NaN,8];",
				"const max = NaN;",
				"ctx.roundRect",
			},
		},
		{
			name: "Line",
			src:  `chart type=line values="2,10"`,
			contains: []string{
				"const max = 10;",
				"const ladder = [0,3,5,8,10];",
				"ctx.lineTo(x,y)",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Render(ParseWith(tt.src, Options{}))
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output does not contain %q", s)
				}
			}
		})
	}
}
