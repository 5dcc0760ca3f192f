package sink

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/endlabel/pkg/chart"
	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/render"
	"github.com/matzehuels/endlabel/pkg/textmeasure"
)

// buildScene lays out c the way the pipeline does.
func buildScene(t *testing.T, c *chart.Chart) Scene {
	t.Helper()
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	l, err := legend.New(c.Items(), c.FontSize, c.LegendMaxWidth, textmeasure.NewEstimator())
	if err != nil {
		t.Fatalf("legend.New: %v", err)
	}
	f := render.NewFrame(c.Width, c.Height, l.Width(), c.FontSize, c.Title != "")
	axis, err := c.ValueAxis(f.PlotTop, f.PlotBottom)
	if err != nil {
		t.Fatalf("ValueAxis: %v", err)
	}
	lay, err := l.Layout(axis, f.LegendX, c.Focus)
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return Scene{Chart: c, Frame: f, Axis: axis, Layout: lay}
}

func sampleChart() *chart.Chart {
	return &chart.Chart{
		Title: "Life expectancy <2024>",
		Series: []chart.Series{
			{Key: "FRA", Label: "France", Color: "#3360a9", Values: []float64{70, 75, 82.5}},
			{Key: "DEU", Label: "Germany", Color: "#ca2628", Values: []float64{69, 74, 82.4}},
			{Key: "JPN", Label: "Japan & Korea", Color: "#2a9d8f", Values: []float64{65, 72, 60}},
		},
	}
}

func wellFormed(t *testing.T, svg []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(svg)))
	for {
		_, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return
			}
			t.Fatalf("SVG is not well-formed XML: %v\n%s", err, svg)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	s := buildScene(t, sampleChart())
	svg := RenderSVG(s)
	wellFormed(t, svg)
	out := string(svg)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`Life expectancy &lt;2024&gt;`,
		`class="series" data-key="FRA"`,
		`Japan &amp; Korea`,
		`class="axis"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Contains(out, "<script") {
		t.Error("non-interactive SVG should not carry a script")
	}
	if got := strings.Count(out, `class="legend-mark focus"`); got != 3 {
		t.Errorf("focus marks = %d, want 3", got)
	}
	if got := strings.Count(out, `stroke="#999"`); got != 9 {
		t.Errorf("connector segments = %d, want 9", got)
	}
}

func TestRenderSVGFocusMode(t *testing.T) {
	c := sampleChart()
	c.Focus = []string{"DEU"}
	s := buildScene(t, c)
	out := string(RenderSVG(s))

	if !s.Layout.Sets.FocusMode {
		t.Fatal("expected focus mode")
	}
	if got := strings.Count(out, `class="legend-mark background"`); got != 2 {
		t.Errorf("background marks = %d, want 2", got)
	}
	if !strings.Contains(out, `fill="`+BackgroundFocusMode+`"`) {
		t.Error("background labels should use the focus-mode fill")
	}
	if !strings.Contains(out, `data-key="FRA" points=`) || !strings.Contains(out, `stroke="`+dimmedSeries+`"`) {
		t.Error("unfocused series should be dimmed")
	}
	if !strings.Contains(out, `fill="#ca2628" dominant-baseline="hanging">Germany`) {
		t.Error("focused label should use its series color")
	}
}

func TestRenderSVGInteraction(t *testing.T) {
	s := buildScene(t, sampleChart())
	svg := RenderSVG(s, WithInteraction(), WithTicks(0))
	wellFormed(t, svg)
	out := string(svg)

	if !strings.Contains(out, "endlabel:") || !strings.Contains(out, "<![CDATA[") {
		t.Error("interactive SVG should dispatch endlabel events")
	}
	if got := strings.Count(out, `opacity="0"`); got != 3 {
		t.Errorf("hit rects = %d, want 3", got)
	}
	if strings.Contains(out, `class="axis"`) {
		t.Error("WithTicks(0) should hide the axis")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	s := buildScene(t, &chart.Chart{})
	svg := RenderSVG(s)
	wellFormed(t, svg)
	if strings.Contains(string(svg), "legend-mark") {
		t.Error("empty chart should draw no labels")
	}
}

func TestPointsSkipsUnplaceable(t *testing.T) {
	c := &chart.Chart{Series: []chart.Series{{Key: "A", Values: []float64{1, 10, 100}}}}
	c.Axis.Scale = "log"
	s := buildScene(t, c)

	pts := points(s, []float64{-1, 10, 100})
	if len(pts) != 2 {
		t.Errorf("points = %v, want 2 placeable values", pts)
	}
}
