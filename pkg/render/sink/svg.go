package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/endlabel/pkg/chart"
	"github.com/matzehuels/endlabel/pkg/legend"
	"github.com/matzehuels/endlabel/pkg/render"
	"github.com/matzehuels/endlabel/pkg/scale"
	"github.com/matzehuels/endlabel/pkg/textmeasure"
)

// Label fills.
const (
	BackgroundFocusMode = "#ccc"
	BackgroundDefault   = "#eee"
	connectorStroke     = "#999"
	axisStroke          = "#ddd"
	axisText            = "#666"
	dimmedSeries        = "#ccc"
	fontFamily          = "Helvetica, Arial, sans-serif"
	defaultTicks        = 5
)

const legendInteractionCSS = `
    .legend-mark { cursor: pointer; }
    .series { transition: stroke-width 0.2s ease; }
    .series.highlight { stroke-width: 3; }`

const legendInteractionJS = `
    (function() {
      var root = document.currentScript ? document.currentScript.closest('svg') : document.querySelector('svg');
      function emit(name, key) {
        root.dispatchEvent(new CustomEvent('endlabel:' + name, { detail: { key: key }, bubbles: true }));
      }
      function highlight(key) {
        root.querySelectorAll('.series').forEach(function(s) { s.classList.toggle('highlight', s.dataset.key === key); });
      }
      root.querySelectorAll('.legend-mark').forEach(function(el) {
        el.addEventListener('mouseover', function() { highlight(el.dataset.key); emit('mouseover', el.dataset.key); });
        el.addEventListener('click', function() { emit('click', el.dataset.key); });
      });
      var legend = root.querySelector('.legend');
      if (legend) legend.addEventListener('mouseleave', function() { highlight(null); emit('mouseleave', null); });
    })();`

// Scene is everything needed to draw one chart.
type Scene struct {
	Chart  *chart.Chart
	Frame  render.Frame
	Axis   *scale.Axis
	Layout *legend.Layout
}

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	interactive bool
	ticks       int
}

// WithInteraction adds hit rectangles and the event dispatch script.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// WithTicks sets the approximate number of axis ticks; zero hides the axis.
func WithTicks(n int) SVGOption { return func(r *svgRenderer) { r.ticks = n } }

// RenderSVG draws the scene as a standalone SVG document.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := svgRenderer{ticks: defaultTicks}
	for _, opt := range opts {
		opt(&r)
	}

	c, f := s.Chart, s.Frame
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="%s">`+"\n",
		f.Width, f.Height, f.Width, f.Height, fontFamily)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="#fff"/>`+"\n", f.Width, f.Height)

	if c.Title != "" {
		fmt.Fprintf(&buf, `  <text class="title" x="%.1f" y="%.1f" font-size="%s" font-weight="bold" fill="#333">%s</text>`+"\n",
			f.PlotLeft, f.TitleY, num(c.FontSize), escapeXML(c.Title))
	}
	if r.ticks > 0 {
		renderAxis(&buf, s, r.ticks)
	}
	renderSeries(&buf, s)
	renderLegend(&buf, s, r.interactive)

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", legendInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", legendInteractionJS)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderAxis(buf *bytes.Buffer, s Scene, n int) {
	f := s.Frame
	size := s.Chart.FontSize * legend.FontScale
	buf.WriteString(`  <g class="axis">` + "\n")
	for _, v := range s.Axis.Ticks(n) {
		y := s.Axis.Place(v)
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			f.PlotLeft, y, f.PlotRight, y, axisStroke)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-size="%s" fill="%s" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			f.PlotLeft-5, y, num(size), axisText, num(v))
	}
	buf.WriteString("  </g>\n")
}

func renderSeries(buf *bytes.Buffer, s Scene) {
	focus := make(map[string]bool)
	for _, m := range s.Layout.Sets.Focus {
		focus[m.Key] = true
	}

	buf.WriteString(`  <g class="lines">` + "\n")
	for _, sr := range s.Chart.Series {
		pts := points(s, sr.Values)
		if len(pts) == 0 {
			continue
		}
		stroke := sr.Color
		if s.Layout.Sets.FocusMode && !focus[sr.Key] {
			stroke = dimmedSeries
		}
		fmt.Fprintf(buf, `    <polyline class="series" data-key="%s" points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			escapeXML(sr.Key), strings.Join(pts, " "), escapeXML(stroke))
	}
	buf.WriteString("  </g>\n")
}

// points projects values into the plot, skipping values the axis cannot
// place (NaN, or non-positive on a log axis).
func points(s Scene, values []float64) []string {
	out := make([]string, 0, len(values))
	for i, v := range values {
		y := s.Axis.Place(v)
		if math.IsNaN(y) {
			continue
		}
		out = append(out, fmt.Sprintf("%.1f,%.1f", s.Frame.PointX(i, len(values)), y))
	}
	return out
}

func renderLegend(buf *bytes.Buffer, s Scene, interactive bool) {
	sets := s.Layout.Sets
	x := s.Frame.LegendX
	size := s.Layout.FontSize

	fill := BackgroundDefault
	if sets.FocusMode {
		fill = BackgroundFocusMode
	}

	buf.WriteString(`  <g class="legend">` + "\n")
	for _, m := range sets.Background {
		openMark(buf, m, "background")
		renderHitRect(buf, m, x, interactive)
		renderLabel(buf, m, size, fill)
		buf.WriteString("    </g>\n")
	}
	for _, m := range sets.Focus {
		openMark(buf, m, "focus")
		c := m.Connector(x)
		for _, seg := range [][4]float64{
			{c.X1, c.Y1, c.XMid, c.Y1},
			{c.XMid, c.Y1, c.XMid, c.Y2},
			{c.XMid, c.Y2, c.X2, c.Y2},
		} {
			fmt.Fprintf(buf, `      <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.7"/>`+"\n",
				seg[0], seg[1], seg[2], seg[3], connectorStroke)
		}
		renderHitRect(buf, m, x, interactive)
		renderLabel(buf, m, size, m.Color)
		buf.WriteString("    </g>\n")
	}
	buf.WriteString("  </g>\n")
}

func openMark(buf *bytes.Buffer, m legend.RenderMark, set string) {
	fmt.Fprintf(buf, `    <g class="legend-mark %s" data-key="%s">`+"\n", set, escapeXML(m.Key))
}

func renderHitRect(buf *bytes.Buffer, m legend.RenderMark, x float64, interactive bool) {
	if !interactive {
		return
	}
	fmt.Fprintf(buf, `      <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#fff" opacity="0"/>`+"\n",
		x, m.Bounds.Y, m.Bounds.Width, m.Bounds.Height)
}

func renderLabel(buf *bytes.Buffer, m legend.RenderMark, size float64, fill string) {
	lines := m.Lines
	if len(lines) == 0 && m.Label != "" {
		lines = []string{m.Label}
	}
	for i, line := range lines {
		y := m.Bounds.Y + float64(i)*textmeasure.LineHeight*size
		fmt.Fprintf(buf, `      <text x="%.1f" y="%.1f" font-size="%s" fill="%s" dominant-baseline="hanging">%s</text>`+"\n",
			m.Bounds.X, y, num(size), escapeXML(fill), escapeXML(line))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
