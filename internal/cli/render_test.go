package cli

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/endlabel/pkg/errors"
)

const crowdedChart = "testdata/crowded.toml"

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and empties", " svg, ,png ", []string{"svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "charts/gdp.toml", "charts/gdp"},
		{"out/gdp.svg", "charts/gdp.toml", "out/gdp"},
		{"out/gdp.pdf", "charts/gdp.toml", "out/gdp"},
		{"out/gdp", "charts/gdp.toml", "out/gdp"},
		{"out/gdp.v2", "charts/gdp.toml", "out/gdp.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
		code    errors.Code
	}{
		{
			name:    "derived from input",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "c/gdp.svg"},
		},
		{
			name:    "explicit single file",
			output:  "x/legend.image",
			formats: []string{"svg"},
			want:    map[string]string{"svg": "x/legend.image"},
		},
		{
			name:    "base path for several formats",
			output:  "x/legend.svg",
			formats: []string{"svg", "pdf"},
			want:    map[string]string{"svg": "x/legend.svg", "pdf": "x/legend.pdf"},
		},
		{
			name:    "stdout",
			output:  "-",
			formats: []string{"svg"},
			want:    map[string]string{"svg": ""},
		},
		{
			name:    "stdout with two formats",
			output:  "-",
			formats: []string{"svg", "png"},
			code:    errors.ErrCodeInvalidInput,
		},
		{
			name:    "unknown format",
			formats: []string{"gif"},
			code:    errors.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputPaths(tt.output, "c/gdp.toml", tt.formats)
			if tt.code != "" {
				if errors.GetCode(err) != tt.code {
					t.Fatalf("error code = %q, want %q (err %v)", errors.GetCode(err), tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("outputPaths: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("path for %s = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestRenderCommandWritesSVG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "crowded.svg")

	root := testCLI().RootCommand()
	root.SetArgs([]string{"render", crowdedChart, "-o", out, "--focus", "north,east", "--interactive"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	assertWellFormed(t, data)
	svg := string(data)
	for _, want := range []string{`data-key="north"`, `legend-mark focus`, `<script`} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderCommandOverrides(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "wide.svg")

	root := testCLI().RootCommand()
	root.SetArgs([]string{"render", crowdedChart, "-o", out, "--width", "1200", "--no-cache"})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`width="1200"`)) {
		t.Error("width override not applied")
	}
}

func TestRenderCommandHidesAxis(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()

	for _, tt := range []struct {
		ticks string
		axis  bool
	}{
		{"5", true},
		{"-1", false},
	} {
		out := filepath.Join(dir, "ticks"+tt.ticks+".svg")
		root := testCLI().RootCommand()
		root.SetArgs([]string{"render", crowdedChart, "-o", out, "--ticks=" + tt.ticks})
		if err := root.Execute(); err != nil {
			t.Fatalf("render --ticks=%s: %v", tt.ticks, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if got := bytes.Contains(data, []byte(`class="axis"`)); got != tt.axis {
			t.Errorf("--ticks=%s: axis drawn = %v, want %v", tt.ticks, got, tt.axis)
		}
	}
}

func TestRenderStatus(t *testing.T) {
	failure := errors.New(errors.ErrCodeUnsupported, "no converter")

	tests := []struct {
		name      string
		err       error
		cancelled bool
		want      string
		ok        bool
	}{
		{"success", nil, false, "Rendered chart.toml", true},
		{"failure", failure, false, "Render failed", false},
		{"cancelled", failure, true, "Render cancelled", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := renderStatus("chart.toml", tt.err, tt.cancelled)
			if got != tt.want || ok != tt.ok {
				t.Errorf("renderStatus = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"render", "testdata/nope.toml"}, errors.ErrCodeFileNotFound},
		{"unknown focus key", []string{"render", crowdedChart, "--focus", "mars"}, errors.ErrCodeInvalidChart},
		{"bad measurer", []string{"render", crowdedChart, "--measurer", "comic"}, errors.ErrCodeInvalidChart},
		{"bad format", []string{"render", crowdedChart, "-f", "gif"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testCLI().RootCommand()
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)
			root.SetArgs(tt.args)
			err := root.Execute()
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("error code = %q, want %q (err %v)", got, tt.code, err)
			}
		})
	}
}

func assertWellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatalf("svg is not well-formed: %v", err)
		}
	}
}
