package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/endlabel/pkg/chart"
	"github.com/matzehuels/endlabel/pkg/errors"
	"github.com/matzehuels/endlabel/pkg/pipeline"
	"github.com/matzehuels/endlabel/pkg/render"
	"github.com/matzehuels/endlabel/pkg/textmeasure"
)

// Response headers describing the placed legend.
const (
	HeaderStrategy = "X-Endlabel-Strategy"
	HeaderOverlaps = "X-Endlabel-Overlaps"
	HeaderCache    = "X-Cache"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

type formatsResponse struct {
	Charts    []string `json:"charts"`
	Outputs   []string `json:"outputs"`
	Measurers []string `json:"measurers"`
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, formatsResponse{
		Charts:    chart.Formats,
		Outputs:   render.Formats,
		Measurers: textmeasure.Names,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		writeError(w, fromError(err))
		return
	}

	format, err := chart.FormatFromContentType(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, fromError(err))
		return
	}
	c, err := chart.Parse(http.MaxBytesReader(w, r.Body, s.maxBody), format)
	if err != nil {
		writeError(w, fromError(err))
		return
	}
	opts.Chart = c
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		apiErr := fromError(err)
		if apiErr.Status >= http.StatusInternalServerError {
			opts.Logger.Error("render failed", "error", err)
		}
		writeError(w, apiErr)
		return
	}

	out := opts.Formats[0]
	w.Header().Set("Content-Type", render.ContentType(out))
	w.Header().Set(HeaderStrategy, result.Stats.Strategy)
	w.Header().Set(HeaderOverlaps, strconv.Itoa(result.Stats.Overlaps))
	w.Header().Set(HeaderCache, cacheStatus(result.CacheInfo.RenderHit))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[out])
}

// renderOptions reads the query parameters of a render request.
func renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = render.FormatSVG
	}
	if err := errors.ValidateFormat(format, render.Formats...); err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "format")
	}

	opts := pipeline.Options{
		Formats:  []string{format},
		Measurer: q.Get("measurer"),
	}
	if q.Has("focus") {
		opts.Focus = splitKeys(q.Get("focus"))
	}
	if v := q.Get("interactive"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "interactive")
		}
		opts.Interactive = b
	}
	return opts, nil
}

// splitKeys splits a comma-separated key list, dropping blanks. The result
// is non-nil so an empty list still overrides the chart's focus.
func splitKeys(s string) []string {
	keys := []string{}
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
