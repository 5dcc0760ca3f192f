package chart

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/endlabel/pkg/errors"
)

// Format is a chart file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings.
var Formats = []string{string(FormatTOML), string(FormatYAML), string(FormatJSON)}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer chart format from %q (use .toml, .yaml or .json)", path)
}

// FormatFromContentType maps an HTTP Content-Type to a format. An empty
// content type means JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if contentType == "" {
		return FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse content type %q", contentType)
	}
	switch mt {
	case "application/json":
		return FormatJSON, nil
	case "application/toml":
		return FormatTOML, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported content type %q", mt)
}

// Load reads, defaults and validates the chart file at path.
func Load(path string) (*Chart, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	c, err := Parse(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return c, nil
}

// Parse decodes a chart in the given format, applies defaults and
// validates it. Parse does not close r.
func Parse(r io.Reader, format Format) (*Chart, error) {
	var c Chart
	if err := decode(r, format, &c); err != nil {
		return nil, err
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func decode(r io.Reader, format Format, c *Chart) error {
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(c)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(c)
		if stderrors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(c)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown chart format %q (must be toml, yaml or json)", format)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidChart, err, "decode %s", format)
	}
	return nil
}
