package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/xolan/rfext/internal/logging"
	"github.com/xolan/rfext/internal/prettyprint"
)

// PrintService renders structured data and decodes it from files.
type PrintService struct{}

// NewPrintService creates a new PrintService
func NewPrintService() *PrintService {
	return &PrintService{}
}

// PrettyPrint renders data and logs every line at info level. The lines are
// returned as well.
func (s *PrintService) PrettyPrint(data any) []string {
	lines := s.Render(data)
	logger := logging.GetLogger("pretty_print")
	for _, line := range lines {
		logger.Info().Msg(line)
	}
	return lines
}

// Render returns the pretty-printed lines of data without logging them.
func (s *PrintService) Render(data any) []string {
	return prettyprint.Render(data)
}

// LoadFile reads and decodes the file at path. With FormatAuto the format
// is taken from the extension.
func (s *PrintService) LoadFile(path string, format Format) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	return s.Decode(data, format)
}

// Decode parses data in the given format. FormatAuto tries JSON, TOML and
// YAML in that order. Empty input decodes to nil.
func (s *PrintService) Decode(data []byte, format Format) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatAuto:
		if v, err := decodeJSON(data); err == nil {
			return v, nil
		}
		if v, err := decodeTOML(data); err == nil {
			return v, nil
		}
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown data format %q", format)
	}
}

// ParseFormat converts a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("unknown data format %q (expected json, yaml or toml)", name)
	}
}

// DetectFormat returns the format matching the extension of path, or
// FormatAuto when the extension is unknown.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON: trailing data")
	}
	return jsonNumbers(v), nil
}

// jsonNumbers replaces json.Number values by int64 or float64.
func jsonNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		for i := range t {
			t[i] = jsonNumbers(t[i])
		}
		return t
	case map[string]any:
		for k, e := range t {
			t[k] = jsonNumbers(e)
		}
		return t
	default:
		return v
	}
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return v, nil
}

func decodeTOML(data []byte) (any, error) {
	var v map[string]any
	if _, err := toml.Decode(string(data), &v); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return v, nil
}
