// Package suite loads keyword suites from YAML or JSON files and runs them
// against a keyword library.
//
// A suite file looks like this:
//
//	name: folder smoke test
//	fail_fast: true
//	steps:
//	  - keyword: create_folder
//	    args: ["/tmp/rfext/demo", false, true]
//	  - keyword: Delete Folder
//	    args: {path: /tmp/rfext/demo}
//	  - keyword: delete_folder
//	    args: {path: /tmp/rfext/demo}
//	    expect_failure: true
//
// Step arguments are either a list (positional) or a mapping (named).
package suite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoSteps is returned for a suite without steps.
var ErrNoSteps = errors.New("suite has no steps")

// Suite is an ordered list of keyword calls.
type Suite struct {
	Name     string `yaml:"name" json:"name"`
	FailFast bool   `yaml:"fail_fast" json:"fail_fast"`
	Steps    []Step `yaml:"steps" json:"steps"`
}

// Step is one keyword call.
type Step struct {
	Keyword       string `yaml:"keyword" json:"keyword"`
	Args          any    `yaml:"args" json:"args"`
	ExpectFailure bool   `yaml:"expect_failure" json:"expect_failure"`
}

// Arguments splits Args into positional and named values. A scalar is
// treated as a single positional value.
func (s Step) Arguments() ([]any, map[string]any, error) {
	switch a := s.Args.(type) {
	case nil:
		return nil, nil, nil
	case []any:
		return a, nil, nil
	case map[string]any:
		return nil, a, nil
	case map[any]any:
		named := make(map[string]any, len(a))
		for k, v := range a {
			key, ok := k.(string)
			if !ok {
				return nil, nil, fmt.Errorf("argument name %v is not a string", k)
			}
			named[key] = v
		}
		return nil, named, nil
	default:
		return []any{a}, nil, nil
	}
}

// Load reads a suite file. The suite name defaults to the file name.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes a suite from JSON when data starts with '{', from YAML
// otherwise.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to parse suite: %w", err)
		}
		for i := range s.Steps {
			s.Steps[i].Args = jsonNumbers(s.Steps[i].Args)
		}
	} else if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse suite: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrNoSteps
	}
	for i, st := range s.Steps {
		if strings.TrimSpace(st.Keyword) == "" {
			return nil, fmt.Errorf("step %d: keyword is missing", i+1)
		}
	}
	return &s, nil
}

// jsonNumbers replaces json.Number values by int64 or float64 so JSON and
// YAML suites hand keywords the same types.
func jsonNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
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
