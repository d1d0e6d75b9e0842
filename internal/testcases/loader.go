// Package testcases loads test-case configuration files.
// A configuration file is a YAML sequence of test-case entries; each entry
// names a test and carries free-form parameters that end up verbatim in the
// rendered report.
package testcases

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	errNameRequired = errors.New("test case name is required")
)

// TestCase describes one named test configuration.
type TestCase struct {
	Name   string            `yaml:"name"`
	Params map[string]string `yaml:"params"`
}

// Fields returns the configuration parameters sorted by key, so template
// output stays deterministic across runs.
func (tc *TestCase) Fields() []Param {
	keys := make([]string, 0, len(tc.Params))
	for k := range tc.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	params := make([]Param, 0, len(keys))
	for _, k := range keys {
		params = append(params, Param{Name: k, Value: tc.Params[k]})
	}
	return params
}

// Empty reports whether the test case carries no configuration at all.
// Unmatched result rows get an empty test case rather than a nil one.
func (tc *TestCase) Empty() bool {
	return tc.Name == "" && len(tc.Params) == 0
}

// Param is a single configuration key/value pair.
type Param struct {
	Name  string
	Value string
}

// Loader loads test-case configuration files.
type Loader interface {
	Load() ([]*TestCase, error)
}

type loader struct {
	path string
	log  logrus.FieldLogger
}

// NewLoader creates a loader for the configuration file at path.
func NewLoader(log logrus.FieldLogger, path string) Loader {
	return &loader{
		path: path,
		log:  log.WithField("component", "testcases_loader"),
	}
}

// Load parses the configuration file and validates every entry.
// The returned slice keeps file order; report matching is first-match-wins,
// so order matters when names repeat.
func (l *loader) Load() ([]*TestCase, error) {
	l.log.WithField("path", l.path).Debug("loading test case configuration")

	data, err := os.ReadFile(l.path) //nolint:gosec // G304: config path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("reading test case configuration: %w", err)
	}

	var testcases []*TestCase
	if err := yaml.Unmarshal(data, &testcases); err != nil {
		return nil, fmt.Errorf("parsing yaml from %s: %w", l.path, err)
	}

	for i, tc := range testcases {
		if tc.Name == "" {
			return nil, fmt.Errorf("%w: entry %d in %s", errNameRequired, i, l.path)
		}
	}

	l.log.WithField("count", len(testcases)).Debug("loaded test case configuration")

	return testcases, nil
}
