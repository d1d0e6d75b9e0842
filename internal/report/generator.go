// Package report renders Markdown test reports from CSV benchmark results.
// Each data row is joined with its named test-case configuration and a host
// environment snapshot, then the set is rendered through the report template
// and written next to the input file.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vswitchperf/vsreport/internal/results"
	"github.com/vswitchperf/vsreport/internal/sysinfo"
	"github.com/vswitchperf/vsreport/internal/testcases"
)

// templateData is the root object the report template renders against.
type templateData struct {
	Tests []*Entry
}

// Report describes one generated report.
type Report struct {
	// Path is the written Markdown file: the input path with its final
	// extension replaced by ".md".
	Path string
	// Entries are the rendered tests, in results-file row order.
	Entries []*Entry
}

// Generator produces Markdown reports from CSV results files.
type Generator struct {
	log          logrus.FieldLogger
	prober       sysinfo.Prober
	templatePath string
}

// Option configures a Generator.
type Option func(*Generator)

// WithTemplatePath points the generator at a custom template file instead of
// the embedded default.
func WithTemplatePath(path string) Option {
	return func(g *Generator) {
		g.templatePath = path
	}
}

// WithProber replaces the host environment prober.
func WithProber(p sysinfo.Prober) Option {
	return func(g *Generator) {
		g.prober = p
	}
}

// NewGenerator creates a report generator.
func NewGenerator(log logrus.FieldLogger, opts ...Option) *Generator {
	g := &Generator{
		log: log.WithField("component", "report_generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.prober == nil {
		g.prober = sysinfo.NewProber(log)
	}
	return g
}

// Generate renders the report for one results file. The output file is only
// written after the whole template rendered, so a failing row or template
// never leaves a partial report behind.
func (g *Generator) Generate(tcs []*testcases.TestCase, inputFile string) (*Report, error) {
	outputFile := outputPath(inputFile)

	tmpl, err := loadTemplate(g.templatePath)
	if err != nil {
		return nil, err
	}

	rows, err := results.ParseFile(inputFile)
	if err != nil {
		return nil, &FileAccessError{Path: inputFile, Err: err}
	}

	// One snapshot per generation; host facts do not change mid-run.
	env := sysinfo.Capture(g.prober)

	entries := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := g.buildEntry(tcs, row, env, inputFile)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Tests: entries}); err != nil {
		return nil, &TemplateError{Name: templateName, Err: err}
	}

	if err := os.WriteFile(outputFile, buf.Bytes(), 0o644); err != nil { //nolint:gosec // G306: report is world-readable
		return nil, &FileAccessError{Path: outputFile, Err: err}
	}

	g.log.WithFields(logrus.Fields{
		"input": inputFile,
		"path":  outputFile,
		"tests": len(entries),
	}).Info("test report written")

	return &Report{Path: outputFile, Entries: entries}, nil
}

// buildEntry joins one result row with its configuration and the
// environment snapshot.
func (g *Generator) buildEntry(tcs []*testcases.TestCase, row *results.Row, env sysinfo.Snapshot, inputFile string) (*Entry, error) {
	id, ok := row.Get(results.ColumnID)
	if !ok {
		return nil, g.missingField(inputFile, results.ColumnID)
	}

	deployment, ok := row.Get(results.ColumnDeployment)
	if !ok {
		return nil, g.missingField(inputFile, results.ColumnDeployment)
	}

	// The identifier and deployment surface as dedicated entry fields, not
	// as metrics.
	row.Delete(results.ColumnID)
	row.Delete(results.ColumnDeployment)

	return &Entry{
		ID:         strings.ToUpper(id),
		Name:       id,
		Deployment: deployment,
		Conf:       match(tcs, id),
		Result:     row,
		Env:        env,
	}, nil
}

func (g *Generator) missingField(inputFile, field string) error {
	err := &MissingFieldError{Path: inputFile, Field: field}
	g.log.WithFields(logrus.Fields{
		"file":   inputFile,
		"column": field,
	}).Error("ignoring results file, wrongly defined columns")
	return err
}

// outputPath replaces only the final extension of the input path with ".md".
func outputPath(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return fmt.Sprintf("%s.md", strings.TrimSuffix(inputFile, ext))
}
