package report

import (
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/vswitchperf/vsreport/templates"
)

const templateName = "report"

// loadTemplate parses the report template. A custom path wins over the
// embedded default. Sprig functions are available in templates.
func loadTemplate(path string) (*template.Template, error) {
	content := templates.Report
	name := "builtin"

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: template path comes from the operator
		if err != nil {
			return nil, &TemplateError{Name: path, Err: err}
		}
		content = string(data)
		name = path
	}

	tmpl, err := template.New(templateName).Funcs(sprig.TxtFuncMap()).Parse(content)
	if err != nil {
		return nil, &TemplateError{Name: name, Err: err}
	}

	return tmpl, nil
}
