// Package templates embeds the bundled report templates so the binary
// renders reports without an on-disk templates directory. A custom template
// path always takes precedence over the embedded default.
package templates

import _ "embed"

// Report is the default Markdown test report template. It receives a single
// variable Tests, a sequence of report entries with the fixed field set
// {ID, Name, Deployment, Conf, Result, Env}.
//
//go:embed report.md.tmpl
var Report string
