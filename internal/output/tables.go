package output

import (
	"bytes"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/vswitchperf/vsreport/internal/report"
)

// SummaryFormatter formats generated report entries as a console table.
type SummaryFormatter struct {
	log logrus.FieldLogger
}

// NewSummaryFormatter creates a new entry summary formatter.
func NewSummaryFormatter(log logrus.FieldLogger) *SummaryFormatter {
	return &SummaryFormatter{
		log: log.WithField("component", "output.summary_formatter"),
	}
}

// Format converts report entries into a formatted table string: one row per
// test with its deployment, whether a configuration matched, and the number
// of metrics that made it into the report.
func (f *SummaryFormatter) Format(entries []*report.Entry) string {
	if len(entries) == 0 {
		return "No test results found"
	}

	headers := []string{"Test", "Deployment", "Config", "Metrics"}
	rows := make([][]string, 0, len(entries))

	for _, entry := range entries {
		conf := color.GreenString("matched")
		if entry.Conf.Empty() {
			conf = color.YellowString("none")
		}

		rows = append(rows, []string{
			entry.ID,
			entry.Deployment,
			conf,
			strconv.Itoa(entry.Result.Len()),
		})
	}

	return renderTable(headers, rows)
}

// renderTable renders headers and rows with the shared table styling.
func renderTable(headers []string, rows [][]string) string {
	buf := &bytes.Buffer{}

	table := tablewriter.NewWriter(buf)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetRowSeparator("")
	table.AppendBulk(rows)
	table.Render()

	return buf.String()
}
