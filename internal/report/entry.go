package report

import (
	"github.com/vswitchperf/vsreport/internal/results"
	"github.com/vswitchperf/vsreport/internal/sysinfo"
	"github.com/vswitchperf/vsreport/internal/testcases"
)

// Entry is one rendered test in the report. Templates see one Entry per
// CSV data row, in row order.
type Entry struct {
	// ID is the uppercased test identifier, used for section headings.
	ID string
	// Name is the identifier exactly as it appears in the results file.
	Name string
	// Deployment names the deployment scenario the row was measured under.
	Deployment string
	// Conf is the matched test-case configuration, or an empty test case
	// when no configuration matches.
	Conf *testcases.TestCase
	// Result holds the row's metrics, with the identifier and deployment
	// columns removed.
	Result *results.Row
	// Env describes the host the benchmark ran on.
	Env sysinfo.Snapshot
}

// match returns the first test case whose Name equals id, or an empty test
// case when none matches. First match wins when names repeat.
func match(tcs []*testcases.TestCase, id string) *testcases.TestCase {
	for _, tc := range tcs {
		if tc.Name == id {
			return tc
		}
	}
	return &testcases.TestCase{}
}
