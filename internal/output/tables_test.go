package output

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vswitchperf/vsreport/internal/report"
	"github.com/vswitchperf/vsreport/internal/results"
	"github.com/vswitchperf/vsreport/internal/testcases"
)

func TestSummaryFormat_Empty(t *testing.T) {
	t.Parallel()

	f := NewSummaryFormatter(logrus.New())
	require.Equal(t, "No test results found", f.Format(nil))
}

func TestSummaryFormat_Entries(t *testing.T) {
	t.Parallel()

	row := results.NewRow()
	row.Set("throughput", "1000")
	row.Set("latency", "12")

	entries := []*report.Entry{
		{
			ID:         "TESTA",
			Name:       "testA",
			Deployment: "single",
			Conf:       &testcases.TestCase{Name: "testA"},
			Result:     row,
		},
		{
			ID:         "TESTB",
			Name:       "testB",
			Deployment: "dual",
			Conf:       &testcases.TestCase{},
			Result:     results.NewRow(),
		},
	}

	out := NewSummaryFormatter(logrus.New()).Format(entries)
	require.Contains(t, out, "TESTA")
	require.Contains(t, out, "single")
	require.Contains(t, out, "matched")
	require.Contains(t, out, "TESTB")
	require.Contains(t, out, "none")
	require.Contains(t, out, "2")
}
