package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("VSREPORT_RESULTS_DIR", "")
	t.Setenv("VSREPORT_TESTCASES_FILE", "")
	t.Setenv("VSREPORT_TEMPLATE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, DefaultResultsDir, cfg.ResultsDir)
	require.Equal(t, DefaultTestcasesFile, cfg.TestcasesFile)
	require.Empty(t, cfg.TemplatePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VSREPORT_RESULTS_DIR", "/var/lib/benchmarks")
	t.Setenv("VSREPORT_TESTCASES_FILE", "conf/testcases.yaml")
	t.Setenv("VSREPORT_TEMPLATE", "conf/report.tmpl")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/benchmarks", cfg.ResultsDir)
	require.Equal(t, "conf/testcases.yaml", cfg.TestcasesFile)
	require.Equal(t, "conf/report.tmpl", cfg.TemplatePath)
}

func TestString_MasksEmptyTemplate(t *testing.T) {
	t.Parallel()

	cfg := &Config{ResultsDir: "results", TestcasesFile: "testcases.yaml"}
	require.Contains(t, cfg.String(), "(builtin)")
}
