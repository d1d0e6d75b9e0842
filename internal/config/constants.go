package config

const (
	// DefaultResultsDir is where the interactive mode looks for results CSV
	// files when VSREPORT_RESULTS_DIR is not set.
	DefaultResultsDir = "results"
	// DefaultTestcasesFile is the test-case configuration file used when
	// VSREPORT_TESTCASES_FILE is not set.
	DefaultTestcasesFile = "testcases.yaml"
	// ResultsExtension is the file extension of results files.
	ResultsExtension = ".csv"
)
