package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vswitchperf/vsreport/internal/config"
	"github.com/vswitchperf/vsreport/internal/output"
	"github.com/vswitchperf/vsreport/internal/report"
	"github.com/vswitchperf/vsreport/internal/testcases"
)

var (
	testcasesFile string
	templatePath  string
	verbose       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <results.csv> [results.csv...]",
	Short: "Generate Markdown test reports from results CSV files",
	Long: `Generate one Markdown test report per results CSV file.

Each data row in a results file is matched by its "id" column against the
test-case configuration, stripped of the "id" and "deployment" columns, and
rendered together with a snapshot of the host environment. The report is
written next to the input file with the extension replaced by ".md".

Examples:
  vsreport generate results/2026-08-29_throughput.csv
  vsreport generate --testcases conf/testcases.yaml --template report.tmpl results/*.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		log := Logger
		if verbose {
			log = newLogger(true)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if testcasesFile != "" {
			cfg.TestcasesFile = testcasesFile
		}
		if templatePath != "" {
			cfg.TemplatePath = templatePath
		}

		return runGenerate(log, cfg, args)
	},
}

// runGenerate renders one report per input file. Files are independent, so
// they render concurrently; when two inputs map to the same output path the
// last writer wins.
func runGenerate(log logrus.FieldLogger, cfg *config.Config, inputFiles []string) error {
	tcs, err := testcases.NewLoader(log, cfg.TestcasesFile).Load()
	if err != nil {
		return fmt.Errorf("loading test cases: %w", err)
	}

	gen := report.NewGenerator(log, report.WithTemplatePath(cfg.TemplatePath))

	reports := make([]*report.Report, len(inputFiles))

	var g errgroup.Group
	for i, inputFile := range inputFiles {
		i, inputFile := i, inputFile
		g.Go(func() error {
			rep, err := gen.Generate(tcs, inputFile)
			if err != nil {
				return fmt.Errorf("generating report for %s: %w", inputFile, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	formatter := output.NewFormatter(os.Stdout)
	summaries := output.NewSummaryFormatter(log)

	for _, rep := range reports {
		formatter.PrintPhase(rep.Path)
		fmt.Println(summaries.Format(rep.Entries))
		formatter.PrintSuccess(fmt.Sprintf("Test report written to %q", rep.Path))
	}

	return nil
}

func init() {
	generateCmd.Flags().StringVar(&testcasesFile, "testcases", "", "Path to the test-case configuration file (default from VSREPORT_TESTCASES_FILE)")
	generateCmd.Flags().StringVar(&templatePath, "template", "", "Path to a custom report template (default: builtin)")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(generateCmd)
}
