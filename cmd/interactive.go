package cmd

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vswitchperf/vsreport/internal/config"
	"github.com/vswitchperf/vsreport/internal/interactive"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive mode",
	Long:  `Launches the interactive menu for vsreport.`,
	Run: func(_ *cobra.Command, _ []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive drives the interactive menu loop until the user exits.
func RunInteractive() {
	fmt.Println("vsreport - Interactive Mode")
	fmt.Println("===========================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "Generate Report",
				Description: "Pick a results CSV file and render its Markdown report",
				Action: func() error {
					if err := generateInteractive(); err != nil {
						fmt.Printf("\nError: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					cfg, err := config.Load()
					if err != nil {
						fmt.Printf("\nError: %v\n", err)
					} else {
						fmt.Println(cfg.String())
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

// generateInteractive lists the results directory and renders the report for
// the selected CSV file.
func generateInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pattern := filepath.Join(cfg.ResultsDir, "*"+config.ResultsExtension)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("listing results files: %w", err)
	}
	if len(files) == 0 {
		fmt.Printf("No results files found in %s\n", cfg.ResultsDir)
		return nil
	}

	selected, err := interactive.SelectFromList("Select a results file:", files)
	if err != nil {
		fmt.Println("Selection canceled.")
		return nil
	}

	return runGenerate(Logger, cfg, []string{selected})
}
