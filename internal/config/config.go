// Package config handles configuration loading and management
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	ResultsDir    string
	TestcasesFile string
	TemplatePath  string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if the file doesn't exist
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		ResultsDir:    getEnv("VSREPORT_RESULTS_DIR", DefaultResultsDir),
		TestcasesFile: getEnv("VSREPORT_TESTCASES_FILE", DefaultTestcasesFile),
		TemplatePath:  getEnv("VSREPORT_TEMPLATE", ""),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	templateDisplay := c.TemplatePath
	if templateDisplay == "" {
		templateDisplay = "(builtin)"
	}

	return fmt.Sprintf(`Current Configuration:
======================
Results Directory:  %s
Testcases File:     %s
Report Template:    %s`,
		c.ResultsDir,
		c.TestcasesFile,
		templateDisplay,
	)
}
