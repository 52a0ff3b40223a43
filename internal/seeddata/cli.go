package seeddata

import (
	"fmt"
	"os"

	"github.com/giftbench/giftbench/pkg/logger"
)

// SetupLogging initializes the structured logger for the tool.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		if err := logger.SetLevelString("debug"); err != nil {
			return fmt.Errorf("failed to set log level: %w", err)
		}
	}
	return nil
}

// ShowHelp prints usage information for the donor seed tool.
func ShowHelp() {
	os.Stdout.WriteString(`GiftBench Donor Seed Tool
=========================

Generates a synthetic major-gift prospect spreadsheet with realistic
messy cells, and optionally submits it to a running GiftBench service.

Usage:
  go run cmd/seed-donors/main.go [options]

Options:
  -url string
        Base URL of the service; empty only writes the file
  -donors int
        Number of donor rows to generate (default 500)
  -years int
        Number of financial year column pairs (default 3)
  -start-year int
        First financial year (default 2021)
  -messy float
        Fraction of cells rendered blank or as junk (default 0.05)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output CSV file (default: seed_donors_TIMESTAMP.csv)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Write a 500-row file only
  go run cmd/seed-donors/main.go

  # Generate and submit to a local service
  go run cmd/seed-donors/main.go -url http://localhost:9080 -donors 2000

  # A very messy file to exercise cleaning
  go run cmd/seed-donors/main.go -messy 0.25 -output messy.csv
`)
}
