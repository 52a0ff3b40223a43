package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/giftbench/giftbench/internal/seeddata"
)

// Default configuration constants.
const (
	defaultNumDonors  = 500
	defaultYears      = 3
	defaultStartYear  = 2021
	defaultMessyRatio = 0.05
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "", "Base URL of the service; empty only writes the file")
		numDonors  = flag.Int("donors", defaultNumDonors, "Number of donor rows to generate")
		years      = flag.Int("years", defaultYears, "Number of financial year column pairs")
		startYear  = flag.Int("start-year", defaultStartYear, "First financial year")
		messyRatio = flag.Float64("messy", defaultMessyRatio, "Fraction of cells rendered blank or as junk")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Output CSV file (default: seed_donors_TIMESTAMP.csv)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seeddata.ShowHelp()
		return
	}

	if err := seeddata.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	output := *outputFile
	if output == "" {
		output = "seed_donors_" + time.Now().Format("20060102_150405") + ".csv"
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &seeddata.Config{
		BaseURL:    *baseURL,
		NumDonors:  *numDonors,
		Years:      *years,
		StartYear:  *startYear,
		MessyRatio: *messyRatio,
		Timeout:    *timeout,
		OutputFile: output,
		Verbose:    *verbose,
	}

	if err := seeddata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seed run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
