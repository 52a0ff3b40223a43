package seeddata

import "time"

// Config holds configuration for the donor seed tool.
type Config struct {
	BaseURL    string        // Base URL of the service; empty skips submission
	NumDonors  int           // Number of donor rows to generate
	Years      int           // Number of financial year column pairs
	StartYear  int           // First financial year
	MessyRatio float64       // Fraction of cells rendered blank or as junk
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Output CSV file
	Verbose    bool          // Enable verbose logging
}

// Donor represents one generated prospect row.
type Donor struct {
	Name         string
	Income       []float64 // per year, aligned with the year columns
	GiftCounts   []int
	Interactions int
	Events       int
	LargestGift  float64
}

// Stats holds run statistics.
type Stats struct {
	DonorsGenerated int
	CellsWritten    int
	MessyCells      int
	Submitted       bool
	CompositeScore  *float64
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
