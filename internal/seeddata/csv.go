package seeddata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/giftbench/giftbench/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Messy cell variants. The scorer is expected to drop these during
// cleaning, so a seeded file exercises the parse-failure path too.
var messyVariants = []string{"", "N/A", "unknown", "  ", "-"}

// headerRow builds the spreadsheet header for the configured year span.
func headerRow(config *Config) []string {
	header := []string{"Name"}
	for y := 0; y < config.Years; y++ {
		header = append(header, fmt.Sprintf("Donations %d", config.StartYear+y))
	}
	for y := 0; y < config.Years; y++ {
		header = append(header, fmt.Sprintf("Donations Count %d", config.StartYear+y))
	}
	header = append(header, "No. Interactions*", "No Events Attended", "Largest Gift")
	return header
}

// donorRow renders one donor as spreadsheet cells, occasionally
// substituting a messy variant per the configured ratio.
func donorRow(d Donor, config *Config, stats *Stats) []string {
	row := []string{d.Name}
	for _, v := range d.Income {
		row = append(row, messyOr(formatCurrency(v), config, stats))
	}
	for _, c := range d.GiftCounts {
		row = append(row, messyOr(strconv.Itoa(c), config, stats))
	}
	row = append(row,
		messyOr(strconv.Itoa(d.Interactions), config, stats),
		messyOr(strconv.Itoa(d.Events), config, stats),
		messyOr(formatCurrency(d.LargestGift), config, stats),
	)
	stats.CellsWritten += len(row)
	return row
}

func messyOr(clean string, config *Config, stats *Stats) string {
	if getRandomFloat() < config.MessyRatio {
		stats.MessyCells++
		return messyVariants[getRandomInt(len(messyVariants))]
	}
	return clean
}

// formatCurrency renders a value the way fundraising exports usually do,
// with a pound sign and thousands separators.
func formatCurrency(v float64) string {
	whole := strconv.FormatInt(int64(v), 10)
	var b strings.Builder
	b.WriteString("£")
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String()
}

// writeCSV saves the generated donors to the configured output file.
func writeCSV(ctx context.Context, config *Config, donors []Donor, stats *Stats) error {
	filename := config.OutputFile

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(headerRow(config)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, d := range donors {
		if err := w.Write(donorRow(d, config, stats)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	logger.Get().Info(ctx, "wrote donor file",
		logger.String("file", filename),
		logger.Int("donors", len(donors)),
		logger.Int("messyCells", stats.MessyCells))
	return nil
}
