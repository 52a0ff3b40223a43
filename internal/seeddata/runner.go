package seeddata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/giftbench/giftbench/pkg/logger"
)

// Run generates a donor spreadsheet and, when a base URL is configured,
// submits it to the analyze endpoint and reports the returned scores.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting donor seed run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("donors", config.NumDonors),
		logger.Int("years", config.Years),
		logger.Float64("messyRatio", config.MessyRatio),
		logger.String("output", config.OutputFile))

	donors := generateDonors(ctx, config, stats)

	if err := writeCSV(ctx, config, donors, stats); err != nil {
		return fmt.Errorf("donor file generation failed: %w", err)
	}

	if config.BaseURL != "" {
		if err := checkServiceHealth(ctx, config); err != nil {
			return fmt.Errorf("service health check failed: %w", err)
		}
		if err := submitFile(ctx, config, stats); err != nil {
			return fmt.Errorf("submission failed: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := &http.Client{Timeout: config.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseURL+"/healthz", http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Any 200 counts as healthy; the endpoint serves Prometheus metrics.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// analyzeResponse mirrors the fields of the analyze report this tool
// cares about.
type analyzeResponse struct {
	SubmissionID string `json:"submission_id"`
	Rows         int    `json:"rows"`
	Scores       struct {
		Composite struct {
			Value *float64 `json:"value"`
			Band  string   `json:"band"`
		} `json:"composite"`
	} `json:"scores"`
}

// submitFile uploads the generated spreadsheet to the analyze endpoint.
func submitFile(ctx context.Context, config *Config, stats *Stats) error {
	f, err := os.Open(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to open donor file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filepath.Base(config.OutputFile))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, f); err != nil {
		return fmt.Errorf("failed to copy file into form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	client := &http.Client{Timeout: config.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.BaseURL+"/analyze", &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit file: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("analyze failed with status %d: %s", resp.StatusCode, string(payload))
	}

	var report analyzeResponse
	if err := json.Unmarshal(payload, &report); err != nil {
		return fmt.Errorf("failed to decode report: %w", err)
	}

	stats.Submitted = true
	stats.CompositeScore = report.Scores.Composite.Value

	fields := []logger.Field{
		logger.String("submissionID", report.SubmissionID),
		logger.Int("rows", report.Rows),
		logger.String("band", report.Scores.Composite.Band),
	}
	if report.Scores.Composite.Value != nil {
		fields = append(fields, logger.Float64("composite", *report.Scores.Composite.Value))
	}
	logger.Get().Info(ctx, "analyze accepted submission", fields...)
	return nil
}

// displayFinalStats logs run totals.
func displayFinalStats(ctx context.Context, stats *Stats) {
	fields := []logger.Field{
		logger.Int("donors", stats.DonorsGenerated),
		logger.Int("cells", stats.CellsWritten),
		logger.Int("messyCells", stats.MessyCells),
		logger.Any("submitted", stats.Submitted),
		logger.String("duration", stats.Duration.String()),
	}
	if stats.CompositeScore != nil {
		fields = append(fields, logger.Float64("composite", *stats.CompositeScore))
	}
	logger.Get().Info(ctx, "seed run completed", fields...)
}
