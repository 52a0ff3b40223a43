// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/giftbench/giftbench/internal/domain/clean"
	"github.com/giftbench/giftbench/internal/domain/columns"
	"github.com/giftbench/giftbench/internal/domain/donortable"
	"github.com/giftbench/giftbench/internal/domain/metric"
	"github.com/giftbench/giftbench/internal/domain/scoring"
	"github.com/giftbench/giftbench/internal/domain/types"
	"github.com/giftbench/giftbench/pkg/logger"
	"github.com/giftbench/giftbench/pkg/metrics"
)

// Default analysis configuration.
const (
	defaultHistogramBins = 20
	defaultPreviewRows   = 5
	millisecond          = float64(time.Millisecond)
)

// Service turns one submitted table into one benchmark report. It holds no
// state between submissions beyond observability counters.
type Service struct {
	teamFTE       float64
	histogramBins int
	previewRows   int
	logger        logger.Logger

	mu    sync.Mutex
	stats serviceStats
}

// serviceStats are process-local observability totals, not business state.
type serviceStats struct {
	submissions    uint64
	failures       uint64
	rows           uint64
	cellsCleaned   uint64
	cellFailures   uint64
	lastSubmission time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithTeamFTE sets the placeholder staffing constant behind the team factor.
func WithTeamFTE(fte float64) Option {
	return func(s *Service) {
		if fte >= 0 {
			s.teamFTE = fte
		}
	}
}

// WithHistogramBins sets the bin count for the largest-gift distribution.
func WithHistogramBins(bins int) Option {
	return func(s *Service) {
		if bins > 0 {
			s.histogramBins = bins
		}
	}
}

// WithPreviewRows sets how many raw rows a report echoes back.
func WithPreviewRows(rows int) Option {
	return func(s *Service) {
		if rows >= 0 {
			s.previewRows = rows
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service with the given options.
func New(opts ...Option) *Service {
	s := &Service{
		teamFTE:       scoring.DefaultTeamFTE,
		histogramBins: defaultHistogramBins,
		previewRows:   defaultPreviewRows,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Analyze runs the full benchmark over one table: bucket selection, value
// cleaning, metric aggregation, scoring, and chart assembly. It is a single
// synchronous computation; cell-level failures degrade locally to "not
// available" and only a table without any donation column is rejected.
func (s *Service) Analyze(ctx context.Context, table *donortable.Table) (types.Report, error) {
	start := time.Now()

	buckets := columns.Select(table.Headers())
	if !buckets.HasDonationData() {
		s.recordFailure()
		return types.Report{}, fmt.Errorf("analyze: %w", ErrNoDonationColumns)
	}

	var cleaned, failed int
	cleanBucket := func(bucket []columns.Column, c clean.Cleaner) [][]clean.Value {
		cols := make([][]clean.Value, 0, len(bucket))
		// Positional access so duplicated header names each contribute
		// their own cells.
		for _, col := range bucket {
			series := clean.Series(table.ColumnAt(col.Index), c)
			for _, v := range series {
				cleaned++
				if !v.Available() {
					failed++
				}
			}
			cols = append(cols, series)
		}
		return cols
	}

	// Currency-flavored roles share the currency cleaner; counts stay plain.
	incomeCols := cleanBucket(buckets.Income, clean.Currency)
	countCols := cleanBucket(buckets.GiftCount, clean.Number)
	interactionCols := cleanBucket(buckets.Interactions, clean.Currency)
	eventCols := cleanBucket(buckets.Events, clean.Number)
	largestCols := cleanBucket(buckets.LargestGift, clean.Currency)

	avgIncome := metric.MeanOfMeans(incomeCols)
	avgGifts := metric.MeanOfMeans(countCols)
	avgInteractions := metric.MeanOfMeans(interactionCols)
	avgEvents := metric.MeanOfMeans(eventCols)

	// Interactions proxy for asks.
	set := scoring.Compute(avgIncome, avgGifts, avgInteractions, avgEvents, s.teamFTE)

	report := types.Report{
		SubmissionID: uuid.NewString(),
		Rows:         table.RowCount(),
		Columns:      table.Headers(),
		Preview:      table.Preview(s.previewRows),
		Averages: types.Averages{
			Income:       avgIncome.Ptr(),
			Gifts:        avgGifts.Ptr(),
			Interactions: avgInteractions.Ptr(),
			Events:       avgEvents.Ptr(),
		},
		Scores: scorePanel(set),
		Charts: types.Charts{
			IncomeTrend:    metric.Trend(columns.Names(buckets.Income), incomeCols),
			GiftCountTrend: metric.Trend(columns.Names(buckets.GiftCount), countCols),
		},
	}
	if len(largestCols) > 0 {
		report.Charts.LargestGifts = metric.Histogram(largestCols[0], s.histogramBins)
	}

	s.recordSubmission(table.RowCount(), cleaned, failed, set, time.Since(start))
	s.logger.Info(ctx, "submission analyzed",
		logger.String("submission_id", report.SubmissionID),
		logger.Int("rows", report.Rows),
		logger.Int("cells_cleaned", cleaned),
		logger.Int("cell_parse_failures", failed),
		logger.String("composite_band", string(set.Composite.Band())),
	)
	return report, nil
}

// scorePanel converts a score set to its wire form.
func scorePanel(set scoring.Set) types.ScorePanel {
	entry := func(s scoring.Score) types.ScoreEntry {
		return types.ScoreEntry{Value: s.Ptr(), Band: string(s.Band())}
	}
	return types.ScorePanel{
		Income:      entry(set.Income),
		Pipeline:    entry(set.Pipeline),
		Team:        entry(set.Team),
		Integration: entry(set.Integration),
		Composite:   entry(set.Composite),
	}
}

// recordSubmission updates stats and metrics for a scored submission.
func (s *Service) recordSubmission(rows, cleaned, failed int, set scoring.Set, elapsed time.Duration) {
	s.mu.Lock()
	s.stats.submissions++
	s.stats.rows += uint64(rows)
	s.stats.cellsCleaned += uint64(cleaned)
	s.stats.cellFailures += uint64(failed)
	s.stats.lastSubmission = time.Now()
	s.mu.Unlock()

	metrics.RecordSubmissionProcessed()
	metrics.RecordSubmissionDuration(float64(elapsed.Nanoseconds()) / millisecond)
	metrics.RecordSubmissionRows(rows)
	metrics.RecordCellsCleaned(cleaned)
	metrics.RecordCellParseFailures(failed)

	for factor, score := range map[string]scoring.Score{
		scoring.FactorIncome:      set.Income,
		scoring.FactorPipeline:    set.Pipeline,
		scoring.FactorTeam:        set.Team,
		scoring.FactorIntegration: set.Integration,
		scoring.FactorComposite:   set.Composite,
	} {
		if score.Available() {
			metrics.RecordScore(factor, score.Value())
		} else {
			metrics.RecordScoreUnavailable(factor)
		}
	}
}

// recordFailure updates stats and metrics for a rejected submission.
func (s *Service) recordFailure() {
	s.mu.Lock()
	s.stats.failures++
	s.mu.Unlock()
	metrics.RecordSubmissionFailure()
}

// GetStats returns service statistics for the stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]interface{}{
		"submissions":        s.stats.submissions,
		"submissionFailures": s.stats.failures,
		"rowsAnalyzed":       s.stats.rows,
		"cellsCleaned":       s.stats.cellsCleaned,
		"cellParseFailures":  s.stats.cellFailures,
		"teamFTE":            s.teamFTE,
		"histogramBins":      s.histogramBins,
	}
	if !s.stats.lastSubmission.IsZero() {
		stats["lastSubmission"] = s.stats.lastSubmission.UTC().Format(time.RFC3339)
	}
	return stats
}
