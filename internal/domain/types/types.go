// Package types contains the report shapes shared between the service and
// the HTTP API.
package types

import "github.com/giftbench/giftbench/internal/domain/metric"

// ScoreEntry is the wire form of one benchmark score: a number in [0, 10]
// with one decimal digit, or null when not available, plus its band.
type ScoreEntry struct {
	Value *float64 `json:"value"`
	Band  string   `json:"band"`
}

// ScorePanel carries the four sub-scores and the composite.
type ScorePanel struct {
	Income      ScoreEntry `json:"income"`
	Pipeline    ScoreEntry `json:"pipeline"`
	Team        ScoreEntry `json:"team"`
	Integration ScoreEntry `json:"integration"`
	Composite   ScoreEntry `json:"composite"`
}

// Averages echoes the parsed metric averages for the diagnostics panel.
// Null means the metric was not available.
type Averages struct {
	Income       *float64 `json:"income"`
	Gifts        *float64 `json:"gifts"`
	Interactions *float64 `json:"interactions"`
	Events       *float64 `json:"events"`
}

// Charts carries the descriptive series. A series is present only when it
// holds at least one available value.
type Charts struct {
	IncomeTrend    []metric.Point `json:"income_trend,omitempty"`
	GiftCountTrend []metric.Point `json:"gift_count_trend,omitempty"`
	LargestGifts   []metric.Bin   `json:"largest_gifts,omitempty"`
}

// Report is the complete result of one table submission.
type Report struct {
	SubmissionID string     `json:"submission_id"`
	Rows         int        `json:"rows"`
	Columns      []string   `json:"columns"`
	Preview      [][]string `json:"preview,omitempty"`
	Averages     Averages   `json:"averages"`
	Scores       ScorePanel `json:"scores"`
	Charts       Charts     `json:"charts"`
}
