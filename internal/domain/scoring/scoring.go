// Package scoring computes the four-factor benchmark scores from cleaned
// metric averages. Every function is pure and total: unavailable inputs
// produce unavailable scores (never a silent zero), and every emitted score
// lies in [0, 10] after rounding to one decimal place.
package scoring

import (
	"math"

	"github.com/giftbench/giftbench/internal/domain/clean"
)

// Benchmark factor names, as emitted in reports and metrics.
const (
	FactorIncome      = "income"
	FactorPipeline    = "pipeline"
	FactorTeam        = "team"
	FactorIntegration = "integration"
	FactorComposite   = "composite"
)

// Scoring formula constants.
const (
	maxScore = 10.0

	// Income: 2 points per £1M of average annual income.
	incomeUnit    = 1_000_000.0
	incomePerUnit = 2.0

	// Pipeline: asks-to-gifts ratio scaled by 8 when gifts outnumber asks,
	// gifts-to-asks ratio scaled by 10 otherwise.
	overAskScale  = 8.0
	underAskScale = 10.0

	// Team: 2 points per placeholder FTE.
	teamPerFTE = 2.0

	// Integration: 1 point per two events attended.
	eventsPerPoint = 2.0

	// DefaultTeamFTE is the placeholder staffing constant; uploaded tables
	// carry no team data.
	DefaultTeamFTE = 1.0
)

// Band thresholds (dashboard coloring).
const (
	redCeiling   = 3.0
	amberCeiling = 7.0
)

// Band is the traffic-light classification of a score.
type Band string

// Band values.
const (
	BandNA    Band = "na"
	BandRed   Band = "red"
	BandAmber Band = "amber"
	BandGreen Band = "green"
)

// Score is a benchmark score in [0, 10], or the explicit "not available"
// marker (the zero Score).
type Score struct {
	val float64
	ok  bool
}

// Available reports whether the score could be computed.
func (s Score) Available() bool {
	return s.ok
}

// Value returns the score, and 0 when not available.
func (s Score) Value() float64 {
	return s.val
}

// Ptr returns the score for JSON encoding: nil when not available.
func (s Score) Ptr() *float64 {
	if !s.ok {
		return nil
	}
	v := s.val
	return &v
}

// Band classifies the score: na, red (<=3), amber (<7), green.
func (s Score) Band() Band {
	switch {
	case !s.ok:
		return BandNA
	case s.val <= redCeiling:
		return BandRed
	case s.val < amberCeiling:
		return BandAmber
	default:
		return BandGreen
	}
}

// Set holds the four sub-scores plus the composite for one submission.
// Ephemeral: recomputed per submission, never persisted.
type Set struct {
	Income      Score
	Pipeline    Score
	Team        Score
	Integration Score
	Composite   Score
}

// Compute scores one submission's metric averages. The asks input is the
// average interaction count, used as a proxy for solicitations.
func Compute(avgIncome, avgGifts, avgAsks, avgEvents clean.Value, teamFTE float64) Set {
	set := Set{
		Income:      Income(avgIncome),
		Pipeline:    Pipeline(avgGifts, avgAsks),
		Team:        Team(teamFTE),
		Integration: Integration(avgEvents),
	}
	set.Composite = Composite(set.Income, set.Pipeline, set.Team, set.Integration)
	return set
}

// Income scores average annual income: 2 points per £1M, saturating at 10
// (£5M and above).
func Income(avg clean.Value) Score {
	if !avg.Available() {
		return Score{}
	}
	return bounded(avg.Num() / incomeUnit * incomePerUnit)
}

// Pipeline scores gift flow against solicitation volume. Zero asks scores 0
// regardless of gifts. More gifts than asks scores the inverse ratio scaled
// by 8; otherwise the ratio scaled by 10, so equal gifts and asks scores 10.
func Pipeline(gifts, asks clean.Value) Score {
	if !gifts.Available() || !asks.Available() {
		return Score{}
	}
	g, a := gifts.Num(), asks.Num()
	switch {
	case a == 0:
		return bounded(0)
	case g > a:
		return bounded(a / g * overAskScale)
	default:
		return bounded(g / a * underAskScale)
	}
}

// Team scores the placeholder staffing constant: 2 points per FTE, capped at
// 10. With the default 1.0 FTE this is always exactly 2.0; no uploaded data
// feeds it.
func Team(fte float64) Score {
	return bounded(fte * teamPerFTE)
}

// Integration scores event attendance: 1 point per two events, saturating at
// 10 (20 events and above).
func Integration(events clean.Value) Score {
	if !events.Available() {
		return Score{}
	}
	return bounded(events.Num() / eventsPerPoint)
}

// Composite averages the sub-scores, rounded to one decimal. It is not
// available when any sub-score is.
func Composite(subs ...Score) Score {
	var sum float64
	for _, s := range subs {
		if !s.Available() {
			return Score{}
		}
		sum += s.Value()
	}
	if len(subs) == 0 {
		return Score{}
	}
	return bounded(sum / float64(len(subs)))
}

// bounded rounds to one decimal (half away from zero) and clamps to
// [0, maxScore].
func bounded(v float64) Score {
	v = math.Round(v*10) / 10
	v = math.Max(0, math.Min(maxScore, v))
	return Score{val: v, ok: true}
}
