// Package metric reduces cleaned series to the scalar averages and chart
// series the benchmark consumes. Aggregation is tolerant: unavailable cells
// are excluded from their column's mean, and an empty or all-unavailable
// input yields "not available" rather than an error.
package metric

import "github.com/giftbench/giftbench/internal/domain/clean"

// Point is one labeled value of a chart series (e.g. a column's mean).
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Mean averages the available values of one cleaned series. A series with no
// available value has no mean.
func Mean(series []clean.Value) clean.Value {
	var sum float64
	var n int
	for _, v := range series {
		if v.Available() {
			sum += v.Num()
			n++
		}
	}
	if n == 0 {
		return clean.NotAvailable()
	}
	return clean.Avail(sum / float64(n))
}

// MeanOfMeans averages the column means of a bucket. This is deliberately a
// two-level mean (each column's mean weighs equally, regardless of how many
// cells contributed to it), not a pooled per-row mean. Columns without a
// mean are skipped; a bucket with none has no mean.
func MeanOfMeans(columns [][]clean.Value) clean.Value {
	means := make([]clean.Value, 0, len(columns))
	for _, col := range columns {
		means = append(means, Mean(col))
	}
	return Mean(means)
}

// Trend returns one point per column that has a mean, labeled by column
// name, in the given order. Columns without a mean are omitted.
func Trend(labels []string, columns [][]clean.Value) []Point {
	var points []Point
	for i, col := range columns {
		if m := Mean(col); m.Available() {
			points = append(points, Point{Label: labels[i], Value: m.Num()})
		}
	}
	return points
}

// Bin is one fixed-width histogram bucket over [Low, High); the last bin is
// closed on both ends.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Histogram distributes the available values into fixed-width bins
// spanning the observed range. It returns nil when no value is available or
// bins is not positive. A degenerate range (all values equal) collapses to a
// single bin holding everything.
func Histogram(series []clean.Value, bins int) []Bin {
	if bins <= 0 {
		return nil
	}

	var values []float64
	for _, v := range series {
		if v.Available() {
			values = append(values, v.Num())
		}
	}
	if len(values) == 0 {
		return nil
	}

	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	if low == high {
		return []Bin{{Low: low, High: high, Count: len(values)}}
	}

	width := (high - low) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Low = low + float64(i)*width
		out[i].High = low + float64(i+1)*width
	}
	out[bins-1].High = high

	for _, v := range values {
		idx := int((v - low) / width)
		if idx >= bins {
			idx = bins - 1 // the maximum lands in the last, closed bin
		}
		out[idx].Count++
	}
	return out
}
