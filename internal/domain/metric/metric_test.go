package metric_test

import (
	"testing"

	"github.com/giftbench/giftbench/internal/domain/clean"
	"github.com/giftbench/giftbench/internal/domain/metric"
	"github.com/smartystreets/goconvey/convey"
)

func series(nums ...float64) []clean.Value {
	out := make([]clean.Value, len(nums))
	for i, n := range nums {
		out[i] = clean.Avail(n)
	}
	return out
}

func TestMean(t *testing.T) {
	convey.Convey("Given cleaned series", t, func() {
		convey.Convey("When all values are available", func() {
			m := metric.Mean(series(10, 20, 30))
			convey.So(m.Available(), convey.ShouldBeTrue)
			convey.So(m.Num(), convey.ShouldEqual, 20)
		})

		convey.Convey("When some values are unavailable", func() {
			s := []clean.Value{clean.Avail(10), clean.NotAvailable(), clean.Avail(30)}
			m := metric.Mean(s)

			convey.Convey("Then the mean should ignore the gaps", func() {
				convey.So(m.Available(), convey.ShouldBeTrue)
				convey.So(m.Num(), convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When every value is unavailable", func() {
			s := []clean.Value{clean.NotAvailable(), clean.NotAvailable()}

			convey.Convey("Then the mean should be not available, without panicking", func() {
				convey.So(func() { metric.Mean(s) }, convey.ShouldNotPanic)
				convey.So(metric.Mean(s).Available(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the series is empty", func() {
			convey.So(metric.Mean(nil).Available(), convey.ShouldBeFalse)
		})
	})
}

func TestMeanOfMeans(t *testing.T) {
	convey.Convey("Given a bucket of columns", t, func() {
		convey.Convey("When columns have different row counts contributing", func() {
			// Column means: 200, 1000, 3000.
			cols := [][]clean.Value{
				series(100, 200, 300),
				{clean.Avail(1000), clean.NotAvailable()},
				{clean.NotAvailable(), clean.Avail(3000)},
			}
			m := metric.MeanOfMeans(cols)

			convey.Convey("Then each column mean should weigh equally (mean of means, not pooled)", func() {
				convey.So(m.Available(), convey.ShouldBeTrue)
				convey.So(m.Num(), convey.ShouldEqual, 1400)
			})
		})

		convey.Convey("When a single-column bucket is aggregated", func() {
			m := metric.MeanOfMeans([][]clean.Value{series(5, 15)})
			convey.So(m.Num(), convey.ShouldEqual, 10)
		})

		convey.Convey("When the bucket has no columns", func() {
			convey.So(metric.MeanOfMeans(nil).Available(), convey.ShouldBeFalse)
		})

		convey.Convey("When every column is all-unavailable", func() {
			cols := [][]clean.Value{
				{clean.NotAvailable()},
				{clean.NotAvailable(), clean.NotAvailable()},
			}
			convey.So(metric.MeanOfMeans(cols).Available(), convey.ShouldBeFalse)
		})
	})
}

func TestTrend(t *testing.T) {
	convey.Convey("Given labeled columns", t, func() {
		labels := []string{"Donations 2022", "Donations 2023", "Donations 2024"}
		cols := [][]clean.Value{
			series(100, 300),
			{clean.NotAvailable()},
			series(500),
		}

		convey.Convey("When building the trend series", func() {
			points := metric.Trend(labels, cols)

			convey.Convey("Then only columns with a mean should appear, in order", func() {
				convey.So(points, convey.ShouldResemble, []metric.Point{
					{Label: "Donations 2022", Value: 200},
					{Label: "Donations 2024", Value: 500},
				})
			})
		})

		convey.Convey("When no column has a mean", func() {
			points := metric.Trend([]string{"a"}, [][]clean.Value{{clean.NotAvailable()}})
			convey.So(points, convey.ShouldBeEmpty)
		})
	})
}

func TestHistogram(t *testing.T) {
	convey.Convey("Given largest-gift values", t, func() {
		convey.Convey("When binning a spread of values", func() {
			bins := metric.Histogram(series(0, 25, 50, 75, 100), 4)

			convey.Convey("Then counts should cover every value once", func() {
				convey.So(bins, convey.ShouldHaveLength, 4)
				total := 0
				for _, b := range bins {
					total += b.Count
				}
				convey.So(total, convey.ShouldEqual, 5)
			})

			convey.Convey("And the maximum should land in the last bin", func() {
				convey.So(bins[3].Count, convey.ShouldEqual, 2) // 75 and 100
				convey.So(bins[3].High, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When every value is identical", func() {
			bins := metric.Histogram(series(42, 42, 42), 20)

			convey.Convey("Then a single bin should hold everything", func() {
				convey.So(bins, convey.ShouldHaveLength, 1)
				convey.So(bins[0].Count, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When no value is available", func() {
			convey.So(metric.Histogram([]clean.Value{clean.NotAvailable()}, 20), convey.ShouldBeNil)
			convey.So(metric.Histogram(nil, 20), convey.ShouldBeNil)
		})

		convey.Convey("When the bin count is not positive", func() {
			convey.So(metric.Histogram(series(1, 2), 0), convey.ShouldBeNil)
		})
	})
}
