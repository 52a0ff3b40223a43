package scoring_test

import (
	"testing"

	"github.com/giftbench/giftbench/internal/domain/clean"
	"github.com/giftbench/giftbench/internal/domain/scoring"
	"github.com/smartystreets/goconvey/convey"
)

func TestIncome(t *testing.T) {
	convey.Convey("Given average annual income figures", t, func() {
		convey.Convey("When scoring typical values", func() {
			cases := map[float64]float64{
				0:         0,
				500_000:   1.0,
				1_000_000: 2.0,
				2_000_000: 4.0,
				4_950_000: 9.9,
			}
			for in, want := range cases {
				s := scoring.Income(clean.Avail(in))
				convey.So(s.Available(), convey.ShouldBeTrue)
				convey.So(s.Value(), convey.ShouldEqual, want)
			}
		})

		convey.Convey("When income reaches the saturation boundary", func() {
			convey.So(scoring.Income(clean.Avail(5_000_000)).Value(), convey.ShouldEqual, 10.0)
			convey.So(scoring.Income(clean.Avail(50_000_000)).Value(), convey.ShouldEqual, 10.0)
		})

		convey.Convey("Then any finite non-negative input stays within [0, 10]", func() {
			for _, in := range []float64{0, 1, 999, 1e6, 1e9, 1e12} {
				s := scoring.Income(clean.Avail(in))
				convey.So(s.Value(), convey.ShouldBeBetweenOrEqual, 0, 10)
			}
		})

		convey.Convey("When income is not available", func() {
			convey.So(scoring.Income(clean.NotAvailable()).Available(), convey.ShouldBeFalse)
		})
	})
}

func TestPipeline(t *testing.T) {
	convey.Convey("Given gift and ask averages", t, func() {
		convey.Convey("When there are no asks", func() {
			convey.Convey("Then the score is 0 regardless of gifts", func() {
				for _, gifts := range []float64{0, 1, 50, 1000} {
					s := scoring.Pipeline(clean.Avail(gifts), clean.Avail(0))
					convey.So(s.Available(), convey.ShouldBeTrue)
					convey.So(s.Value(), convey.ShouldEqual, 0.0)
				}
			})
		})

		convey.Convey("When gifts equal asks", func() {
			s := scoring.Pipeline(clean.Avail(10), clean.Avail(10))

			convey.Convey("Then the equal case falls to the else branch and scores 10", func() {
				convey.So(s.Value(), convey.ShouldEqual, 10.0)
			})
		})

		convey.Convey("When gifts outnumber asks", func() {
			s := scoring.Pipeline(clean.Avail(20), clean.Avail(10))

			convey.Convey("Then the inverse ratio is scaled by 8", func() {
				convey.So(s.Value(), convey.ShouldEqual, 4.0) // round(10/20*8, 1)
			})
		})

		convey.Convey("When asks outnumber gifts", func() {
			s := scoring.Pipeline(clean.Avail(5), clean.Avail(20))

			convey.Convey("Then the ratio is scaled by 10", func() {
				convey.So(s.Value(), convey.ShouldEqual, 2.5)
			})
		})

		convey.Convey("Then the score never escapes [0, 10]", func() {
			pairs := [][2]float64{{1, 1000}, {1000, 1}, {3, 7}, {7, 3}, {0.5, 0.5}}
			for _, p := range pairs {
				s := scoring.Pipeline(clean.Avail(p[0]), clean.Avail(p[1]))
				convey.So(s.Value(), convey.ShouldBeBetweenOrEqual, 0, 10)
			}
		})

		convey.Convey("When either input is not available", func() {
			convey.So(scoring.Pipeline(clean.NotAvailable(), clean.Avail(10)).Available(), convey.ShouldBeFalse)
			convey.So(scoring.Pipeline(clean.Avail(10), clean.NotAvailable()).Available(), convey.ShouldBeFalse)
		})
	})
}

func TestTeam(t *testing.T) {
	convey.Convey("Given the placeholder staffing constant", t, func() {
		convey.Convey("Then the default FTE always scores exactly 2.0", func() {
			s := scoring.Team(scoring.DefaultTeamFTE)
			convey.So(s.Available(), convey.ShouldBeTrue)
			convey.So(s.Value(), convey.ShouldEqual, 2.0)
		})

		convey.Convey("Then a large FTE saturates at 10", func() {
			convey.So(scoring.Team(6).Value(), convey.ShouldEqual, 10.0)
		})
	})
}

func TestIntegration(t *testing.T) {
	convey.Convey("Given average event attendance", t, func() {
		convey.Convey("When scoring typical values", func() {
			convey.So(scoring.Integration(clean.Avail(4)).Value(), convey.ShouldEqual, 2.0)
			convey.So(scoring.Integration(clean.Avail(7)).Value(), convey.ShouldEqual, 3.5)
		})

		convey.Convey("When attendance reaches the saturation boundary", func() {
			for _, events := range []float64{20, 21, 100} {
				convey.So(scoring.Integration(clean.Avail(events)).Value(), convey.ShouldEqual, 10.0)
			}
		})

		convey.Convey("When attendance is not available", func() {
			convey.So(scoring.Integration(clean.NotAvailable()).Available(), convey.ShouldBeFalse)
		})
	})
}

func TestComposite(t *testing.T) {
	convey.Convey("Given four sub-scores", t, func() {
		avail := func(v float64) scoring.Score {
			return scoring.Income(clean.Avail(v * 500_000)) // v/1M*2 = v
		}

		convey.Convey("When all are available", func() {
			s := scoring.Composite(avail(4), avail(6), avail(2), avail(2))

			convey.Convey("Then the composite is their rounded mean", func() {
				convey.So(s.Available(), convey.ShouldBeTrue)
				convey.So(s.Value(), convey.ShouldEqual, 3.5)
			})
		})

		convey.Convey("When any sub-score is unavailable", func() {
			s := scoring.Composite(avail(4), scoring.Score{}, avail(2), avail(2))

			convey.Convey("Then unavailability propagates to the composite", func() {
				convey.So(s.Available(), convey.ShouldBeFalse)
			})
		})
	})
}

func TestCompute(t *testing.T) {
	convey.Convey("Given the metric averages of one submission", t, func() {
		convey.Convey("When every metric is available", func() {
			set := scoring.Compute(
				clean.Avail(2_000_000), // income -> 4.0
				clean.Avail(20),        // gifts
				clean.Avail(15),        // asks -> gifts > asks -> round(15/20*8) = 6.0
				clean.Avail(4),         // events -> 2.0
				scoring.DefaultTeamFTE, // -> 2.0
			)

			convey.Convey("Then every factor should score as specified", func() {
				convey.So(set.Income.Value(), convey.ShouldEqual, 4.0)
				convey.So(set.Pipeline.Value(), convey.ShouldEqual, 6.0)
				convey.So(set.Team.Value(), convey.ShouldEqual, 2.0)
				convey.So(set.Integration.Value(), convey.ShouldEqual, 2.0)
				convey.So(set.Composite.Value(), convey.ShouldEqual, 3.5)
			})
		})

		convey.Convey("When a metric is missing", func() {
			set := scoring.Compute(
				clean.Avail(2_000_000),
				clean.Avail(20),
				clean.NotAvailable(),
				clean.Avail(4),
				scoring.DefaultTeamFTE,
			)

			convey.Convey("Then its score and the composite are not available", func() {
				convey.So(set.Pipeline.Available(), convey.ShouldBeFalse)
				convey.So(set.Composite.Available(), convey.ShouldBeFalse)
				convey.So(set.Income.Available(), convey.ShouldBeTrue)
			})
		})
	})
}

func TestBands(t *testing.T) {
	convey.Convey("Given scores across the banding thresholds", t, func() {
		convey.Convey("Then banding should follow na/red/amber/green", func() {
			convey.So(scoring.Score{}.Band(), convey.ShouldEqual, scoring.BandNA)
			convey.So(scoring.Income(clean.Avail(0)).Band(), convey.ShouldEqual, scoring.BandRed)
			convey.So(scoring.Income(clean.Avail(1_500_000)).Band(), convey.ShouldEqual, scoring.BandRed)   // 3.0
			convey.So(scoring.Income(clean.Avail(1_550_000)).Band(), convey.ShouldEqual, scoring.BandAmber) // 3.1
			convey.So(scoring.Income(clean.Avail(3_450_000)).Band(), convey.ShouldEqual, scoring.BandAmber) // 6.9
			convey.So(scoring.Income(clean.Avail(3_500_000)).Band(), convey.ShouldEqual, scoring.BandGreen) // 7.0
			convey.So(scoring.Income(clean.Avail(5_000_000)).Band(), convey.ShouldEqual, scoring.BandGreen)
		})
	})
}
