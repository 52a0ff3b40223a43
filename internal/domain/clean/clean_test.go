package clean_test

import (
	"testing"

	"github.com/giftbench/giftbench/internal/domain/clean"
	"github.com/smartystreets/goconvey/convey"
)

func TestCurrency(t *testing.T) {
	convey.Convey("Given currency-formatted cells", t, func() {
		convey.Convey("When cleaning pound-formatted amounts", func() {
			cases := map[string]float64{
				"£1,234,567":    1234567,
				"£500":          500,
				"  £2,000,000 ": 2000000,
				"1000000":       1000000,
				"12.5":          12.5,
				",£,1,2,":       12,
			}
			for in, want := range cases {
				v := clean.Currency(in)
				convey.So(v.Available(), convey.ShouldBeTrue)
				convey.So(v.Num(), convey.ShouldEqual, want)
			}
		})

		convey.Convey("When cleaning unparseable cells", func() {
			for _, in := range []string{"", "   ", "n/a", "£", "unknown", "£12a"} {
				convey.So(clean.Currency(in).Available(), convey.ShouldBeFalse)
			}
		})

		convey.Convey("Then cleaning already-clean input should equal direct parsing", func() {
			for _, in := range []string{"42", "0", "3.75", "1000000"} {
				convey.So(clean.Currency(in), convey.ShouldResemble, clean.Number(in))
			}
		})
	})
}

func TestNumber(t *testing.T) {
	convey.Convey("Given plain numeric cells", t, func() {
		convey.Convey("When parsing valid numbers", func() {
			v := clean.Number(" 20 ")
			convey.So(v.Available(), convey.ShouldBeTrue)
			convey.So(v.Num(), convey.ShouldEqual, 20)
		})

		convey.Convey("When parsing a comma-grouped number without the currency cleaner", func() {
			// Plain parsing does not strip separators.
			convey.So(clean.Number("1,000").Available(), convey.ShouldBeFalse)
		})

		convey.Convey("When the cell is empty", func() {
			convey.So(clean.Number("").Available(), convey.ShouldBeFalse)
		})

		convey.Convey("When the cell spells a non-finite number", func() {
			// ParseFloat accepts these; the cleaner must not.
			for _, in := range []string{"nan", "NaN", "inf", "+Inf", "-inf", "Infinity"} {
				convey.So(clean.Number(in).Available(), convey.ShouldBeFalse)
				convey.So(clean.Currency(in).Available(), convey.ShouldBeFalse)
			}
		})
	})
}

func TestValue(t *testing.T) {
	convey.Convey("Given optional values", t, func() {
		convey.Convey("Then the absence marker should be distinct from zero", func() {
			na := clean.NotAvailable()
			zero := clean.Avail(0)
			convey.So(na.Available(), convey.ShouldBeFalse)
			convey.So(zero.Available(), convey.ShouldBeTrue)
			convey.So(na.Ptr(), convey.ShouldBeNil)
			convey.So(*zero.Ptr(), convey.ShouldEqual, 0.0)
		})
	})
}

func TestSeries(t *testing.T) {
	convey.Convey("Given a raw column", t, func() {
		cells := []string{"£1,000", "junk", "", "250"}

		convey.Convey("When cleaning it as currency", func() {
			series := clean.Series(cells, clean.Currency)

			convey.Convey("Then each cell should map positionally", func() {
				convey.So(series, convey.ShouldHaveLength, 4)
				convey.So(series[0].Num(), convey.ShouldEqual, 1000)
				convey.So(series[1].Available(), convey.ShouldBeFalse)
				convey.So(series[2].Available(), convey.ShouldBeFalse)
				convey.So(series[3].Num(), convey.ShouldEqual, 250)
			})
		})
	})
}
