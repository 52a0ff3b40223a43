// Package columns classifies spreadsheet column names into the semantic
// buckets the benchmark understands. Classification is by substring for the
// per-year columns and by exact name for the single-column roles; anything
// unrecognized is ignored.
package columns

import "strings"

// Recognized column-name conventions.
const (
	incomeSubstring    = "Donations"
	countSubstring     = "Donations Count"
	interactionsColumn = "No. Interactions*"
	eventsColumn       = "No Events Attended"
	largestGiftColumn  = "Largest Gift"
)

// Column is one classified column: its header name plus its position in the
// header row. Position is what downstream lookups key on, because exports
// routinely repeat a header name and every occurrence carries its own data.
type Column struct {
	Name  string
	Index int
}

// Buckets maps each semantic role to the columns that fill it, in file
// order. A role may hold zero, one, or many columns; empty buckets degrade
// to "not available" downstream, never to an error.
type Buckets struct {
	// Income holds every per-year donation-amount column.
	Income []Column
	// GiftCount holds every per-year donation-count column.
	GiftCount []Column
	// Interactions holds the single interactions column, if present.
	Interactions []Column
	// Events holds the single event-attendance column, if present.
	Events []Column
	// LargestGift holds the single largest-gift column, if present.
	LargestGift []Column
}

// Select classifies the given column names:
//   - income: contains "Donations" but not "Count"
//   - gift count: contains "Donations Count"
//   - interactions, events, largest gift: exact-name single columns
//
// Duplicate names classify once per occurrence.
func Select(names []string) Buckets {
	var b Buckets
	for i, name := range names {
		col := Column{Name: name, Index: i}
		switch {
		case strings.Contains(name, countSubstring):
			b.GiftCount = append(b.GiftCount, col)
		case strings.Contains(name, incomeSubstring) && !strings.Contains(name, "Count"):
			b.Income = append(b.Income, col)
		}
		switch name {
		case interactionsColumn:
			if len(b.Interactions) == 0 {
				b.Interactions = []Column{col}
			}
		case eventsColumn:
			if len(b.Events) == 0 {
				b.Events = []Column{col}
			}
		case largestGiftColumn:
			if len(b.LargestGift) == 0 {
				b.LargestGift = []Column{col}
			}
		}
	}
	return b
}

// HasDonationData reports whether the table carries any recognized donation
// column at all. A table without any is a structural failure for the whole
// submission.
func (b Buckets) HasDonationData() bool {
	return len(b.Income) > 0 || len(b.GiftCount) > 0
}

// Names returns the column names of one bucket in file order.
func Names(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}
