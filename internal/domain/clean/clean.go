// Package clean converts raw spreadsheet cells into optional numeric values.
// "Not available" is an explicit marker, distinct from zero; it is how every
// empty or unparseable cell flows through the rest of the pipeline.
package clean

import (
	"math"
	"strconv"
	"strings"
)

// Characters stripped by the currency cleaner, any position, any count.
const currencyRunes = "£,"

// Value is an optional numeric value: either an available float64 or the
// explicit "not available" marker (the zero Value).
type Value struct {
	num float64
	ok  bool
}

// Avail wraps an available number.
func Avail(n float64) Value {
	return Value{num: n, ok: true}
}

// NotAvailable returns the absence marker.
func NotAvailable() Value {
	return Value{}
}

// Available reports whether the value is present.
func (v Value) Available() bool {
	return v.ok
}

// Num returns the numeric value, and 0 when not available. Callers must
// check Available first when 0 is a meaningful number.
func (v Value) Num() float64 {
	return v.num
}

// Ptr returns the value for JSON encoding: nil when not available.
func (v Value) Ptr() *float64 {
	if !v.ok {
		return nil
	}
	n := v.num
	return &n
}

// Cleaner turns one raw cell into an optional numeric value.
type Cleaner func(cell string) Value

// Currency strips every '£' and ',' plus surrounding whitespace, then parses
// the remainder as a decimal number. Idempotent on already-clean input.
func Currency(cell string) Value {
	s := strings.Map(dropCurrencyRune, cell)
	return Number(s)
}

// Number trims surrounding whitespace and parses the cell as a decimal
// number, with no currency stripping. ParseFloat accepts spellings like
// "nan" and "inf"; those are junk cells here, not numbers, so only finite
// parses are available.
func Number(cell string) Value {
	s := strings.TrimSpace(cell)
	if s == "" {
		return NotAvailable()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return NotAvailable()
	}
	return Avail(n)
}

func dropCurrencyRune(r rune) rune {
	if strings.ContainsRune(currencyRunes, r) {
		return -1
	}
	return r
}

// Series applies a cleaner to every cell of one raw column.
func Series(cells []string, c Cleaner) []Value {
	out := make([]Value, len(cells))
	for i, cell := range cells {
		out[i] = c(cell)
	}
	return out
}
