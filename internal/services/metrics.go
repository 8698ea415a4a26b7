package services

import (
	"math"
	"strconv"
)

// NotAvailable replaces any number that cannot be shown.
const NotAvailable = "—"

// Beyond roundingLimit every float64 is integral, so there is nothing to round.
const roundingLimit = 1 << 52

// Round1 rounds half away from zero to one decimal place.
func Round1(x float64) float64 {
	if math.Abs(x) >= roundingLimit || math.IsNaN(x) {
		return x
	}
	r := math.Round(x*10) / 10
	if r == 0 {
		return 0 // drop the sign of -0
	}
	return r
}

// FormatOneDecimal renders x with one decimal, or NotAvailable for NaN/Inf.
func FormatOneDecimal(x float64) string {
	r := Round1(x)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return NotAvailable
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// ResolutionPercent is closed/open*100. ok is false when there are no open
// tickets to divide by.
func ResolutionPercent(open, closed int64) (percent float64, ok bool) {
	if open <= 0 {
		return 0, false
	}
	percent = float64(closed) / float64(open) * 100
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0, false
	}
	return percent, true
}

// FormatResolutionRate renders the caption of the closed-tickets tile, e.g. "75.0% de resolução".
func FormatResolutionRate(open, closed int64) string {
	percent, ok := ResolutionPercent(open, closed)
	if !ok {
		return NotAvailable + " de resolução"
	}
	return FormatOneDecimal(percent) + "% de resolução"
}

func FormatHours(hours float64) string {
	s := FormatOneDecimal(hours)
	if s == NotAvailable {
		return s
	}
	return s + "h"
}

func FormatSatisfaction(avg float64) string {
	s := FormatOneDecimal(avg)
	if s == NotAvailable {
		return s
	}
	return s + "/5"
}
