// Package timeparse normalizes the loosely-encoded timestamps that
// station firmware sends with events. Inputs arrive either as
// ISO-8601-like date-times or as a decimal count of milliseconds since
// the Unix epoch; both are reduced to a single UTC instant.
package timeparse

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// isoLayouts cover date+time with optional fractional seconds and
// optional offset, with either a "T" or a space separator. Layouts
// without an offset treat the input as already UTC.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Normalize converts a raw submission time into a canonical UTC
// instant. The second return is false when the input is empty or
// unparseable; the caller substitutes ingestion time. ISO forms are
// tried before epoch milliseconds on purpose: a numeric string must
// not be mistaken for a malformed date, and a malformed date must not
// be mistaken for a number.
func Normalize(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	ms, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) {
		return time.Time{}, false
	}
	// Split whole milliseconds from the sub-millisecond remainder
	// before scaling. A single float64 multiply by 1e6 is too coarse
	// near the current epoch and lands whole-millisecond inputs tens
	// of nanoseconds off; Modf is exact and the remainder is small
	// enough to scale without loss.
	whole, frac := math.Modf(ms)
	rem := time.Duration(math.Round(frac * float64(time.Millisecond)))
	return time.UnixMilli(int64(whole)).Add(rem).UTC(), true
}
