// Package aggregate derives the per-station live-status view from the
// full event log. The log is small (stations × event rate), so a full
// scan per query is deliberate; no materialized view is kept.
package aggregate

import (
	"math"
	"time"

	"github.com/KEswar-045/station-status-service/internal/models"
)

// LiveStatus returns one entry per distinct station: the record with
// the maximum (occurred_at, sequence_id) key, plus its age relative to
// now. Occurred-at alone is not enough — client-supplied or defaulted
// times can collide, so the sequence id breaks ties in append order.
// Entry order is unspecified. Empty input yields an empty, non-nil
// slice.
func LiveStatus(records []models.EventRecord, now time.Time) []models.LiveStatusEntry {
	latest := make(map[int64]models.EventRecord, len(records))
	for _, rec := range records {
		cur, ok := latest[rec.StationID]
		if !ok || newer(rec, cur) {
			latest[rec.StationID] = rec
		}
	}

	entries := make([]models.LiveStatusEntry, 0, len(latest))
	for _, rec := range latest {
		entries = append(entries, models.LiveStatusEntry{
			StationID:  rec.StationID,
			EventKind:  rec.EventKind,
			OccurredAt: rec.OccurredAt,
			MinutesAgo: minutesBetween(rec.OccurredAt, now),
		})
	}
	return entries
}

func newer(a, b models.EventRecord) bool {
	if !a.OccurredAt.Equal(b.OccurredAt) {
		return a.OccurredAt.After(b.OccurredAt)
	}
	return a.SequenceID > b.SequenceID
}

// minutesBetween floors toward negative infinity, so a future
// occurred_at produces a negative age. Not clamped: callers use the
// sign to detect clock skew.
func minutesBetween(occurredAt, now time.Time) int64 {
	return int64(math.Floor(now.Sub(occurredAt).Seconds() / 60))
}
