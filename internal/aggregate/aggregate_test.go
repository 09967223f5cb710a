package aggregate

import (
	"testing"
	"time"

	"github.com/KEswar-045/station-status-service/internal/models"
)

var base = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func rec(seq, station int64, kind string, at time.Time) models.EventRecord {
	return models.EventRecord{SequenceID: seq, StationID: station, EventKind: kind, OccurredAt: at}
}

func TestLiveStatus_LatestPerStation(t *testing.T) {
	records := []models.EventRecord{
		rec(1, 1, "call", base),
		rec(2, 1, "cancel", base.Add(5*time.Minute)),
		rec(3, 2, "call", base.Add(time.Minute)),
	}

	entries := LiveStatus(records, base.Add(10*time.Minute))
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	byStation := map[int64]models.LiveStatusEntry{}
	for _, e := range entries {
		byStation[e.StationID] = e
	}

	s1 := byStation[1]
	if s1.EventKind != "cancel" || !s1.OccurredAt.Equal(base.Add(5*time.Minute)) {
		t.Fatalf("station 1 latest = %+v, want cancel at T+5m", s1)
	}
	if s1.MinutesAgo != 5 {
		t.Fatalf("station 1 minutes_ago = %d, want 5", s1.MinutesAgo)
	}
	if byStation[2].MinutesAgo != 9 {
		t.Fatalf("station 2 minutes_ago = %d, want 9", byStation[2].MinutesAgo)
	}
}

func TestLiveStatus_TieBrokenBySequence(t *testing.T) {
	// Same occurred_at: the later append wins.
	records := []models.EventRecord{
		rec(7, 3, "call", base),
		rec(8, 3, "cancel", base),
	}
	entries := LiveStatus(records, base)
	if len(entries) != 1 || entries[0].EventKind != "cancel" {
		t.Fatalf("got %+v, want single cancel entry", entries)
	}
}

func TestLiveStatus_OrderOfInputIrrelevantForTies(t *testing.T) {
	records := []models.EventRecord{
		rec(8, 3, "cancel", base),
		rec(7, 3, "call", base),
	}
	entries, want := LiveStatus(records, base), "cancel"
	if len(entries) != 1 || entries[0].EventKind != want {
		t.Fatalf("got %+v, want single %s entry", entries, want)
	}
}

func TestLiveStatus_FutureTimestampGoesNegative(t *testing.T) {
	records := []models.EventRecord{rec(1, 9, "call", base.Add(3 * time.Minute))}
	entries := LiveStatus(records, base)
	if entries[0].MinutesAgo != -3 {
		t.Fatalf("minutes_ago = %d, want -3", entries[0].MinutesAgo)
	}
}

func TestLiveStatus_FlooredNotRounded(t *testing.T) {
	records := []models.EventRecord{rec(1, 4, "call", base)}
	entries := LiveStatus(records, base.Add(119*time.Second))
	if entries[0].MinutesAgo != 1 {
		t.Fatalf("minutes_ago = %d, want 1", entries[0].MinutesAgo)
	}
	// 30s in the future floors to -1, not 0.
	entries = LiveStatus(records, base.Add(-30*time.Second))
	if entries[0].MinutesAgo != -1 {
		t.Fatalf("minutes_ago = %d, want -1", entries[0].MinutesAgo)
	}
}

func TestLiveStatus_Empty(t *testing.T) {
	entries := LiveStatus(nil, base)
	if entries == nil || len(entries) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", entries)
	}
}
