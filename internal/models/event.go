package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EventRecord is one row of the append-only station event log.
//
// SequenceID is assigned by the store at append time and is strictly
// increasing in append order. It is the tie-breaker when two records
// carry the same OccurredAt, which happens with client-supplied or
// defaulted timestamps.
type EventRecord struct {
	SequenceID int64     `json:"sequence_id"`
	StationID  int64     `json:"station_id"`
	EventKind  string    `json:"event_kind"`
	OccurredAt time.Time `json:"occurred_at"`

	// EventUID dedupes retried submissions. Internal to the store,
	// never part of the query payload.
	EventUID string `json:"-"`
}

// LiveStatusEntry is the derived "current status" of one station:
// its most recent event and how long ago it happened. Computed fresh
// on every query, never persisted.
type LiveStatusEntry struct {
	StationID  int64     `json:"station_id"`
	EventKind  string    `json:"event_kind"`
	OccurredAt time.Time `json:"occurred_at"`
	MinutesAgo int64     `json:"minutes_ago"`
}

// NewEventRecord validates the submitter-controlled fields and returns
// a record with no sequence id and no timestamp yet. The station id
// must parse as an integer and the event kind must be non-empty;
// anything else is rejected with ErrInvalidField.
func NewEventRecord(stationRaw, eventKind string) (EventRecord, error) {
	stationRaw = strings.TrimSpace(stationRaw)
	if stationRaw == "" {
		return EventRecord{}, fmt.Errorf("%w: station_id is required", ErrInvalidField)
	}
	stationID, err := strconv.ParseInt(stationRaw, 10, 64)
	if err != nil {
		return EventRecord{}, fmt.Errorf("%w: station_id must be an integer", ErrInvalidField)
	}

	eventKind = strings.TrimSpace(eventKind)
	if eventKind == "" {
		return EventRecord{}, fmt.Errorf("%w: event_kind is required", ErrInvalidField)
	}

	return EventRecord{StationID: stationID, EventKind: eventKind}, nil
}
