// Package ingest holds the write and read paths of the station event
// service: validating loosely-structured submissions into the durable
// log, and deriving the live-status view back out of it.
package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KEswar-045/station-status-service/internal/aggregate"
	"github.com/KEswar-045/station-status-service/internal/models"
	"github.com/KEswar-045/station-status-service/internal/timeparse"
)

// EventLog is the durable append-only store the service writes to and
// reads from.
type EventLog interface {
	Append(ctx context.Context, rec models.EventRecord) (models.EventRecord, bool, error)
	All(ctx context.Context) ([]models.EventRecord, error)
}

// AuditRecorder receives the best-effort secondary trail.
type AuditRecorder interface {
	Record(rec models.EventRecord) error
}

// Service validates, normalizes and persists submissions, and answers
// queries. All collaborators are injected at construction.
type Service struct {
	log    EventLog
	audit  AuditRecorder
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires the service to its store and audit trail.
func NewService(log EventLog, audit AuditRecorder, logger *zap.Logger) *Service {
	return &Service{
		log:    log,
		audit:  audit,
		logger: logger,
		now:    time.Now,
	}
}

// IngestResult reports the stored record. Duplicate is true when the
// submission's idempotency key had already been ingested; nothing was
// appended in that case.
type IngestResult struct {
	Record    models.EventRecord
	Duplicate bool
}

// Ingest runs one submission through validate → normalize → append →
// audit.
//
// Idempotency key precedence: explicit idemKey (transport header),
// then the submission's event_id, then a generated UUID — the last
// cannot dedupe client retries but keeps the uid column total.
//
// An unusable time is not an error: the record is stamped with
// ingestion time, per policy. A failed audit write is logged and
// swallowed — the primary append already committed.
func (s *Service) Ingest(ctx context.Context, src Source, idemKey string) (IngestResult, error) {
	v := src.Extract()

	rec, err := models.NewEventRecord(v.StationID, v.EventKind)
	if err != nil {
		return IngestResult{}, err
	}

	if ts, ok := timeparse.Normalize(v.Time); ok {
		rec.OccurredAt = ts
	} else {
		rec.OccurredAt = s.now().UTC()
	}

	rec.EventUID = idemKey
	if rec.EventUID == "" {
		rec.EventUID = v.EventUID
	}
	if rec.EventUID == "" {
		rec.EventUID = uuid.New().String()
	}

	stored, inserted, err := s.log.Append(ctx, rec)
	if err != nil {
		return IngestResult{}, err
	}

	if inserted {
		if aerr := s.audit.Record(stored); aerr != nil {
			s.logger.Warn("audit append failed", zap.Error(aerr))
		}
	}

	s.logger.Info("event logged",
		zap.Int64("station_id", stored.StationID),
		zap.String("event_kind", stored.EventKind),
		zap.Time("occurred_at", stored.OccurredAt),
		zap.Int64("sequence_id", stored.SequenceID),
		zap.Bool("duplicate", !inserted),
	)

	return IngestResult{Record: stored, Duplicate: !inserted}, nil
}

// QueryResult carries both views of the log.
type QueryResult struct {
	Records    []models.EventRecord     `json:"records"`
	LiveStatus []models.LiveStatusEntry `json:"live_status"`
}

// Query returns the full history plus the live-status view computed at
// the current time. An empty store yields empty slices, not an error.
func (s *Service) Query(ctx context.Context) (QueryResult, error) {
	records, err := s.log.All(ctx)
	if err != nil {
		return QueryResult{}, err
	}
	if records == nil {
		records = []models.EventRecord{}
	}
	return QueryResult{
		Records:    records,
		LiveStatus: aggregate.LiveStatus(records, s.now().UTC()),
	}, nil
}
