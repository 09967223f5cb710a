package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KEswar-045/station-status-service/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database
// schema. Safe to apply repeatedly.
//
//go:embed schema.sql
var schemaSQL string

// opTimeout bounds every storage round-trip so a stalled database
// surfaces as ErrStoreUnavailable instead of hanging the request.
const opTimeout = 5 * time.Second

// PostgresStore is the durable append-only event log. Sequence ids
// come from the bigserial column, so concurrent appends never collide
// and no application-side lock is needed.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if the
// database is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql.
func (p *PostgresStore) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	_, err := p.pool.Exec(ctx, schemaSQL)
	return err
}

// Ping is used by the readiness endpoint.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// Append durably persists the record, assigning the next sequence id
// and stamping occurred_at with the current UTC time when the caller
// left it unset. Returns the fully-populated record and whether a row
// was actually inserted: a submission whose event_uid already exists
// appends nothing and returns the stored record with inserted=false.
func (p *PostgresStore) Append(ctx context.Context, rec models.EventRecord) (models.EventRecord, bool, error) {
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := p.pool.QueryRow(ctx, `
		INSERT INTO station_events(event_uid, station_id, event_kind, occurred_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_uid) DO NOTHING
		RETURNING sequence_id
	`, rec.EventUID, rec.StationID, rec.EventKind, rec.OccurredAt).Scan(&rec.SequenceID)

	if err == nil {
		return rec, true, nil
	}

	// The conflict path produces no rows because RETURNING returns
	// nothing; fetch the row the earlier attempt stored.
	if errors.Is(err, pgx.ErrNoRows) {
		existing, ferr := p.byUID(ctx, rec.EventUID)
		if ferr != nil {
			return models.EventRecord{}, false, ferr
		}
		return existing, false, nil
	}

	return models.EventRecord{}, false, fmt.Errorf("%w: append: %v", models.ErrStoreUnavailable, err)
}

func (p *PostgresStore) byUID(ctx context.Context, uid string) (models.EventRecord, error) {
	var rec models.EventRecord
	err := p.pool.QueryRow(ctx, `
		SELECT sequence_id, event_uid, station_id, event_kind, occurred_at
		FROM station_events
		WHERE event_uid = $1
	`, uid).Scan(&rec.SequenceID, &rec.EventUID, &rec.StationID, &rec.EventKind, &rec.OccurredAt)
	if err != nil {
		return models.EventRecord{}, fmt.Errorf("%w: lookup: %v", models.ErrStoreUnavailable, err)
	}
	rec.OccurredAt = rec.OccurredAt.UTC()
	return rec, nil
}

// All returns every stored record in ascending sequence_id order. A
// full scan is fine here: volume is bounded by stations × event rate.
// Failures are reported, never folded into an empty result.
func (p *PostgresStore) All(ctx context.Context) ([]models.EventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := p.pool.Query(ctx, `
		SELECT sequence_id, event_uid, station_id, event_kind, occurred_at
		FROM station_events
		ORDER BY sequence_id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: scan: %v", models.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	records := make([]models.EventRecord, 0, 64)
	for rows.Next() {
		var rec models.EventRecord
		if err := rows.Scan(&rec.SequenceID, &rec.EventUID, &rec.StationID, &rec.EventKind, &rec.OccurredAt); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", models.ErrStoreUnavailable, err)
		}
		rec.OccurredAt = rec.OccurredAt.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan: %v", models.ErrStoreUnavailable, err)
	}
	return records, nil
}
