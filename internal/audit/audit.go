// Package audit keeps a plain-text trail of ingested events beside the
// primary store: one comma-separated line per event, append-only,
// never rewritten. The trail is best-effort — a failed write must not
// undo a committed append.
package audit

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/KEswar-045/station-status-service/internal/models"
)

// Writer appends audit lines to a single file. It has its own mutex,
// deliberately not shared with the event store, so a slow audit disk
// never serializes unrelated ingestions.
type Writer struct {
	mu sync.Mutex
	f  *os.File
}

// NewWriter opens (or creates) the audit file for appending.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", path, err)
	}
	return &Writer{f: f}, nil
}

// Record appends one "station_id,event_kind,occurred_at" line, with
// the timestamp in ISO form.
func (w *Writer) Record(rec models.EventRecord) error {
	line := fmt.Sprintf("%d,%s,%s\n", rec.StationID, rec.EventKind, rec.OccurredAt.UTC().Format(time.RFC3339))

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.f.WriteString(line); err != nil {
		return fmt.Errorf("%w: %v", models.ErrAuditWrite, err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
