package models

import "errors"

// Error classes surfaced by ingestion and query.
//
// ErrInvalidField is a client error and maps to HTTP 400; it is never
// retried. ErrStoreUnavailable means the durable log could not be
// reached before its deadline; the whole submission is safe to retry.
// ErrAuditWrite is non-fatal: the primary append already committed and
// the failure is only logged.
var (
	ErrInvalidField     = errors.New("invalid field")
	ErrStoreUnavailable = errors.New("event store unavailable")
	ErrAuditWrite       = errors.New("audit write failed")
)
