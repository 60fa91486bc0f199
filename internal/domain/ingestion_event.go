package domain

import "time"

type IngestionStatus string

const (
	IngestionStatusDone     IngestionStatus = "done"
	IngestionStatusDegraded IngestionStatus = "degraded"
)

// IngestionEvent is the audit row appended for every successfully persisted
// invocation. Degraded means the record was written without receipt fields
// because enrichment failed.
type IngestionEvent struct {
	EventID      string          `db:"event_id"      json:"event_id"`
	FileName     string          `db:"file_name"     json:"file_name"`
	EventType    string          `db:"event_type"    json:"event_type"`
	Status       IngestionStatus `db:"status"        json:"status"`
	ErrorMessage string          `db:"error_message" json:"error_message"`
	ProcessedAt  time.Time       `db:"processed_at"  json:"processed_at"`
}
