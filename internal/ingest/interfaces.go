package ingest

import (
	"context"

	"github.com/avoropay/receipt_ingestor/internal/domain"
)

type RecordUpserter interface {
	UpsertRecord(ctx context.Context, record *domain.FileRecord) error
}

type EventRecorder interface {
	SaveIngestionEvent(ctx context.Context, event *domain.IngestionEvent) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Analyzer interface {
	Analyze(ctx context.Context, event *domain.BlobEvent) (*domain.ReceiptFields, error)
}

type Deduper interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}
