// Package ingest implements the per-notification procedure: derive metadata,
// optionally enrich with receipt fields, upsert exactly one record. There is
// no internal retry; a returned error is the caller's signal to answer the
// delivery with a retryable failure.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avoropay/receipt_ingestor/internal/domain"
)

type Handler struct {
	log        *slog.Logger
	analyzer   Analyzer // nil when enrichment is not configured
	deduper    Deduper  // nil when dedup is not configured
	records    RecordUpserter
	events     EventRecorder
	transactor Transactor
}

func NewHandler(
	log *slog.Logger,
	analyzer Analyzer,
	deduper Deduper,
	records RecordUpserter,
	events EventRecorder,
	transactor Transactor,
) *Handler {
	return &Handler{
		log:        log,
		analyzer:   analyzer,
		deduper:    deduper,
		records:    records,
		events:     events,
		transactor: transactor,
	}
}

// Handle processes one blob-created event. Enrichment failures degrade to a
// metadata-only record; store failures propagate and release the dedup claim
// so the platform's redelivery is processed.
func (h *Handler) Handle(ctx context.Context, event *domain.BlobEvent) error {
	log := h.log.With(
		slog.String("event_id", event.ID),
		slog.String("file_name", event.FileName),
	)

	if h.deduper != nil {
		claimed, err := h.deduper.Claim(ctx, event.ID)
		if err != nil {
			// Dedup is best-effort, the upsert is idempotent anyway.
			log.WarnContext(ctx, "dedup claim failed, processing anyway", slog.String("err", err.Error()))
		} else if !claimed {
			log.InfoContext(ctx, "event already processed, skipping")
			return nil
		}
	}

	receipt, enrichErr := h.enrich(ctx, log, event)

	record := domain.NewFileRecord(event, receipt, time.Now().UTC())

	audit := &domain.IngestionEvent{
		EventID:     event.ID,
		FileName:    event.FileName,
		EventType:   event.EventType,
		Status:      domain.IngestionStatusDone,
		ProcessedAt: record.ProcessedAt,
	}
	if enrichErr != nil {
		audit.Status = domain.IngestionStatusDegraded
		audit.ErrorMessage = enrichErr.Error()
	}

	err := h.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := h.records.UpsertRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to upsert record: %w", err)
		}

		if err := h.events.SaveIngestionEvent(ctx, audit); err != nil {
			return fmt.Errorf("failed to save ingestion event: %w", err)
		}

		return nil
	})
	if err != nil {
		if h.deduper != nil {
			if releaseErr := h.deduper.Release(ctx, event.ID); releaseErr != nil {
				log.WarnContext(ctx, "failed to release dedup claim", slog.String("err", releaseErr.Error()))
			}
		}

		return fmt.Errorf("failed to persist record: %w", err)
	}

	log.InfoContext(ctx, "record persisted",
		slog.Int64("blob_size", event.BlobSize),
		slog.String("status", string(audit.Status)),
	)

	return nil
}

func (h *Handler) enrich(ctx context.Context, log *slog.Logger, event *domain.BlobEvent) (*domain.ReceiptFields, error) {
	if h.analyzer == nil {
		return nil, nil
	}

	receipt, err := h.analyzer.Analyze(ctx, event)
	if err != nil {
		log.ErrorContext(ctx, "enrichment failed, writing metadata-only record",
			slog.String("err", err.Error()))
		return nil, err
	}

	log.DebugContext(ctx, "enrichment succeeded",
		slog.Bool("empty", receipt.Empty()))

	return receipt, nil
}
