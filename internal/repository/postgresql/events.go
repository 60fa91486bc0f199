package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoropay/receipt_ingestor/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const TableIngestionEvents = "ingestion_events"

type IngestionEventsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewIngestionEventsRepository(pool *pgxpool.Pool) *IngestionEventsRepository {
	return &IngestionEventsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *IngestionEventsRepository) SaveIngestionEvent(ctx context.Context, event *domain.IngestionEvent) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableIngestionEvents).
		Columns(
			"event_id",
			"file_name",
			"event_type",
			"status",
			"error_message",
			"processed_at",
		).
		Values(
			event.EventID,
			event.FileName,
			event.EventType,
			event.Status,
			event.ErrorMessage,
			event.ProcessedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// IngestionEventsByFile returns the audit trail for one file, newest first.
func (r *IngestionEventsRepository) IngestionEventsByFile(ctx context.Context, fileName string) ([]*domain.IngestionEvent, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"event_id",
			"file_name",
			"event_type",
			"status",
			"error_message",
			"processed_at",
		).
		From(TableIngestionEvents).
		Where(sq.Eq{"file_name": fileName}).
		OrderBy("processed_at DESC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	events, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.IngestionEvent])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return events, nil
}
