package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoropay/receipt_ingestor/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const TableFileRecords = "file_records"

var fileRecordColumns = []string{
	"file_name",
	"blob_path",
	"blob_url",
	"blob_size",
	"event_type",
	"processed_at",
	"purchase_date",
	"merchant_name",
	"total_amount",
}

type RecordsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRecordsRepository(pool *pgxpool.Pool) *RecordsRepository {
	return &RecordsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertRecord replaces the whole document for the record's file name. Every
// column is overwritten, so a metadata-only write clears earlier receipt
// fields.
func (r *RecordsRepository) UpsertRecord(ctx context.Context, record *domain.FileRecord) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableFileRecords).
		Columns(fileRecordColumns...).
		Values(
			record.FileName,
			record.BlobPath,
			record.BlobURL,
			record.BlobSize,
			record.EventType,
			record.ProcessedAt,
			record.PurchaseDate,
			record.MerchantName,
			record.TotalAmount,
		).
		Suffix(`ON CONFLICT (file_name) DO UPDATE SET
			blob_path = EXCLUDED.blob_path,
			blob_url = EXCLUDED.blob_url,
			blob_size = EXCLUDED.blob_size,
			event_type = EXCLUDED.event_type,
			processed_at = EXCLUDED.processed_at,
			purchase_date = EXCLUDED.purchase_date,
			merchant_name = EXCLUDED.merchant_name,
			total_amount = EXCLUDED.total_amount
		`).
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

func (r *RecordsRepository) Records(ctx context.Context, limit, offset uint64) ([]*domain.FileRecord, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableFileRecords).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(fileRecordColumns...).
		From(TableFileRecords).
		OrderBy("processed_at DESC", "file_name ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.FileRecord])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return records, total, nil
}

func (r *RecordsRepository) RecordByName(ctx context.Context, fileName string) (*domain.FileRecord, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(fileRecordColumns...).
		From(TableFileRecords).
		Where(sq.Eq{"file_name": fileName}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.FileRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, collectRowsError(err)
	}

	return record, nil
}

// AllRecords streams the whole table for exports and reports.
func (r *RecordsRepository) AllRecords(ctx context.Context) ([]*domain.FileRecord, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(fileRecordColumns...).
		From(TableFileRecords).
		OrderBy("processed_at ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.FileRecord])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return records, nil
}
