package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/avoropay/receipt_ingestor/internal/reporting"
	"github.com/avoropay/receipt_ingestor/internal/repository/postgresql"
)

// RunReport loads every stored record and writes the spending PDF and a CSV
// dump into the configured output directory.
func (a *App) RunReport(ctx context.Context) error {
	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	records, err := postgresql.NewRecordsRepository(pool).AllRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	a.log.InfoContext(ctx, "generating reports",
		slog.Int("record_count", len(records)),
		slog.String("output_dir", a.cfg.Report.OutputDirectory),
	)

	pdfPath := filepath.Join(a.cfg.Report.OutputDirectory, "spending.pdf")
	if err := reporting.New().GenerateSpendingReport(pdfPath, records); err != nil {
		return fmt.Errorf("failed to generate spending report: %w", err)
	}

	csvPath := filepath.Join(a.cfg.Report.OutputDirectory, "file_records.csv")
	if err := reporting.WriteCSV(csvPath, records); err != nil {
		return fmt.Errorf("failed to write csv dump: %w", err)
	}

	a.log.InfoContext(ctx, "reports written",
		slog.String("pdf", pdfPath),
		slog.String("csv", csvPath),
	)

	return nil
}
