package reporting

import (
	"fmt"
	"os"

	"github.com/avoropay/receipt_ingestor/internal/domain"
	"github.com/jszwec/csvutil"
)

// WriteCSV dumps the records to a CSV file, one row per FileRecord.
func WriteCSV(outputPath string, records []*domain.FileRecord) error {
	data, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}
