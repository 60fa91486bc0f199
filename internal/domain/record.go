package domain

import "time"

// FileRecord is the stored document for one ingested blob, keyed by FileName.
// Optional receipt fields are nil unless enrichment was configured and
// succeeded for the invocation that wrote the record.
type FileRecord struct {
	FileName     string     `csv:"file_name"     db:"file_name"     json:"file_name"`
	BlobPath     string     `csv:"blob_path"     db:"blob_path"     json:"blob_path"`
	BlobURL      string     `csv:"blob_url"      db:"blob_url"      json:"blob_url"`
	BlobSize     int64      `csv:"blob_size"     db:"blob_size"     json:"blob_size"`
	EventType    string     `csv:"event_type"    db:"event_type"    json:"event_type"`
	ProcessedAt  time.Time  `csv:"processed_at"  db:"processed_at"  json:"processed_at"`
	PurchaseDate *time.Time `csv:"purchase_date,omitempty" db:"purchase_date" json:"purchase_date,omitempty"`
	MerchantName *string    `csv:"merchant_name,omitempty" db:"merchant_name" json:"merchant_name,omitempty"`
	TotalAmount  *float64   `csv:"total_amount,omitempty"  db:"total_amount"  json:"total_amount,omitempty"`
}

// NewFileRecord builds the record for an event. Each write replaces the
// whole document, so unenriched invocations reset the receipt fields.
func NewFileRecord(event *BlobEvent, receipt *ReceiptFields, processedAt time.Time) *FileRecord {
	record := &FileRecord{
		FileName:    event.FileName,
		BlobPath:    event.BlobPath,
		BlobURL:     event.BlobURL,
		BlobSize:    event.BlobSize,
		EventType:   event.EventType,
		ProcessedAt: processedAt.UTC(),
	}

	if receipt != nil {
		record.PurchaseDate = receipt.PurchaseDate
		record.MerchantName = receipt.MerchantName
		record.TotalAmount = receipt.TotalAmount
	}

	return record
}
