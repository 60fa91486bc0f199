package domain

import "time"

// ReceiptFields holds the values a document-analysis backend managed to
// extract. Any of them may be nil when the receipt lacks the field.
type ReceiptFields struct {
	PurchaseDate *time.Time
	MerchantName *string
	TotalAmount  *float64
}

// Empty reports whether no field was extracted at all.
func (r *ReceiptFields) Empty() bool {
	return r == nil || (r.PurchaseDate == nil && r.MerchantName == nil && r.TotalAmount == nil)
}
