// Package reporting renders offline summaries of the ingested records: a
// per-merchant spending PDF and a raw CSV dump.
package reporting

import (
	"fmt"
	"sort"

	"github.com/avoropay/receipt_ingestor/internal/domain"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const unknownMerchant = "(unknown merchant)"

type merchantSummary struct {
	name     string
	receipts int
	total    float64
}

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateSpendingReport writes a PDF summarizing spending per merchant.
// Records without extracted fields count as receipts but contribute no
// amount.
func (g *Generator) GenerateSpendingReport(outputPath string, records []*domain.FileRecord) error {
	cfg := config.NewBuilder().
		WithPageNumber().
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(
			text.NewCol(12, "Receipt spending summary", props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
		),
		row.New(8).Add(
			text.NewCol(12, fmt.Sprintf("%d file(s) ingested", len(records)), props.Text{
				Size:  9,
				Align: align.Center,
			}),
		),
	)

	m.AddRows(headerRow())

	summaries := summarize(records)

	var grandTotal float64
	for _, summary := range summaries {
		grandTotal += summary.total

		m.AddRows(row.New(6).Add(
			text.NewCol(6, summary.name, props.Text{Size: 9}),
			text.NewCol(3, fmt.Sprintf("%d", summary.receipts), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, fmt.Sprintf("%.2f", summary.total), props.Text{Size: 9, Align: align.Right}),
		))
	}

	m.AddRows(row.New(8).Add(
		text.NewCol(6, "Total", props.Text{Size: 9, Style: fontstyle.Bold}),
		col.New(3),
		text.NewCol(3, fmt.Sprintf("%.2f", grandTotal), props.Text{
			Size:  9,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	))

	document, err := m.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if err := document.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func headerRow() core.Row {
	return row.New(7).Add(
		text.NewCol(6, "Merchant", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(3, "Receipts", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, "Amount", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
}

func summarize(records []*domain.FileRecord) []merchantSummary {
	byMerchant := make(map[string]*merchantSummary)

	for _, record := range records {
		name := unknownMerchant
		if record.MerchantName != nil && *record.MerchantName != "" {
			name = *record.MerchantName
		}

		summary, ok := byMerchant[name]
		if !ok {
			summary = &merchantSummary{name: name}
			byMerchant[name] = summary
		}

		summary.receipts++
		if record.TotalAmount != nil {
			summary.total += *record.TotalAmount
		}
	}

	summaries := make([]merchantSummary, 0, len(byMerchant))
	for _, summary := range byMerchant {
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].total > summaries[j].total
	})

	return summaries
}
