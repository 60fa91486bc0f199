// Package llm extracts receipt fields with an OpenAI-compatible vision
// model. It is the alternative to the docintel backend for deployments that
// run their own model endpoint.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/avoropay/receipt_ingestor/internal/domain"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const parseAttempts = 3

const systemPrompt = `You read retail receipts. Given a receipt image, respond with a single JSON object:
{"merchant_name": string or null, "purchase_date": "YYYY-MM-DD" or null, "total_amount": number or null}
Use null for anything you cannot read. Respond with JSON only.`

// BlobDownloader fetches the raw bytes of the blob under analysis.
type BlobDownloader interface {
	Download(ctx context.Context, blobURL string) ([]byte, error)
}

type Extractor struct {
	log    *slog.Logger
	client llms.Model
	blobs  BlobDownloader
}

// extraction matches the JSON shape requested from the model.
type extraction struct {
	MerchantName *string  `json:"merchant_name"`
	PurchaseDate *string  `json:"purchase_date"`
	TotalAmount  *float64 `json:"total_amount"`
}

func NewExtractor(log *slog.Logger, baseURL, model, token string, blobs BlobDownloader) (*Extractor, error) {
	// "none" keeps local OpenAI-compatible endpoints that skip auth happy.
	if token == "" {
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(token),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	return &Extractor{
		log:    log,
		client: client,
		blobs:  blobs,
	}, nil
}

// NewExtractorWithModel injects a prebuilt model, used in tests.
func NewExtractorWithModel(log *slog.Logger, client llms.Model, blobs BlobDownloader) *Extractor {
	return &Extractor{
		log:    log,
		client: client,
		blobs:  blobs,
	}
}

func (e *Extractor) Analyze(ctx context.Context, event *domain.BlobEvent) (*domain.ReceiptFields, error) {
	data, err := e.blobs.Download(ctx, event.BlobURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download blob: %w", err)
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart(contentType(event.FileName), data),
				llms.TextPart("Extract the fields from this receipt."),
			},
		},
	}

	// Models occasionally emit malformed JSON; re-ask a bounded number of times.
	var lastErr error
	for attempt := 0; attempt < parseAttempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			return nil, fmt.Errorf("failed to generate content: %w", err)
		}

		if len(response.Choices) < 1 {
			return nil, fmt.Errorf("model returned no choices")
		}

		result, err := parseExtraction(response.Choices[0].Content)
		if err != nil {
			lastErr = err
			e.log.WarnContext(ctx, "failed to parse model response",
				slog.Int("attempt", attempt+1),
				slog.String("err", err.Error()))
			continue
		}

		return result, nil
	}

	return nil, fmt.Errorf("failed to parse model response after %d attempts: %w", parseAttempts, lastErr)
}

func parseExtraction(responseText string) (*domain.ReceiptFields, error) {
	responseText = strings.TrimSpace(responseText)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var result extraction
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction: %w", err)
	}

	receipt := &domain.ReceiptFields{
		MerchantName: result.MerchantName,
		TotalAmount:  result.TotalAmount,
	}

	if result.PurchaseDate != nil && *result.PurchaseDate != "" {
		date, err := time.Parse(time.DateOnly, *result.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse purchase date %q: %w", *result.PurchaseDate, err)
		}
		receipt.PurchaseDate = &date
	}

	return receipt, nil
}

func contentType(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}

	return "application/octet-stream"
}
