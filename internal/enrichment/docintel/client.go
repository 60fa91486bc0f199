// Package docintel extracts receipt fields with the Document Intelligence
// prebuilt-receipt model. Analysis is asynchronous on the service side: an
// analyze call is accepted with an operation URL which is polled until the
// operation reaches a terminal state.
package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avoropay/receipt_ingestor/internal/domain"
	"github.com/avoropay/receipt_ingestor/internal/identity"
)

const (
	cognitiveResource = "https://cognitiveservices.azure.com/"
	apiVersion        = "2024-11-30"
	modelID           = "prebuilt-receipt"

	operationSucceeded = "succeeded"
	operationFailed    = "failed"
)

type Client struct {
	log          *slog.Logger
	endpoint     string
	credential   identity.TokenCredential
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

type Option func(*Client)

// WithPolling overrides the operation poll cadence, used in tests.
func WithPolling(interval, timeout time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = interval
		c.pollTimeout = timeout
	}
}

func NewClient(log *slog.Logger, endpoint string, credential identity.TokenCredential, opts ...Option) *Client {
	c := &Client{
		log:          log,
		endpoint:     strings.TrimSuffix(endpoint, "/"),
		credential:   credential,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		pollInterval: 2 * time.Second,
		pollTimeout:  2 * time.Minute,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type analyzeRequest struct {
	URLSource string `json:"urlSource"`
}

type operationResponse struct {
	Status        string        `json:"status"`
	Error         *serviceError `json:"error"`
	AnalyzeResult struct {
		Documents []struct {
			Fields map[string]fieldValue `json:"fields"`
		} `json:"documents"`
	} `json:"analyzeResult"`
}

type serviceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type fieldValue struct {
	Type          string  `json:"type"`
	ValueString   string  `json:"valueString"`
	ValueDate     string  `json:"valueDate"`
	ValueNumber   float64 `json:"valueNumber"`
	ValueCurrency struct {
		Amount float64 `json:"amount"`
	} `json:"valueCurrency"`
}

// Analyze submits the blob by URL and maps MerchantName, TransactionDate and
// Total from the first recognized receipt. A receipt missing some fields is
// not an error.
func (c *Client) Analyze(ctx context.Context, event *domain.BlobEvent) (*domain.ReceiptFields, error) {
	token, err := c.credential.Token(ctx, cognitiveResource)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire analysis token: %w", err)
	}

	operationURL, err := c.submit(ctx, token, event.BlobURL)
	if err != nil {
		return nil, err
	}

	operation, err := c.awaitOperation(ctx, token, operationURL)
	if err != nil {
		return nil, err
	}

	if len(operation.AnalyzeResult.Documents) == 0 {
		c.log.WarnContext(ctx, "no receipt recognized in blob", slog.String("file_name", event.FileName))
		return &domain.ReceiptFields{}, nil
	}

	return mapFields(operation.AnalyzeResult.Documents[0].Fields)
}

func (c *Client) submit(ctx context.Context, token, blobURL string) (string, error) {
	body, err := json.Marshal(analyzeRequest{URLSource: blobURL})
	if err != nil {
		return "", fmt.Errorf("failed to marshal analyze request: %w", err)
	}

	analyzeURL := fmt.Sprintf("%s/documentintelligence/documentModels/%s:analyze?api-version=%s",
		c.endpoint, modelID, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, analyzeURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create analyze request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit analyze request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("analyze request returned status %d", resp.StatusCode)
	}

	operationURL := resp.Header.Get("Operation-Location")
	if operationURL == "" {
		return "", fmt.Errorf("analyze response has no operation location")
	}

	return operationURL, nil
}

func (c *Client) awaitOperation(ctx context.Context, token, operationURL string) (*operationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		operation, err := c.pollOperation(ctx, token, operationURL)
		if err != nil {
			return nil, err
		}

		switch operation.Status {
		case operationSucceeded:
			return operation, nil
		case operationFailed:
			if operation.Error != nil {
				return nil, fmt.Errorf("analysis failed: %s: %s", operation.Error.Code, operation.Error.Message)
			}
			return nil, fmt.Errorf("analysis failed")
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("analysis did not finish: %w", ctx.Err())
		}
	}
}

func (c *Client) pollOperation(ctx context.Context, token, operationURL string) (*operationResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, operationURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to poll operation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("operation poll returned status %d", resp.StatusCode)
	}

	var operation operationResponse
	if err := json.NewDecoder(resp.Body).Decode(&operation); err != nil {
		return nil, fmt.Errorf("failed to decode operation response: %w", err)
	}

	return &operation, nil
}

func mapFields(fields map[string]fieldValue) (*domain.ReceiptFields, error) {
	receipt := &domain.ReceiptFields{}

	if merchant, ok := fields["MerchantName"]; ok && merchant.ValueString != "" {
		name := merchant.ValueString
		receipt.MerchantName = &name
	}

	if transaction, ok := fields["TransactionDate"]; ok && transaction.ValueDate != "" {
		date, err := time.Parse(time.DateOnly, transaction.ValueDate)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction date %q: %w", transaction.ValueDate, err)
		}
		receipt.PurchaseDate = &date
	}

	if total, ok := fields["Total"]; ok {
		amount := total.ValueCurrency.Amount
		if amount == 0 {
			amount = total.ValueNumber
		}
		if amount != 0 {
			receipt.TotalAmount = &amount
		}
	}

	return receipt, nil
}
