// Package blobstore reads blob content with delegated identity. The only
// operation the ingestor needs is a full download for analysis.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avoropay/receipt_ingestor/internal/identity"
)

const (
	storageResource = "https://storage.azure.com/"
	storageVersion  = "2021-10-04"
)

type Client struct {
	httpClient *http.Client
	credential identity.TokenCredential
}

func NewClient(credential identity.TokenCredential) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		credential: credential,
	}
}

func (c *Client) Download(ctx context.Context, blobURL string) ([]byte, error) {
	token, err := c.credential.Token(ctx, storageResource)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire storage token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, blobURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("x-ms-version", storageVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blob: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("blob fetch returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob body: %w", err)
	}

	return data, nil
}
