package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedEvent = errors.New("malformed blob event")

// EventTypeBlobCreated is the only notification kind the ingestor acts on.
const EventTypeBlobCreated = "Microsoft.Storage.BlobCreated"

// BlobEvent is one blob-creation notification after envelope parsing.
type BlobEvent struct {
	ID        string
	EventType string
	FileName  string
	BlobPath  string
	BlobURL   string
	BlobSize  int64
}

// ParseBlobEvent derives file identity from a notification. The subject has
// the form /blobServices/default/containers/{container}/blobs/{path}.
func ParseBlobEvent(id, eventType, subject, blobURL string, blobSize *int64) (*BlobEvent, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: missing event id", ErrMalformedEvent)
	}

	if eventType == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrMalformedEvent)
	}

	if blobURL == "" {
		return nil, fmt.Errorf("%w: missing blob url", ErrMalformedEvent)
	}

	if blobSize == nil {
		return nil, fmt.Errorf("%w: missing content length", ErrMalformedEvent)
	}

	if *blobSize < 0 {
		return nil, fmt.Errorf("%w: negative content length %d", ErrMalformedEvent, *blobSize)
	}

	_, blobPath, ok := strings.Cut(subject, "/blobs/")
	if !ok || blobPath == "" {
		return nil, fmt.Errorf("%w: invalid subject %q", ErrMalformedEvent, subject)
	}

	fileName := blobPath
	if idx := strings.LastIndex(blobPath, "/"); idx >= 0 {
		fileName = blobPath[idx+1:]
	}

	if fileName == "" {
		return nil, fmt.Errorf("%w: subject %q has no file name", ErrMalformedEvent, subject)
	}

	return &BlobEvent{
		ID:        id,
		EventType: eventType,
		FileName:  fileName,
		BlobPath:  blobPath,
		BlobURL:   blobURL,
		BlobSize:  *blobSize,
	}, nil
}
