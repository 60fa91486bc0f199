package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/avoropay/receipt_ingestor/internal/domain"
)

const eventTypeSubscriptionValidation = "Microsoft.EventGrid.SubscriptionValidationEvent"

type EventProcessor interface {
	Handle(ctx context.Context, event *domain.BlobEvent) error
}

type EventsHandler struct {
	processor EventProcessor
}

func NewEventsHandler(processor EventProcessor) *EventsHandler {
	return &EventsHandler{
		processor: processor,
	}
}

// eventGridEvent is the delivery envelope. Data is decoded per event type.
type eventGridEvent struct {
	ID        string          `json:"id"`
	EventType string          `json:"eventType"`
	Subject   string          `json:"subject"`
	Data      json.RawMessage `json:"data"`
}

type blobCreatedData struct {
	URL           string `json:"url"`
	ContentLength *int64 `json:"contentLength"`
}

type subscriptionValidationData struct {
	ValidationCode string `json:"validationCode"`
}

type subscriptionValidationResponse struct {
	ValidationResponse string `json:"validationResponse"`
}

// HandleEvents accepts one delivery: either the subscription-validation
// handshake or a batch of notifications. A malformed notification is a 400
// with no write; a processing failure is a 500 so the platform redelivers.
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	var events []eventGridEvent
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		http.Error(w, "invalid event payload", http.StatusBadRequest)
		return
	}

	for _, event := range events {
		if event.EventType == eventTypeSubscriptionValidation {
			h.handleValidation(w, event)
			return
		}
	}

	for _, event := range events {
		if event.EventType != domain.EventTypeBlobCreated {
			// Deletes and other storage events are acknowledged, not stored.
			continue
		}

		blobEvent, err := parseBlobCreated(event)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := h.processor.Handle(r.Context(), blobEvent); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *EventsHandler) handleValidation(w http.ResponseWriter, event eventGridEvent) {
	var data subscriptionValidationData
	if err := json.Unmarshal(event.Data, &data); err != nil || data.ValidationCode == "" {
		http.Error(w, "invalid validation event", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subscriptionValidationResponse{
		ValidationResponse: data.ValidationCode,
	})
}

func parseBlobCreated(event eventGridEvent) (*domain.BlobEvent, error) {
	if len(event.Data) == 0 {
		return nil, fmt.Errorf("%w: event has no data", domain.ErrMalformedEvent)
	}

	var data blobCreatedData
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}

	return domain.ParseBlobEvent(event.ID, event.EventType, event.Subject, data.URL, data.ContentLength)
}
