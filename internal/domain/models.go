package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// ReadingModePreview free tier, only the preview section is generated.
	ReadingModePreview string = "preview"
	// ReadingModeFull paid tier, full content attached after payment.
	ReadingModeFull string = "full"
)

const (
	OrderStatusPending string = "pending"
	OrderStatusPaid    string = "paid"
)

type PersonInput struct {
	Name             string `json:"name"`
	Birthday         string `json:"birthday"`
	Birthtime        string `json:"birthtime"`
	BirthtimeUnknown bool   `json:"birthtimeUnknown"`
	Gender           string `json:"gender"`
	Birthplace       string `json:"birthplace"`
}

type ReadingInput struct {
	PersonA PersonInput `json:"personA"`
	PersonB PersonInput `json:"personB"`
}

type PreviewResult struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Highlights  []string `json:"highlights"`
	UpgradeHint string   `json:"upgradeHint"`
}

type FullResult struct {
	Title        string   `json:"title"`
	Overview     string   `json:"overview"`
	Strengths    []string `json:"strengths"`
	Tensions     []string `json:"tensions"`
	Guidance     []string `json:"guidance"`
	FinalMessage string   `json:"finalMessage"`
}

type ReadingRequest struct {
	ID            string         `db:"id"`
	Mode          string         `db:"mode"`
	PersonA       PersonInput    `db:"person_a"`
	PersonB       PersonInput    `db:"person_b"`
	PreviewResult *PreviewResult `db:"preview_result"`
	FullResult    *FullResult    `db:"full_result"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type Order struct {
	ID                    string    `db:"id"`
	ReadingRequestID      string    `db:"reading_request_id"`
	StripeSessionID       *string   `db:"stripe_session_id"`
	StripePaymentIntentID *string   `db:"stripe_payment_intent_id"`
	Status                string    `db:"status"`
	IdempotencyKey        string    `db:"idempotency_key"`
	AmountCents           int64     `db:"amount_cents"`
	Currency              string    `db:"currency"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

// Event is an append-only audit record; business logic never reads it back.
type Event struct {
	ID               string         `db:"id"`
	Type             string         `db:"type"`
	ReadingRequestID *string        `db:"reading_request_id"`
	OrderID          *string        `db:"order_id"`
	Payload          map[string]any `db:"payload"`
	CreatedAt        time.Time      `db:"created_at"`
}

func NewReadingRequest(mode string, input ReadingInput, preview *PreviewResult) *ReadingRequest {
	now := time.Now().UTC()
	return &ReadingRequest{
		ID:            uuid.NewString(),
		Mode:          mode,
		PersonA:       input.PersonA,
		PersonB:       input.PersonB,
		PreviewResult: preview,
		FullResult:    nil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func NewEvent(eventType string, readingRequestID, orderID *string, payload map[string]any) *Event {
	if payload == nil {
		payload = map[string]any{}
	}
	return &Event{
		ID:               uuid.NewString(),
		Type:             eventType,
		ReadingRequestID: readingRequestID,
		OrderID:          orderID,
		Payload:          payload,
		CreatedAt:        time.Now().UTC(),
	}
}
