package dto

type WebhookResponseDTO struct {
	Received bool `json:"received"`
}
