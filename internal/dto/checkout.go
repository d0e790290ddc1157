package dto

import "github.com/soulcross/soulcross/internal/domain"

type CheckoutRequestDTO struct {
	ReadingRequestID string               `json:"readingRequestId,omitempty"`
	Data             *domain.ReadingInput `json:"data,omitempty"`
}

type CheckoutResponseDTO struct {
	SessionID   string `json:"sessionId,omitempty" example:"cs_test_a1b2c3"`
	ReadingID   string `json:"readingId" example:"7d4f62e9-6a7e-4b2f-a6e1-3f9f4f8f2c11"`
	AlreadyPaid bool   `json:"alreadyPaid"`
}
