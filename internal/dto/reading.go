package dto

import "github.com/soulcross/soulcross/internal/domain"

type PreviewRequestDTO struct {
	Data domain.ReadingInput `json:"data"`
}

type PreviewResponseDTO struct {
	ReadingID     string                `json:"readingId" example:"7d4f62e9-6a7e-4b2f-a6e1-3f9f4f8f2c11"`
	Mode          string                `json:"mode" example:"preview"`
	PreviewResult *domain.PreviewResult `json:"previewResult"`
}

type ReadingViewDTO struct {
	ID            string                `json:"id"`
	Mode          string                `json:"mode" example:"preview"`
	CreatedAt     string                `json:"createdAt" example:"2024-06-01T12:00:00Z"`
	UpdatedAt     string                `json:"updatedAt" example:"2024-06-01T12:00:00Z"`
	PreviewResult *domain.PreviewResult `json:"previewResult"`
	FullResult    *domain.FullResult    `json:"fullResult"`
}

type OrderViewDTO struct {
	ID          string `json:"id"`
	Status      string `json:"status" example:"pending"`
	AmountCents int64  `json:"amountCents" example:"999"`
	Currency    string `json:"currency" example:"usd"`
}

type GetReadingResponseDTO struct {
	Reading        ReadingViewDTO `json:"reading"`
	Order          *OrderViewDTO  `json:"order"`
	IsFullUnlocked bool           `json:"isFullUnlocked"`
}
