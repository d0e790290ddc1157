package readings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/dto"
	"github.com/soulcross/soulcross/internal/service/readingservice"
	"github.com/soulcross/soulcross/pkg/utils"
	"github.com/soulcross/soulcross/pkg/validate"
)

type Service interface {
	CreatePreview(ctx context.Context, input domain.ReadingInput) (*domain.ReadingRequest, error)
	GetReading(ctx context.Context, readingID string) (*domain.ReadingRequest, *domain.Order, error)
}

type ReadingHandler struct {
	readingService Service
}

func New(readingService Service) *ReadingHandler {
	return &ReadingHandler{
		readingService: readingService,
	}
}

// CreatePreview godoc
//
//	@Summary		Create a preview reading
//	@Description	Validate birth details for both persons and generate the free preview tier.
//	@Tags			Readings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PreviewRequestDTO	true	"Preview request body"
//	@Success		200		{object}	dto.PreviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid or incomplete input"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/preview [post]
func (h *ReadingHandler) CreatePreview(w http.ResponseWriter, r *http.Request) {
	var req dto.PreviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	input, err := validate.ReadingInput(req.Data)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	reading, err := h.readingService.CreatePreview(r.Context(), input)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.PreviewResponseDTO{
		ReadingID:     reading.ID,
		Mode:          reading.Mode,
		PreviewResult: reading.PreviewResult,
	})
}

// GetReading godoc
//
//	@Summary		Fetch a reading by id
//	@Description	Returns the preview content always; full content only once the associated order is paid.
//	@Tags			Readings
//	@Produce		json
//	@Param			id	path		string	true	"Reading request id"
//	@Success		200	{object}	dto.GetReadingResponseDTO
//	@Failure		404	{object}	utils.Response	"Reading not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reading/{id} [get]
func (h *ReadingHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	readingID := chi.URLParam(r, "id")

	reading, order, err := h.readingService.GetReading(r.Context(), readingID)
	if err != nil {
		if errors.Is(err, readingservice.ErrReadingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Reading not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	isFullUnlocked := order != nil && order.Status == domain.OrderStatusPaid && reading.FullResult != nil

	response := dto.GetReadingResponseDTO{
		Reading: dto.ReadingViewDTO{
			ID:            reading.ID,
			Mode:          reading.Mode,
			CreatedAt:     reading.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     reading.UpdatedAt.Format(time.RFC3339),
			PreviewResult: reading.PreviewResult,
		},
		IsFullUnlocked: isFullUnlocked,
	}
	if isFullUnlocked {
		response.Reading.FullResult = reading.FullResult
	}
	if order != nil {
		response.Order = &dto.OrderViewDTO{
			ID:          order.ID,
			Status:      order.Status,
			AmountCents: order.AmountCents,
			Currency:    order.Currency,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
