package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/dto"
	"github.com/soulcross/soulcross/internal/service/checkoutservice"
	"github.com/soulcross/soulcross/pkg/utils"
	"github.com/soulcross/soulcross/pkg/validate"
)

type Service interface {
	CheckoutFromInput(ctx context.Context, input domain.ReadingInput) (*checkoutservice.Result, error)
	CheckoutFromReading(ctx context.Context, readingID string) (*checkoutservice.Result, error)
}

type CheckoutHandler struct {
	checkoutService Service
}

func New(checkoutService Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// Checkout godoc
//
//	@Summary		Create or reuse a checkout order
//	@Description	Deduplicates by idempotency key and returns a payment session id, or an already-paid shortcut.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Checkout request: raw birth details or an existing reading id"
//	@Success		200		{object}	dto.CheckoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid or incomplete input"
//	@Failure		404		{object}	utils.Response	"Reading not found"
//	@Failure		502		{object}	utils.Response	"Payment provider unavailable"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		result *checkoutservice.Result
		err    error
	)
	switch {
	case req.ReadingRequestID != "":
		result, err = h.checkoutService.CheckoutFromReading(r.Context(), req.ReadingRequestID)
	case req.Data != nil:
		var input domain.ReadingInput
		input, err = validate.ReadingInput(*req.Data)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		result, err = h.checkoutService.CheckoutFromInput(r.Context(), input)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Either readingRequestId or data is required")
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, checkoutservice.ErrReadingNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Reading not found")
		case errors.Is(err, checkoutservice.ErrPaymentProvider):
			utils.RespondWithError(w, http.StatusBadGateway, "Payment provider unavailable, retry later")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		SessionID:   result.SessionID,
		ReadingID:   result.ReadingID,
		AlreadyPaid: result.AlreadyPaid,
	})
}
