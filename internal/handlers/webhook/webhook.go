package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/soulcross/soulcross/internal/dto"
	"github.com/soulcross/soulcross/internal/service/webhookservice"
	"github.com/soulcross/soulcross/internal/stripe"
	"github.com/soulcross/soulcross/pkg/utils"
	"go.uber.org/zap"
)

type Service interface {
	MarkPaidFromSession(ctx context.Context, webhookEventID, sessionID string, paymentIntentID *string) (*webhookservice.Result, error)
	RecordIgnored(ctx context.Context, eventID, eventType string) error
	RecordFailed(ctx context.Context, eventID, message string) error
}

type WebhookHandler struct {
	webhookService Service
	signingSecret  string
}

func New(webhookService Service, signingSecret string) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
		signingSecret:  signingSecret,
	}
}

// HandleStripe godoc
//
//	@Summary		Receive payment provider webhooks
//	@Description	Verifies the event signature, then reconciles checkout completion exactly once.
//	@Tags			Webhook
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.WebhookResponseDTO
//	@Failure		400	{object}	utils.Response	"Missing or invalid signature"
//	@Failure		500	{object}	utils.Response	"Reconciliation failed; provider should redeliver"
//	@Router			/api/webhook/stripe [post]
func (h *WebhookHandler) HandleStripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	event, err := stripe.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.signingSecret)
	if err != nil {
		zap.L().Warn("rejected webhook delivery", zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if event.Type != stripe.EventCheckoutSessionCompleted {
		if err := h.webhookService.RecordIgnored(r.Context(), event.ID, event.Type); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Webhook handling failed")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
		return
	}

	var paymentIntentID *string
	if event.Data.Object.PaymentIntent != "" {
		paymentIntentID = &event.Data.Object.PaymentIntent
	}

	if _, err := h.webhookService.MarkPaidFromSession(r.Context(), event.ID, event.Data.Object.ID, paymentIntentID); err != nil {
		if recordErr := h.webhookService.RecordFailed(r.Context(), event.ID, err.Error()); recordErr != nil {
			zap.L().Error("can't record failed webhook", zap.Error(recordErr))
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Webhook handling failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{Received: true})
}
