package webhookservice

import (
	"context"
	"errors"

	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"go.uber.org/zap"
)

type OrderRepo interface {
	FindBySessionIDForUpdate(ctx context.Context, sessionID string) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID string, paymentIntentID *string) error
}

type ReadingRepo interface {
	FindByID(ctx context.Context, id string) (*domain.ReadingRequest, error)
	AttachFullResult(ctx context.Context, reading *domain.ReadingRequest) error
}

type ProcessedRepo interface {
	TryInsert(ctx context.Context, eventID string) (bool, error)
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.Event) error
}

type Generator interface {
	Full(input domain.ReadingInput) *domain.FullResult
}

var ErrOrphanOrder = errors.New("order exists without reading request")

type Result struct {
	AlreadyProcessed bool
	Updated          bool
}

type Service struct {
	orderRepo     OrderRepo
	readingRepo   ReadingRepo
	processedRepo ProcessedRepo
	eventRepo     EventRepo
	trx           pg.TXManager
	gen           Generator
}

func New(orderRepo OrderRepo, readingRepo ReadingRepo, processedRepo ProcessedRepo,
	eventRepo EventRepo, trx pg.TXManager, gen Generator) *Service {
	return &Service{
		orderRepo:     orderRepo,
		readingRepo:   readingRepo,
		processedRepo: processedRepo,
		eventRepo:     eventRepo,
		trx:           trx,
		gen:           gen,
	}
}

// MarkPaidFromSession applies a payment confirmation exactly once. The
// processed-id check, the paid transition, and the content attach share one
// transaction, so no reader ever observes a paid order without its content.
func (s *Service) MarkPaidFromSession(ctx context.Context, webhookEventID, sessionID string, paymentIntentID *string) (*Result, error) {
	res := &Result{}
	err := s.trx.Begin(ctx, func(ctx context.Context) error {
		inserted, err := s.processedRepo.TryInsert(ctx, webhookEventID)
		if err != nil {
			return err
		}
		if !inserted {
			res.AlreadyProcessed = true
			return nil
		}

		order, err := s.orderRepo.FindBySessionIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}
		if order == nil {
			// A delivery can race ahead of session attachment; recoverable
			// on redelivery, so log and acknowledge.
			zap.L().Warn("webhook references unknown session",
				zap.String("sessionId", sessionID), zap.String("webhookEventId", webhookEventID))
			event := domain.NewEvent("webhook.session.not_found", nil, nil, map[string]any{
				"stripeSessionId": sessionID,
				"webhookEventId":  webhookEventID,
			})
			return s.eventRepo.Append(ctx, event)
		}

		reading, err := s.readingRepo.FindByID(ctx, order.ReadingRequestID)
		if err != nil {
			return err
		}
		if reading == nil {
			return ErrOrphanOrder
		}

		if err := s.orderRepo.MarkPaid(ctx, order.ID, paymentIntentID); err != nil {
			return err
		}

		if reading.FullResult == nil {
			reading.FullResult = s.gen.Full(domain.ReadingInput{
				PersonA: reading.PersonA,
				PersonB: reading.PersonB,
			})
		}
		reading.Mode = domain.ReadingModeFull
		if err := s.readingRepo.AttachFullResult(ctx, reading); err != nil {
			return err
		}

		event := domain.NewEvent("webhook.checkout.completed", &reading.ID, &order.ID, map[string]any{
			"stripeSessionId": sessionID,
			"webhookEventId":  webhookEventID,
		})
		if err := s.eventRepo.Append(ctx, event); err != nil {
			return err
		}

		res.Updated = true
		return nil
	})
	if err != nil {
		zap.L().Error("can't reconcile webhook", zap.Error(err), zap.String("webhookEventId", webhookEventID))
		return nil, err
	}
	return res, nil
}

// RecordIgnored notes a delivery of an event type this system does not act on.
func (s *Service) RecordIgnored(ctx context.Context, eventID, eventType string) error {
	event := domain.NewEvent("webhook.ignored", nil, nil, map[string]any{
		"eventId":   eventID,
		"eventType": eventType,
	})
	return s.eventRepo.Append(ctx, event)
}

// RecordFailed notes a delivery whose reconciliation failed; the provider
// will redeliver.
func (s *Service) RecordFailed(ctx context.Context, eventID, message string) error {
	event := domain.NewEvent("webhook.failed", nil, nil, map[string]any{
		"eventId": eventID,
		"message": message,
	})
	return s.eventRepo.Append(ctx, event)
}
