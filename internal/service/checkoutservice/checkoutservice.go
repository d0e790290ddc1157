package checkoutservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soulcross/soulcross/internal/config"
	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"github.com/soulcross/soulcross/internal/stripe"
	"go.uber.org/zap"
)

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order) (bool, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error)
	FindByReadingID(ctx context.Context, readingID string) (*domain.Order, error)
	FindBySessionIDForUpdate(ctx context.Context, sessionID string) (*domain.Order, error)
	AttachSession(ctx context.Context, orderID, sessionID string) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID string, paymentIntentID *string) error
	FindPaidWithoutContent(ctx context.Context, limit uint32) ([]domain.Order, error)
}

type ReadingRepo interface {
	Save(ctx context.Context, reading *domain.ReadingRequest) error
	FindByID(ctx context.Context, id string) (*domain.ReadingRequest, error)
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.Event) error
}

type Generator interface {
	Preview(input domain.ReadingInput) *domain.PreviewResult
}

type PaymentClient interface {
	CreateCheckoutSession(ctx context.Context, params stripe.SessionParams) (string, error)
}

const productName = "SoulCross Full Relationship Reading"

var (
	ErrReadingNotFound = errors.New("reading request not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrphanOrder     = errors.New("order exists without reading request")
	ErrPaymentProvider = errors.New("payment provider error")

	// errLostInsertRace signals that a concurrent submission claimed the
	// idempotency key between our lookup and insert.
	errLostInsertRace = errors.New("idempotency key claimed concurrently")
)

type OrderPair struct {
	Reading *domain.ReadingRequest
	Order   *domain.Order
	Reused  bool
}

type Result struct {
	ReadingID   string
	SessionID   string
	AlreadyPaid bool
}

type Service struct {
	orderRepo   OrderRepo
	readingRepo ReadingRepo
	eventRepo   EventRepo
	trx         pg.TXManager
	gen         Generator
	payment     PaymentClient
	amountCents int64
	currency    string
	baseURL     string
}

func New(orderRepo OrderRepo, readingRepo ReadingRepo, eventRepo EventRepo, trx pg.TXManager,
	gen Generator, payment PaymentClient, cfg *config.Config) *Service {
	return &Service{
		orderRepo:   orderRepo,
		readingRepo: readingRepo,
		eventRepo:   eventRepo,
		trx:         trx,
		gen:         gen,
		payment:     payment,
		amountCents: cfg.PriceCents,
		currency:    cfg.Currency,
		baseURL:     cfg.BaseURL,
	}
}

func (s *Service) AmountCents() int64 { return s.amountCents }
func (s *Service) Currency() string   { return s.currency }

// CheckoutFromInput is the raw-person-data checkout path: dedup by derived
// key, then create the payment session if one is still needed.
func (s *Service) CheckoutFromInput(ctx context.Context, input domain.ReadingInput) (*Result, error) {
	key := BuildIdempotencyKey(input, s.amountCents, s.currency)
	pair, err := s.CreateOrReuseFullOrder(ctx, input, key)
	if err != nil {
		return nil, err
	}
	return s.finishCheckout(ctx, pair)
}

// CheckoutFromReading is the checkout path for a reading created earlier via
// preview. Fails with ErrReadingNotFound for unknown ids instead of silently
// creating a reading.
func (s *Service) CheckoutFromReading(ctx context.Context, readingID string) (*Result, error) {
	pair, err := s.CreateOrReuseOrderForExistingReading(ctx, readingID)
	if err != nil {
		return nil, err
	}
	return s.finishCheckout(ctx, pair)
}

// CreateOrReuseFullOrder returns the order registered under the key, or
// atomically creates a full-mode reading plus pending order. A lost insert
// race against the unique key constraint is retried as a reuse.
func (s *Service) CreateOrReuseFullOrder(ctx context.Context, input domain.ReadingInput, key string) (*OrderPair, error) {
	for attempt := 0; attempt < 2; attempt++ {
		pair, err := s.createOrReuseFullOrder(ctx, input, key)
		if errors.Is(err, errLostInsertRace) {
			continue
		}
		return pair, err
	}
	return nil, errLostInsertRace
}

func (s *Service) createOrReuseFullOrder(ctx context.Context, input domain.ReadingInput, key string) (*OrderPair, error) {
	var pair *OrderPair
	err := s.trx.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.orderRepo.FindByIdempotencyKey(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			reading, err := s.readingRepo.FindByID(ctx, existing.ReadingRequestID)
			if err != nil {
				return err
			}
			if reading == nil {
				return ErrOrphanOrder
			}
			event := domain.NewEvent("checkout.reused", &reading.ID, &existing.ID, map[string]any{
				"idempotencyKey": key,
				"orderStatus":    existing.Status,
			})
			if err := s.eventRepo.Append(ctx, event); err != nil {
				return err
			}
			pair = &OrderPair{Reading: reading, Order: existing, Reused: true}
			return nil
		}

		reading := domain.NewReadingRequest(domain.ReadingModeFull, input, s.gen.Preview(input))
		order := newOrder(reading.ID, key, s.amountCents, s.currency, domain.OrderStatusPending)

		if err := s.readingRepo.Save(ctx, reading); err != nil {
			return err
		}
		inserted, err := s.orderRepo.Save(ctx, order)
		if err != nil {
			return err
		}
		if !inserted {
			return errLostInsertRace
		}

		event := domain.NewEvent("checkout.requested", &reading.ID, &order.ID, map[string]any{
			"idempotencyKey": order.IdempotencyKey,
			"amountCents":    order.AmountCents,
			"currency":       order.Currency,
		})
		if err := s.eventRepo.Append(ctx, event); err != nil {
			return err
		}
		pair = &OrderPair{Reading: reading, Order: order, Reused: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// CreateOrReuseOrderForExistingReading derives the key from the reading id
// plus price. When the reading already carries full content the order is
// created directly in paid state, shortcutting a second payment.
func (s *Service) CreateOrReuseOrderForExistingReading(ctx context.Context, readingID string) (*OrderPair, error) {
	for attempt := 0; attempt < 2; attempt++ {
		pair, err := s.createOrReuseOrderForExistingReading(ctx, readingID)
		if errors.Is(err, errLostInsertRace) {
			continue
		}
		return pair, err
	}
	return nil, errLostInsertRace
}

func (s *Service) createOrReuseOrderForExistingReading(ctx context.Context, readingID string) (*OrderPair, error) {
	var pair *OrderPair
	err := s.trx.Begin(ctx, func(ctx context.Context) error {
		reading, err := s.readingRepo.FindByID(ctx, readingID)
		if err != nil {
			return err
		}
		if reading == nil {
			return ErrReadingNotFound
		}

		key := readingIdempotencyKey(reading.ID, s.amountCents, s.currency)
		existing, err := s.orderRepo.FindByIdempotencyKey(ctx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			event := domain.NewEvent("checkout.reused", &reading.ID, &existing.ID, map[string]any{
				"idempotencyKey": existing.IdempotencyKey,
				"fromReadingId":  true,
			})
			if err := s.eventRepo.Append(ctx, event); err != nil {
				return err
			}
			pair = &OrderPair{Reading: reading, Order: existing, Reused: true}
			return nil
		}

		status := domain.OrderStatusPending
		if reading.FullResult != nil {
			status = domain.OrderStatusPaid
		}
		order := newOrder(reading.ID, key, s.amountCents, s.currency, status)

		inserted, err := s.orderRepo.Save(ctx, order)
		if err != nil {
			return err
		}
		if !inserted {
			return errLostInsertRace
		}

		event := domain.NewEvent("checkout.requested", &reading.ID, &order.ID, map[string]any{
			"idempotencyKey": order.IdempotencyKey,
			"fromReadingId":  true,
		})
		if err := s.eventRepo.Append(ctx, event); err != nil {
			return err
		}
		pair = &OrderPair{Reading: reading, Order: order, Reused: false}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// AttachSession stores the payment session id with first-write-wins
// semantics and returns the order as persisted.
func (s *Service) AttachSession(ctx context.Context, orderID, sessionID string) (*domain.Order, error) {
	var order *domain.Order
	err := s.trx.Begin(ctx, func(ctx context.Context) error {
		updated, err := s.orderRepo.AttachSession(ctx, orderID, sessionID)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrOrderNotFound
		}
		order = updated

		event := domain.NewEvent("checkout.session.created", &order.ReadingRequestID, &order.ID, map[string]any{
			"stripeSessionId": *order.StripeSessionID,
		})
		return s.eventRepo.Append(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// finishCheckout turns an order pair into the API outcome. Session creation
// happens against the provider outside any transaction, then the id is
// attached in its own short mutation.
func (s *Service) finishCheckout(ctx context.Context, pair *OrderPair) (*Result, error) {
	if pair.Order.Status == domain.OrderStatusPaid && pair.Reading.FullResult != nil {
		return &Result{ReadingID: pair.Reading.ID, AlreadyPaid: true}, nil
	}

	if pair.Order.StripeSessionID != nil {
		return &Result{ReadingID: pair.Reading.ID, SessionID: *pair.Order.StripeSessionID}, nil
	}

	sessionID, err := s.payment.CreateCheckoutSession(ctx, stripe.SessionParams{
		AmountCents:    pair.Order.AmountCents,
		Currency:       pair.Order.Currency,
		ProductName:    productName,
		SuccessURL:     fmt.Sprintf("%s/reading/%s?checkout=success&session_id={CHECKOUT_SESSION_ID}", s.baseURL, pair.Reading.ID),
		CancelURL:      fmt.Sprintf("%s/reading/%s?checkout=canceled", s.baseURL, pair.Reading.ID),
		IdempotencyKey: pair.Order.IdempotencyKey,
		Metadata: map[string]string{
			"readingRequestId": pair.Reading.ID,
			"orderId":          pair.Order.ID,
			"idempotencyKey":   pair.Order.IdempotencyKey,
		},
	})
	if err != nil {
		zap.L().Error("can't create checkout session", zap.Error(err), zap.String("orderId", pair.Order.ID))
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	order, err := s.AttachSession(ctx, pair.Order.ID, sessionID)
	if err != nil {
		return nil, err
	}

	return &Result{ReadingID: pair.Reading.ID, SessionID: *order.StripeSessionID}, nil
}

func newOrder(readingID, key string, amountCents int64, currency, status string) *domain.Order {
	now := time.Now().UTC()
	return &domain.Order{
		ID:               uuid.NewString(),
		ReadingRequestID: readingID,
		Status:           status,
		IdempotencyKey:   key,
		AmountCents:      amountCents,
		Currency:         currency,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
