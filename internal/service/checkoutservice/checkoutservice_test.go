package checkoutservice

import (
	"context"
	"errors"
	"testing"

	"github.com/soulcross/soulcross/internal/config"
	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"github.com/soulcross/soulcross/internal/stripe"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type serviceMocks struct {
	orderRepo   *MockOrderRepo
	readingRepo *MockReadingRepo
	eventRepo   *MockEventRepo
	gen         *MockGenerator
	payment     *MockPaymentClient
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		orderRepo:   NewMockOrderRepo(ctrl),
		readingRepo: NewMockReadingRepo(ctrl),
		eventRepo:   NewMockEventRepo(ctrl),
		gen:         NewMockGenerator(ctrl),
		payment:     NewMockPaymentClient(ctrl),
	}
	trx := pg.NewMockTXManager(ctrl)
	trx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	cfg := &config.Config{PriceCents: 999, Currency: "usd", BaseURL: "https://soulcross.app"}
	service := New(m.orderRepo, m.readingRepo, m.eventRepo, trx, m.gen, m.payment, cfg)
	defer ctrl.Finish()
	return service, m
}

func inputFixture() domain.ReadingInput {
	return domain.ReadingInput{
		PersonA: domain.PersonInput{Name: "Alice", Birthday: "1990-01-01", Gender: "female", Birthplace: "Prague"},
		PersonB: domain.PersonInput{Name: "Bob", Birthday: "1991-02-02", Gender: "male", Birthplace: "Oslo"},
	}
}

func TestCheckoutFromInput(t *testing.T) {
	service, m := NewMock(t)
	input := inputFixture()
	key := BuildIdempotencyKey(input, 999, "usd")
	preview := &domain.PreviewResult{Title: "Alice & Bob: Relationship Preview"}
	sessionID := "cs_test_123"

	tests := []struct {
		name           string
		prepareMock    func()
		expectedResult *Result
		expectedError  error
	}{
		{
			name: "New order creates a payment session",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(nil, nil)
				m.gen.EXPECT().Preview(input).Return(preview)
				m.readingRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, order *domain.Order) (bool, error) {
						assert.Equal(t, key, order.IdempotencyKey)
						assert.Equal(t, domain.OrderStatusPending, order.Status)
						assert.Equal(t, int64(999), order.AmountCents)
						return true, nil
					})
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				m.payment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, params stripe.SessionParams) (string, error) {
						assert.Equal(t, key, params.IdempotencyKey)
						assert.Equal(t, int64(999), params.AmountCents)
						assert.Contains(t, params.SuccessURL, "https://soulcross.app/reading/")
						return sessionID, nil
					})
				m.orderRepo.EXPECT().AttachSession(gomock.Any(), gomock.Any(), sessionID).DoAndReturn(
					func(_ context.Context, orderID, sid string) (*domain.Order, error) {
						return &domain.Order{ID: orderID, ReadingRequestID: "r1", StripeSessionID: &sid}, nil
					})
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedResult: &Result{SessionID: sessionID},
		},
		{
			name: "Repeated submission reuses pending order and its session",
			prepareMock: func() {
				existing := &domain.Order{
					ID: "order-1", ReadingRequestID: "reading-1",
					Status: domain.OrderStatusPending, IdempotencyKey: key, StripeSessionID: strPtr(sessionID),
				}
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(existing, nil)
				m.readingRepo.EXPECT().FindByID(gomock.Any(), "reading-1").Return(&domain.ReadingRequest{ID: "reading-1"}, nil)
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, event *domain.Event) error {
						assert.Equal(t, "checkout.reused", event.Type)
						return nil
					})
			},
			expectedResult: &Result{ReadingID: "reading-1", SessionID: sessionID},
		},
		{
			name: "Paid order with content short-circuits",
			prepareMock: func() {
				existing := &domain.Order{ID: "order-1", ReadingRequestID: "reading-1", Status: domain.OrderStatusPaid, IdempotencyKey: key}
				reading := &domain.ReadingRequest{ID: "reading-1", FullResult: &domain.FullResult{Title: "t"}}
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(existing, nil)
				m.readingRepo.EXPECT().FindByID(gomock.Any(), "reading-1").Return(reading, nil)
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedResult: &Result{ReadingID: "reading-1", AlreadyPaid: true},
		},
		{
			name: "Lost insert race is retried as a reuse",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(nil, nil)
				m.gen.EXPECT().Preview(input).Return(preview)
				m.readingRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(false, nil)

				winner := &domain.Order{
					ID: "order-2", ReadingRequestID: "reading-2",
					Status: domain.OrderStatusPending, IdempotencyKey: key, StripeSessionID: strPtr(sessionID),
				}
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(winner, nil)
				m.readingRepo.EXPECT().FindByID(gomock.Any(), "reading-2").Return(&domain.ReadingRequest{ID: "reading-2"}, nil)
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedResult: &Result{ReadingID: "reading-2", SessionID: sessionID},
		},
		{
			name: "Payment provider failure",
			prepareMock: func() {
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(nil, nil)
				m.gen.EXPECT().Preview(input).Return(preview)
				m.readingRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(true, nil)
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				m.payment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return("", errors.New("stripe is down"))
			},
			expectedError: ErrPaymentProvider,
		},
		{
			name: "Reused order without its reading",
			prepareMock: func() {
				existing := &domain.Order{ID: "order-1", ReadingRequestID: "reading-gone", IdempotencyKey: key}
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(existing, nil)
				m.readingRepo.EXPECT().FindByID(gomock.Any(), "reading-gone").Return(nil, nil)
			},
			expectedError: ErrOrphanOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.CheckoutFromInput(context.Background(), input)
			if tt.expectedError != nil {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult.AlreadyPaid, result.AlreadyPaid)
			assert.Equal(t, tt.expectedResult.SessionID, result.SessionID)
			if tt.expectedResult.ReadingID != "" {
				assert.Equal(t, tt.expectedResult.ReadingID, result.ReadingID)
			}
		})
	}
}

func TestCheckoutFromReading(t *testing.T) {
	service, m := NewMock(t)
	key := readingIdempotencyKey("reading-1", 999, "usd")
	sessionID := "cs_test_456"

	tests := []struct {
		name           string
		readingID      string
		prepareMock    func()
		expectedResult *Result
		expectedError  error
	}{
		{
			name:      "Unknown reading id",
			readingID: "missing",
			prepareMock: func() {
				m.readingRepo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrReadingNotFound,
		},
		{
			name:      "New order for preview reading creates a session",
			readingID: "reading-1",
			prepareMock: func() {
				reading := &domain.ReadingRequest{ID: "reading-1", Mode: domain.ReadingModePreview}
				m.readingRepo.EXPECT().FindByID(gomock.Any(), "reading-1").Return(reading, nil)
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(nil, nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, order *domain.Order) (bool, error) {
						assert.Equal(t, key, order.IdempotencyKey)
						assert.Equal(t, domain.OrderStatusPending, order.Status)
						return true, nil
					})
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
				m.payment.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(sessionID, nil)
				m.orderRepo.EXPECT().AttachSession(gomock.Any(), gomock.Any(), sessionID).DoAndReturn(
					func(_ context.Context, orderID, sid string) (*domain.Order, error) {
						return &domain.Order{ID: orderID, ReadingRequestID: "reading-1", StripeSessionID: &sid}, nil
					})
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedResult: &Result{ReadingID: "reading-1", SessionID: sessionID},
		},
		{
			name:      "Reading that already has full content skips payment",
			readingID: "reading-1",
			prepareMock: func() {
				reading := &domain.ReadingRequest{ID: "reading-1", Mode: domain.ReadingModeFull, FullResult: &domain.FullResult{Title: "t"}}
				m.readingRepo.EXPECT().FindByID(gomock.Any(), "reading-1").Return(reading, nil)
				m.orderRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), key).Return(nil, nil)
				m.orderRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, order *domain.Order) (bool, error) {
						assert.Equal(t, domain.OrderStatusPaid, order.Status)
						return true, nil
					})
				m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedResult: &Result{ReadingID: "reading-1", AlreadyPaid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.CheckoutFromReading(context.Background(), tt.readingID)
			if tt.expectedError != nil {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestAttachSession(t *testing.T) {
	service, m := NewMock(t)

	t.Run("Order not found", func(t *testing.T) {
		m.orderRepo.EXPECT().AttachSession(gomock.Any(), "order-1", "cs_1").Return(nil, nil)
		order, err := service.AttachSession(context.Background(), "order-1", "cs_1")
		assert.Nil(t, order)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("Session attached and recorded", func(t *testing.T) {
		sid := "cs_1"
		stored := &domain.Order{ID: "order-1", ReadingRequestID: "reading-1", StripeSessionID: &sid}
		m.orderRepo.EXPECT().AttachSession(gomock.Any(), "order-1", sid).Return(stored, nil)
		m.eventRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *domain.Event) error {
				assert.Equal(t, "checkout.session.created", event.Type)
				return nil
			})
		order, err := service.AttachSession(context.Background(), "order-1", sid)
		assert.NoError(t, err)
		assert.Equal(t, stored, order)
	})
}

func strPtr(s string) *string { return &s }
