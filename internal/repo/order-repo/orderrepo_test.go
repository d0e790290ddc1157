package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/soulcross/soulcross/internal/domain"
	"github.com/stretchr/testify/assert"
)

var orderCols = []string{
	"id", "reading_request_id", "stripe_session_id", "stripe_payment_intent_id",
	"status", "idempotency_key", "amount_cents", "currency", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func orderFixture(now time.Time) *domain.Order {
	return &domain.Order{
		ID:               "order-1",
		ReadingRequestID: "reading-1",
		Status:           domain.OrderStatusPending,
		IdempotencyKey:   "key-1",
		AmountCents:      999,
		Currency:         "usd",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	order := orderFixture(now)

	tests := []struct {
		name      string
		mockSetup func()
		inserted  bool
		expectErr bool
	}{
		{
			name: "Order inserted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(order.ID, order.ReadingRequestID, order.StripeSessionID, order.StripePaymentIntentID,
						order.Status, order.IdempotencyKey, order.AmountCents, order.Currency,
						order.CreatedAt, order.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			inserted: true,
		},
		{
			name: "Idempotency key already taken",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(order.ID, order.ReadingRequestID, order.StripeSessionID, order.StripePaymentIntentID,
						order.Status, order.IdempotencyKey, order.AmountCents, order.Currency,
						order.CreatedAt, order.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			inserted: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
					WithArgs(order.ID, order.ReadingRequestID, order.StripeSessionID, order.StripePaymentIntentID,
						order.Status, order.IdempotencyKey, order.AmountCents, order.Currency,
						order.CreatedAt, order.UpdatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			inserted, err := repo.Save(context.Background(), order)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.inserted, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByIdempotencyKey(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	order := orderFixture(now)

	tests := []struct {
		name      string
		key       string
		mockSetup func()
		expectErr bool
		result    *domain.Order
	}{
		{
			name: "Order exists",
			key:  "key-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(orderCols).
					AddRow("order-1", "reading-1", nil, nil, domain.OrderStatusPending, "key-1",
						int64(999), "usd", now, now)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE idempotency_key = $1")).
					WithArgs("key-1").
					WillReturnRows(rows)
			},
			result: order,
		},
		{
			name: "Order does not exist",
			key:  "key-2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE idempotency_key = $1")).
					WithArgs("key-2").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			key:  "key-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE idempotency_key = $1")).
					WithArgs("key-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByIdempotencyKey(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindBySessionIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	sessionID := "cs_1"

	t.Run("Order exists", func(t *testing.T) {
		rows := pgxmock.NewRows(orderCols).
			AddRow("order-1", "reading-1", &sessionID, nil, domain.OrderStatusPending, "key-1",
				int64(999), "usd", now, now)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE stripe_session_id = $1")).
			WithArgs(sessionID).
			WillReturnRows(rows)

		result, err := repo.FindBySessionIDForUpdate(context.Background(), sessionID)
		assert.NoError(t, err)
		assert.Equal(t, "order-1", result.ID)
		assert.Equal(t, sessionID, *result.StripeSessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE stripe_session_id = $1")).
			WithArgs("cs_unknown").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindBySessionIDForUpdate(context.Background(), "cs_unknown")
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_AttachSession(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	sessionID := "cs_1"

	t.Run("Session attached", func(t *testing.T) {
		rows := pgxmock.NewRows(orderCols).
			AddRow("order-1", "reading-1", &sessionID, nil, domain.OrderStatusPending, "key-1",
				int64(999), "usd", now, now)
		mock.ExpectQuery(regexp.QuoteMeta("SET stripe_session_id = COALESCE(stripe_session_id, $1)")).
			WithArgs(sessionID, pgxmock.AnyArg(), "order-1").
			WillReturnRows(rows)

		result, err := repo.AttachSession(context.Background(), "order-1", sessionID)
		assert.NoError(t, err)
		assert.Equal(t, sessionID, *result.StripeSessionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order does not exist", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SET stripe_session_id = COALESCE(stripe_session_id, $1)")).
			WithArgs(sessionID, pgxmock.AnyArg(), "order-2").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.AttachSession(context.Background(), "order-2", sessionID)
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_MarkPaid(t *testing.T) {
	repo, mock := NewMock(t)
	intentID := "pi_1"

	t.Run("Order marked paid", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
			WithArgs(domain.OrderStatusPaid, &intentID, pgxmock.AnyArg(), "order-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkPaid(context.Background(), "order-1", &intentID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
			WithArgs(domain.OrderStatusPaid, &intentID, pgxmock.AnyArg(), "order-1").
			WillReturnError(errors.New("database error"))

		err := repo.MarkPaid(context.Background(), "order-1", &intentID)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindPaidWithoutContent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Stuck orders returned", func(t *testing.T) {
		rows := pgxmock.NewRows(orderCols).
			AddRow("order-1", "reading-1", nil, nil, domain.OrderStatusPaid, "key-1",
				int64(999), "usd", now, now).
			AddRow("order-2", "reading-2", nil, nil, domain.OrderStatusPaid, "key-2",
				int64(999), "usd", now, now)
		mock.ExpectQuery(regexp.QuoteMeta("JOIN reading_requests r ON r.id = o.reading_request_id")).
			WithArgs(domain.OrderStatusPaid, 100).
			WillReturnRows(rows)

		orders, err := repo.FindPaidWithoutContent(context.Background(), 100)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
		assert.Equal(t, "order-1", orders[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("JOIN reading_requests r ON r.id = o.reading_request_id")).
			WithArgs(domain.OrderStatusPaid, 100).
			WillReturnError(errors.New("database error"))

		orders, err := repo.FindPaidWithoutContent(context.Background(), 100)
		assert.Error(t, err)
		assert.Nil(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
