package orderrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"go.uber.org/zap"
)

const orderColumns = `id, reading_request_id, stripe_session_id, stripe_payment_intent_id,
               status, idempotency_key, amount_cents, currency, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Save inserts the order, relying on the unique idempotency_key constraint
// for dedup. Returns false when another order already holds the key.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (bool, error) {
	query := `
        INSERT INTO orders (` + orderColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (idempotency_key) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query,
		order.ID, order.ReadingRequestID, order.StripeSessionID, order.StripePaymentIntentID,
		order.Status, order.IdempotencyKey, order.AmountCents, order.Currency,
		order.CreatedAt, order.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE idempotency_key = $1
    `
	return r.findOne(ctx, query, key)
}

func (r *Repository) FindByReadingID(ctx context.Context, readingID string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE reading_request_id = $1
        ORDER BY created_at ASC
        LIMIT 1
    `
	return r.findOne(ctx, query, readingID)
}

// FindBySessionIDForUpdate locks the matching order row for the duration of
// the surrounding transaction so concurrent webhook deliveries serialize.
func (r *Repository) FindBySessionIDForUpdate(ctx context.Context, sessionID string) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE stripe_session_id = $1
        FOR UPDATE
    `
	return r.findOne(ctx, query, sessionID)
}

// AttachSession sets the payment session id only if none is stored yet and
// returns the order as persisted, so a racing second attach observes the
// first writer's session id.
func (r *Repository) AttachSession(ctx context.Context, orderID, sessionID string) (*domain.Order, error) {
	query := `
        UPDATE orders
        SET stripe_session_id = COALESCE(stripe_session_id, $1), updated_at = $2
        WHERE id = $3
        RETURNING ` + orderColumns + `
	`
	row := r.db.QueryRow(ctx, query, sessionID, time.Now().UTC(), orderID)

	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't attach session to order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) MarkPaid(ctx context.Context, orderID string, paymentIntentID *string) error {
	query := `
        UPDATE orders
        SET status = $1, stripe_payment_intent_id = $2, updated_at = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, domain.OrderStatusPaid, paymentIntentID, time.Now().UTC(), orderID)
	if err != nil {
		zap.L().Error("can't mark order paid", zap.Error(err))
		return err
	}
	return nil
}

// FindPaidWithoutContent returns paid orders whose reading still lacks full
// content, for the background recovery loop.
func (r *Repository) FindPaidWithoutContent(ctx context.Context, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT o.id, o.reading_request_id, o.stripe_session_id, o.stripe_payment_intent_id,
               o.status, o.idempotency_key, o.amount_cents, o.currency, o.created_at, o.updated_at
        FROM orders o
        JOIN reading_requests r ON r.id = o.reading_request_id
        WHERE o.status = $1 AND r.full_result IS NULL
        ORDER BY o.updated_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, domain.OrderStatusPaid, int(limit))
	if err != nil {
		zap.L().Error("can't get orders for content recovery", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, query, arg)

	order, err := scanOrder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.ReadingRequestID, &order.StripeSessionID,
		&order.StripePaymentIntentID, &order.Status, &order.IdempotencyKey,
		&order.AmountCents, &order.Currency, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
