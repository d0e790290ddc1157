package webhookrepo

import (
	"context"
	"time"

	"github.com/soulcross/soulcross/internal/pg"
	"go.uber.org/zap"
)

// Repository tracks payment-provider event ids that were already handled.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// TryInsert records the event id and reports whether this call was the first
// to do so. A false result means the event was delivered before and must be
// treated as a no-op by the caller.
func (r *Repository) TryInsert(ctx context.Context, eventID string) (bool, error) {
	query := `
        INSERT INTO processed_webhook_events (event_id, processed_at)
        VALUES ($1, $2)
        ON CONFLICT (event_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, eventID, time.Now().UTC())
	if err != nil {
		zap.L().Error("can't record processed webhook event", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
