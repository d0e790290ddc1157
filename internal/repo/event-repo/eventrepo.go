package eventrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"go.uber.org/zap"
)

// Repository is the append-only audit log. Records are never updated or
// deleted and nothing in the business logic reads them back.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Append(ctx context.Context, event *domain.Event) error {
	query := `
        INSERT INTO events (id, type, reading_request_id, order_id, payload, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("can't marshal event payload: %w", err)
	}

	_, err = r.db.Exec(ctx, query,
		event.ID, event.Type, event.ReadingRequestID, event.OrderID, payload, event.CreatedAt)
	if err != nil {
		zap.L().Error("can't append event", zap.Error(err), zap.String("type", event.Type))
		return err
	}
	return nil
}
