package readingrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, reading *domain.ReadingRequest) error {
	query := `
        INSERT INTO reading_requests (id, mode, person_a, person_b, preview_result, full_result, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	personA, err := json.Marshal(reading.PersonA)
	if err != nil {
		return fmt.Errorf("can't marshal person a: %w", err)
	}
	personB, err := json.Marshal(reading.PersonB)
	if err != nil {
		return fmt.Errorf("can't marshal person b: %w", err)
	}
	preview, err := marshalNullable(reading.PreviewResult)
	if err != nil {
		return err
	}
	full, err := marshalNullable(reading.FullResult)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, query,
		reading.ID, reading.Mode, personA, personB, preview, full, reading.CreatedAt, reading.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save reading request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.ReadingRequest, error) {
	query := `
        SELECT id, mode, person_a, person_b, preview_result, full_result, created_at, updated_at
        FROM reading_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	reading, err := scanReading(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find reading request", zap.Error(err))
		return nil, err
	}
	return reading, nil
}

// AttachFullResult persists the paid-tier content together with the mode
// flip. Callers set FullResult and Mode before calling.
func (r *Repository) AttachFullResult(ctx context.Context, reading *domain.ReadingRequest) error {
	query := `
        UPDATE reading_requests
        SET mode = $1, full_result = $2, updated_at = $3
        WHERE id = $4
    `
	full, err := marshalNullable(reading.FullResult)
	if err != nil {
		return err
	}

	reading.UpdatedAt = time.Now().UTC()
	_, err = r.db.Exec(ctx, query, reading.Mode, full, reading.UpdatedAt, reading.ID)
	if err != nil {
		zap.L().Error("can't attach full result", zap.Error(err))
		return err
	}
	return nil
}

func marshalNullable(v any) ([]byte, error) {
	switch res := v.(type) {
	case *domain.PreviewResult:
		if res == nil {
			return nil, nil
		}
	case *domain.FullResult:
		if res == nil {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("can't marshal result: %w", err)
	}
	return data, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReading(row rowScanner) (*domain.ReadingRequest, error) {
	var (
		reading          domain.ReadingRequest
		personA, personB []byte
		preview, full    []byte
	)
	err := row.Scan(&reading.ID, &reading.Mode, &personA, &personB, &preview, &full,
		&reading.CreatedAt, &reading.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(personA, &reading.PersonA); err != nil {
		return nil, fmt.Errorf("can't unmarshal person a: %w", err)
	}
	if err := json.Unmarshal(personB, &reading.PersonB); err != nil {
		return nil, fmt.Errorf("can't unmarshal person b: %w", err)
	}
	if preview != nil {
		reading.PreviewResult = &domain.PreviewResult{}
		if err := json.Unmarshal(preview, reading.PreviewResult); err != nil {
			return nil, fmt.Errorf("can't unmarshal preview result: %w", err)
		}
	}
	if full != nil {
		reading.FullResult = &domain.FullResult{}
		if err := json.Unmarshal(full, reading.FullResult); err != nil {
			return nil, fmt.Errorf("can't unmarshal full result: %w", err)
		}
	}
	return &reading, nil
}
