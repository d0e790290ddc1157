package readingservice

import (
	"context"
	"errors"

	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, reading *domain.ReadingRequest) error
	FindByID(ctx context.Context, id string) (*domain.ReadingRequest, error)
	AttachFullResult(ctx context.Context, reading *domain.ReadingRequest) error
}

type OrderRepo interface {
	FindByReadingID(ctx context.Context, readingID string) (*domain.Order, error)
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.Event) error
}

type Generator interface {
	Preview(input domain.ReadingInput) *domain.PreviewResult
}

var ErrReadingNotFound = errors.New("reading request not found")

type Service struct {
	repo      Repo
	orderRepo OrderRepo
	eventRepo EventRepo
	trx       pg.TXManager
	gen       Generator
}

func New(repo Repo, orderRepo OrderRepo, eventRepo EventRepo, trx pg.TXManager, gen Generator) *Service {
	return &Service{
		repo:      repo,
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		trx:       trx,
		gen:       gen,
	}
}

// CreatePreview persists a preview-tier reading with its generated content.
// Input is expected to be validated already.
func (s *Service) CreatePreview(ctx context.Context, input domain.ReadingInput) (*domain.ReadingRequest, error) {
	reading := domain.NewReadingRequest(domain.ReadingModePreview, input, s.gen.Preview(input))

	err := s.trx.Begin(ctx, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, reading); err != nil {
			return err
		}
		event := domain.NewEvent("preview.requested", &reading.ID, nil, map[string]any{
			"mode": domain.ReadingModePreview,
		})
		return s.eventRepo.Append(ctx, event)
	})
	if err != nil {
		zap.L().Error("can't create preview reading", zap.Error(err))
		return nil, err
	}

	return reading, nil
}

// GetReading returns the reading and its order, if one exists. The order is
// nil for preview-only readings that were never taken to checkout.
func (s *Service) GetReading(ctx context.Context, readingID string) (*domain.ReadingRequest, *domain.Order, error) {
	reading, err := s.repo.FindByID(ctx, readingID)
	if err != nil {
		return nil, nil, err
	}
	if reading == nil {
		return nil, nil, ErrReadingNotFound
	}

	order, err := s.orderRepo.FindByReadingID(ctx, readingID)
	if err != nil {
		return nil, nil, err
	}
	return reading, order, nil
}
