package reconciler

import (
	"context"
	"sync"
	"time"

	"github.com/soulcross/soulcross/internal/domain"
	"github.com/soulcross/soulcross/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service repairs orders stuck paid without generated content, which can
// happen when content generation fails after the payment webhook committed
// the paid transition in an earlier process lifetime.

type OrderRepo interface {
	FindPaidWithoutContent(ctx context.Context, limit uint32) ([]domain.Order, error)
}

type ReadingRepo interface {
	FindByID(ctx context.Context, id string) (*domain.ReadingRequest, error)
	AttachFullResult(ctx context.Context, reading *domain.ReadingRequest) error
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.Event) error
}

type Generator interface {
	Full(input domain.ReadingInput) *domain.FullResult
}

var processingOrders sync.Map

type Service struct {
	orderRepo      OrderRepo
	readingRepo    ReadingRepo
	eventRepo      EventRepo
	trx            pg.TXManager
	gen            Generator
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(orderRepo OrderRepo, readingRepo ReadingRepo, eventRepo EventRepo, trx pg.TXManager, gen Generator) *Service {
	return &Service{
		orderRepo:      orderRepo,
		readingRepo:    readingRepo,
		eventRepo:      eventRepo,
		trx:            trx,
		gen:            gen,
		limit:          100,
		workerPool:     NewWorkerPool(4),
		updateInterval: time.Second * 30,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Content reconciler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			s.processStuckOrders(ctx)
		}
	}
}

func (s *Service) processStuckOrders(ctx context.Context) {
	orders, err := s.orderRepo.FindPaidWithoutContent(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch orders for content recovery", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := processingOrders.LoadOrStore(order.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingOrders.Delete(order.ID)
				return s.recoverContent(ctx, order)
			})
			if err != nil {
				processingOrders.Delete(order.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error recovering order content", zap.Error(err))
	}
}

func (s *Service) recoverContent(ctx context.Context, order domain.Order) error {
	return s.trx.Begin(ctx, func(ctx context.Context) error {
		reading, err := s.readingRepo.FindByID(ctx, order.ReadingRequestID)
		if err != nil {
			return err
		}
		if reading == nil {
			zap.L().Error("Paid order references missing reading", zap.String("orderId", order.ID))
			return nil
		}
		if reading.FullResult != nil {
			// Repaired concurrently, nothing to do.
			return nil
		}

		reading.FullResult = s.gen.Full(domain.ReadingInput{
			PersonA: reading.PersonA,
			PersonB: reading.PersonB,
		})
		reading.Mode = domain.ReadingModeFull
		if err := s.readingRepo.AttachFullResult(ctx, reading); err != nil {
			return err
		}

		event := domain.NewEvent("reading.content.recovered", &reading.ID, &order.ID, map[string]any{
			"orderId": order.ID,
		})
		if err := s.eventRepo.Append(ctx, event); err != nil {
			return err
		}

		zap.L().Info("Recovered full content for paid order", zap.String("orderId", order.ID))
		return nil
	})
}
