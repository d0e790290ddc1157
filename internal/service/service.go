package service

import (
	"github.com/soulcross/soulcross/internal/config"
	"github.com/soulcross/soulcross/internal/generator"
	"github.com/soulcross/soulcross/internal/handlers/checkout"
	"github.com/soulcross/soulcross/internal/handlers/readings"
	"github.com/soulcross/soulcross/internal/handlers/webhook"
	"github.com/soulcross/soulcross/internal/pg"
	"github.com/soulcross/soulcross/internal/repo"
	"github.com/soulcross/soulcross/internal/service/checkoutservice"
	"github.com/soulcross/soulcross/internal/service/readingservice"
	"github.com/soulcross/soulcross/internal/service/webhookservice"
)

type Services struct {
	ReadingService  readings.Service
	CheckoutService checkout.Service
	WebhookService  webhook.Service
}

func New(repo *repo.Repositories, trx pg.TXManager, cfg *config.Config, payment checkoutservice.PaymentClient) *Services {
	gen := generator.New()

	readingService := readingservice.New(repo.ReadingRepo, repo.OrderRepo, repo.EventRepo, trx, gen)
	checkoutService := checkoutservice.New(repo.OrderRepo, repo.ReadingRepo, repo.EventRepo, trx, gen, payment, cfg)
	webhookService := webhookservice.New(repo.OrderRepo, repo.ReadingRepo, repo.ProcessedRepo, repo.EventRepo, trx, gen)

	return &Services{
		ReadingService:  readingService,
		CheckoutService: checkoutService,
		WebhookService:  webhookService,
	}
}
