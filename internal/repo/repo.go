package repo

import (
	"github.com/soulcross/soulcross/internal/pg"
	eventrepo "github.com/soulcross/soulcross/internal/repo/event-repo"
	orderrepo "github.com/soulcross/soulcross/internal/repo/order-repo"
	readingrepo "github.com/soulcross/soulcross/internal/repo/reading-repo"
	webhookrepo "github.com/soulcross/soulcross/internal/repo/webhook-repo"
	"github.com/soulcross/soulcross/internal/service/checkoutservice"
	"github.com/soulcross/soulcross/internal/service/readingservice"
	"github.com/soulcross/soulcross/internal/service/webhookservice"
)

type Repositories struct {
	ReadingRepo   readingservice.Repo
	OrderRepo     checkoutservice.OrderRepo
	EventRepo     readingservice.EventRepo
	ProcessedRepo webhookservice.ProcessedRepo
}

func New(conn pg.Database) *Repositories {
	readingRepo := readingrepo.New(conn)
	orderRepo := orderrepo.New(conn)
	eventRepo := eventrepo.New(conn)
	processedRepo := webhookrepo.New(conn)

	return &Repositories{
		ReadingRepo:   readingRepo,
		OrderRepo:     orderRepo,
		EventRepo:     eventRepo,
		ProcessedRepo: processedRepo,
	}
}
