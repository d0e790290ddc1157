package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/soulcross/soulcross/docs"
	"github.com/soulcross/soulcross/internal/config"
	checkouthandlers "github.com/soulcross/soulcross/internal/handlers/checkout"
	readingshandlers "github.com/soulcross/soulcross/internal/handlers/readings"
	webhookhandlers "github.com/soulcross/soulcross/internal/handlers/webhook"
	"github.com/soulcross/soulcross/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ReadingHandler interface {
	CreatePreview(w http.ResponseWriter, r *http.Request)
	GetReading(w http.ResponseWriter, r *http.Request)
}

type CheckoutHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	HandleStripe(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ReadingHandler  ReadingHandler
	CheckoutHandler CheckoutHandler
	WebhookHandler  WebhookHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		ReadingHandler:  readingshandlers.New(s.ReadingService),
		CheckoutHandler: checkouthandlers.New(s.CheckoutService),
		WebhookHandler:  webhookhandlers.New(s.WebhookService, cfg.StripeWebhookSecret),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/preview", h.ReadingHandler.CreatePreview)
		r.Get("/reading/{id}", h.ReadingHandler.GetReading)
		r.Post("/checkout", h.CheckoutHandler.Checkout)
		r.Post("/webhook/stripe", h.WebhookHandler.HandleStripe)
	})

	return r
}
