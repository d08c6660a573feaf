package rest

import (
	"log/slog"
	"net/http"

	"github.com/ndevr/contentseer/internal/config"
	"github.com/ndevr/contentseer/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Topics     *TopicHandler
	BlogTitles *BlogTitleHandler
	Generate   *GenerateHandler
	Analysis   *AnalysisHandler
	Personas   *PersonaHandler
}

// NewRouter assembles the HTTP routing table. Health probes are open;
// everything under /v1/ requires Basic auth with the configured key:secret.
func NewRouter(h Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	api := http.NewServeMux()
	api.HandleFunc("POST /v1/topics/webhook", h.Topics.Webhook)
	api.HandleFunc("POST /v1/topics/request", h.Topics.Request)
	api.HandleFunc("DELETE /v1/topics/{id}", h.Topics.Delete)
	api.HandleFunc("GET /v1/topics/{id}/blog-titles", h.BlogTitles.ListByTopic)
	api.HandleFunc("POST /v1/topics/{id}/blog-titles/generate", h.BlogTitles.Generate)

	api.HandleFunc("POST /v1/blog-titles/webhook", h.BlogTitles.Webhook)
	api.HandleFunc("DELETE /v1/blog-titles/{id}", h.BlogTitles.Delete)

	api.HandleFunc("GET /v1/personas", h.Personas.List)
	api.HandleFunc("GET /v1/personas/{id}", h.Personas.Get)
	api.HandleFunc("GET /v1/personas/{id}/topics", h.Topics.ListByPersona)
	api.HandleFunc("POST /v1/personas/generate", h.Personas.Generate)

	api.HandleFunc("POST /v1/generate", h.Generate.Generate)
	api.HandleFunc("POST /v1/analyze", h.Analysis.Analyze)
	api.HandleFunc("POST /v1/analysis/{id}", h.Analysis.Save)
	api.HandleFunc("GET /v1/analysis/{id}", h.Analysis.Get)

	mux.Handle("/v1/", middleware.BasicAuth(cfg.API)(api))

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
	)

	return chain(mux)
}
