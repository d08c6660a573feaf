// Package analysis implements post content analysis: it sends the post body
// plus persona context to the analysis webhook, stores the returned scores,
// and serves stored reports back out.
package analysis

import (
	"context"
	"log/slog"

	"github.com/ndevr/contentseer/internal/config"
	"github.com/ndevr/contentseer/internal/domain"
)

type analysisRepo interface {
	Upsert(ctx context.Context, a *domain.Analysis) error
	GetByPostID(ctx context.Context, postID int64) (*domain.Analysis, error)
}

type personaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
}

type webhookClient interface {
	Post(ctx context.Context, url string, payload, out any) error
}

// Service provides content analysis operations.
type Service struct {
	analyses analysisRepo
	personas personaRepo
	hooks    webhookClient
	api      config.APIConfig
	cfg      config.WebhookConfig
	features config.FeatureConfig
	log      *slog.Logger
}

// NewService creates a new Analysis service.
func NewService(
	log *slog.Logger,
	analyses analysisRepo,
	personas personaRepo,
	hooks webhookClient,
	api config.APIConfig,
	cfg config.WebhookConfig,
	features config.FeatureConfig,
) *Service {
	return &Service{
		analyses: analyses,
		personas: personas,
		hooks:    hooks,
		api:      api,
		cfg:      cfg,
		features: features,
		log:      log.With("service", "analysis"),
	}
}
