// Package generation orchestrates full post generation: it gathers persona
// context, calls the content generation webhook, and marks the source topic
// and blog title as used once the destination reports the new post id.
package generation

import (
	"context"
	"log/slog"

	"github.com/ndevr/contentseer/internal/config"
	"github.com/ndevr/contentseer/internal/domain"
)

type personaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
}

type topicMarker interface {
	MarkUsed(ctx context.Context, id, postID int64) error
	MarkUsedByText(ctx context.Context, text string, postID int64) error
}

type titleMarker interface {
	MarkUsed(ctx context.Context, id, postID int64) error
	MarkUsedByText(ctx context.Context, text string, postID int64) error
}

type webhookClient interface {
	Post(ctx context.Context, url string, payload, out any) error
}

// Service coordinates content generation requests.
type Service struct {
	personas personaRepo
	topics   topicMarker
	titles   titleMarker
	hooks    webhookClient
	api      config.APIConfig
	cfg      config.WebhookConfig
	features config.FeatureConfig
	log      *slog.Logger
}

// NewService creates a new Generation service.
func NewService(
	log *slog.Logger,
	personas personaRepo,
	topics topicMarker,
	titles titleMarker,
	hooks webhookClient,
	api config.APIConfig,
	cfg config.WebhookConfig,
	features config.FeatureConfig,
) *Service {
	return &Service{
		personas: personas,
		topics:   topics,
		titles:   titles,
		hooks:    hooks,
		api:      api,
		cfg:      cfg,
		features: features,
		log:      log.With("service", "generation"),
	}
}
