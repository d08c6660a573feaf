// Package blogtitle implements the blog title side of the content idea
// lifecycle: idempotent bulk import, on-demand title generation through
// the blog titles webhook, topic-scoped listing, and soft delete.
package blogtitle

import (
	"context"
	"log/slog"

	"github.com/ndevr/contentseer/internal/config"
	"github.com/ndevr/contentseer/internal/domain"
)

type titleRepo interface {
	InsertIfAbsent(ctx context.Context, topicID int64, text string, source domain.Source) (bool, error)
	ListByTopic(ctx context.Context, topicID int64, includeUsed bool) ([]domain.BlogTitle, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

type topicRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Topic, error)
}

type personaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
}

type webhookClient interface {
	Post(ctx context.Context, url string, payload, out any) error
}

// Service provides blog title lifecycle operations.
type Service struct {
	titles   titleRepo
	topics   topicRepo
	personas personaRepo
	hooks    webhookClient
	cfg      config.WebhookConfig
	log      *slog.Logger
}

// NewService creates a new BlogTitle service.
func NewService(
	log *slog.Logger,
	titles titleRepo,
	topics topicRepo,
	personas personaRepo,
	hooks webhookClient,
	cfg config.WebhookConfig,
) *Service {
	return &Service{
		titles:   titles,
		topics:   topics,
		personas: personas,
		hooks:    hooks,
		cfg:      cfg,
		log:      log.With("service", "blogtitle"),
	}
}
