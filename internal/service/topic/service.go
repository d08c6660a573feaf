// Package topic implements the topic side of the content idea lifecycle:
// idempotent bulk import (inbound webhook), on-demand topic requests
// (outbound webhook), persona-scoped listing, and cascading soft delete.
package topic

import (
	"context"
	"log/slog"

	"github.com/ndevr/contentseer/internal/config"
	"github.com/ndevr/contentseer/internal/domain"
)

type topicRepo interface {
	InsertIfAbsent(ctx context.Context, personaID int64, text string, source domain.Source) (bool, error)
	ListByPersona(ctx context.Context, personaID int64, includeUsed bool) ([]domain.Topic, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

type titleCascader interface {
	SoftDeleteByTopic(ctx context.Context, topicID int64) (int64, error)
}

type personaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
}

type webhookClient interface {
	Post(ctx context.Context, url string, payload, out any) error
}

// Service provides topic lifecycle operations.
type Service struct {
	topics   topicRepo
	titles   titleCascader
	personas personaRepo
	hooks    webhookClient
	cfg      config.WebhookConfig
	log      *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	titles titleCascader,
	personas personaRepo,
	hooks webhookClient,
	cfg config.WebhookConfig,
) *Service {
	return &Service{
		topics:   topics,
		titles:   titles,
		personas: personas,
		hooks:    hooks,
		cfg:      cfg,
		log:      log.With("service", "topic"),
	}
}
