// Package persona implements audience persona management: listing, lookup,
// and regeneration through the Perplexity provider.
package persona

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ndevr/contentseer/internal/domain"
)

type personaRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
	List(ctx context.Context) ([]domain.Persona, error)
	Upsert(ctx context.Context, p *domain.Persona) (int64, error)
}

type personaProvider interface {
	GeneratePersonas(ctx context.Context) ([]domain.Persona, error)
}

// Service provides persona operations.
type Service struct {
	personas personaRepo
	provider personaProvider
	log      *slog.Logger
}

// NewService creates a new Persona service.
func NewService(log *slog.Logger, personas personaRepo, provider personaProvider) *Service {
	return &Service{
		personas: personas,
		provider: provider,
		log:      log.With("service", "persona"),
	}
}

// Get returns a single persona by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Persona, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("persona_id", "required")
	}

	persona, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get persona: %w", err)
	}

	return persona, nil
}

// List returns all personas ordered by job title.
func (s *Service) List(ctx context.Context) ([]domain.Persona, error) {
	personas, err := s.personas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}

	return personas, nil
}
