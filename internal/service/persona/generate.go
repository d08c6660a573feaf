package persona

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ndevr/contentseer/internal/domain"
)

// GenerateAndImport asks the provider for a fresh persona set and upserts
// each one, matching on job title so regeneration refreshes existing rows
// instead of duplicating them. Returns the stored personas with their ids.
func (s *Service) GenerateAndImport(ctx context.Context) ([]domain.Persona, error) {
	generated, err := s.provider.GeneratePersonas(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate personas: %w", err)
	}

	if len(generated) == 0 {
		return nil, fmt.Errorf("generate personas: empty result: %w", domain.ErrWebhookContract)
	}

	stored := make([]domain.Persona, 0, len(generated))
	for i := range generated {
		p := generated[i]
		id, err := s.personas.Upsert(ctx, &p)
		if err != nil {
			return stored, fmt.Errorf("store persona %q: %w", p.JobTitle, err)
		}
		p.ID = id
		stored = append(stored, p)
	}

	s.log.InfoContext(ctx, "personas generated",
		slog.Int("count", len(stored)),
	)

	return stored, nil
}
