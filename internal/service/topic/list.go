package topic

import (
	"context"
	"fmt"

	"github.com/ndevr/contentseer/internal/domain"
)

// ListByPersona returns the persona's active topics, unused first.
// Used topics are included only when input.IncludeUsed is set.
func (s *Service) ListByPersona(ctx context.Context, input ListInput) ([]domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	topics, err := s.topics.ListByPersona(ctx, input.PersonaID, input.IncludeUsed)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}
