package blogtitle

import (
	"context"
	"fmt"

	"github.com/ndevr/contentseer/internal/domain"
)

// ListByTopic returns the topic's active titles, unused first.
// Used titles are included only when input.IncludeUsed is set.
func (s *Service) ListByTopic(ctx context.Context, input ListInput) ([]domain.BlogTitle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	titles, err := s.titles.ListByTopic(ctx, input.TopicID, input.IncludeUsed)
	if err != nil {
		return nil, fmt.Errorf("list blog titles: %w", err)
	}

	return titles, nil
}
