package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ndevr/contentseer/internal/domain"
)

// Delete soft-deletes the topic and cascades the soft delete to every blog
// title under it. The titles are deleted first, mirroring the order the
// two updates have always run in; there is no transaction around the pair.
// Returns false (without error) when the topic row was not updated.
func (s *Service) Delete(ctx context.Context, topicID int64) (bool, error) {
	if topicID <= 0 {
		return false, domain.NewValidationError("topic_id", "required")
	}

	cascaded, err := s.titles.SoftDeleteByTopic(ctx, topicID)
	if err != nil {
		return false, fmt.Errorf("delete blog titles for topic: %w", err)
	}

	deleted, err := s.topics.SoftDelete(ctx, topicID)
	if err != nil {
		return false, fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.Int64("topic_id", topicID),
		slog.Bool("deleted", deleted),
		slog.Int64("titles_cascaded", cascaded),
	)

	return deleted, nil
}
