package blogtitle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ndevr/contentseer/internal/domain"
)

// Delete soft-deletes a single blog title. Titles are leaf entities, so
// nothing cascades further. Returns false (without error) when the row was
// not updated.
func (s *Service) Delete(ctx context.Context, titleID int64) (bool, error) {
	if titleID <= 0 {
		return false, domain.NewValidationError("title_id", "required")
	}

	deleted, err := s.titles.SoftDelete(ctx, titleID)
	if err != nil {
		return false, fmt.Errorf("delete blog title: %w", err)
	}

	s.log.InfoContext(ctx, "blog title deleted",
		slog.Int64("title_id", titleID),
		slog.Bool("deleted", deleted),
	)

	return deleted, nil
}
