package blogtitle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Import inserts each title for the topic unless an identical active row
// already exists, and returns how many inserts occurred. Blank entries are
// skipped.
func (s *Service) Import(ctx context.Context, input ImportInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	inserted := 0
	for _, raw := range input.Titles {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		ok, err := s.titles.InsertIfAbsent(ctx, input.TopicID, text, input.Source)
		if err != nil {
			return inserted, fmt.Errorf("import blog title: %w", err)
		}
		if ok {
			inserted++
		}
	}

	s.log.InfoContext(ctx, "blog titles imported",
		slog.Int64("topic_id", input.TopicID),
		slog.String("source", input.Source.String()),
		slog.Int("inserted_count", inserted),
	)

	return inserted, nil
}
