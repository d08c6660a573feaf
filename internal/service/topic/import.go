package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Import inserts each topic for the persona unless an identical active row
// already exists, and returns how many inserts occurred. Blank entries are
// skipped. Both the inbound webhook and the outbound request path funnel
// through here, which is what makes repeated deliveries idempotent.
func (s *Service) Import(ctx context.Context, input ImportInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	inserted := 0
	for _, raw := range input.Topics {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		ok, err := s.topics.InsertIfAbsent(ctx, input.PersonaID, text, input.Source)
		if err != nil {
			return inserted, fmt.Errorf("import topic: %w", err)
		}
		if ok {
			inserted++
		}
	}

	s.log.InfoContext(ctx, "topics imported",
		slog.Int64("persona_id", input.PersonaID),
		slog.String("source", input.Source.String()),
		slog.Int("inserted_count", inserted),
	)

	return inserted, nil
}
