package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ndevr/contentseer/internal/domain"
)

// topicsRequest is the payload sent to the topics webhook.
type topicsRequest struct {
	TermID      int64    `json:"term_id"`
	TermName    string   `json:"term_name"`
	JobTitle    string   `json:"job_title"`
	Background  string   `json:"background"`
	Goals       string   `json:"goals"`
	Motivations string   `json:"motivations"`
	PainPoints  []string `json:"pain_points"`
}

// topicsResponse is the expected reply: a list of topic suggestions.
type topicsResponse struct {
	Topics []string `json:"topics"`
}

// Validate reports a contract violation when the topics key is absent.
func (r *topicsResponse) Validate() error {
	if r.Topics == nil {
		return fmt.Errorf("missing topics")
	}
	return nil
}

// Request asks the configured topics webhook for fresh suggestions for the
// persona and imports whatever comes back with source "requested". The
// persona is resolved before any HTTP call so an unknown persona fails fast
// with domain.ErrNotFound.
func (s *Service) Request(ctx context.Context, input RequestInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	persona, err := s.personas.GetByID(ctx, input.PersonaID)
	if err != nil {
		return 0, fmt.Errorf("resolve persona: %w", err)
	}

	if s.cfg.TopicsURL == "" {
		return 0, domain.NewValidationError("topics_url", "topics webhook URL not configured")
	}

	payload := topicsRequest{
		TermID:      persona.ID,
		TermName:    persona.Name,
		JobTitle:    persona.JobTitle,
		Background:  persona.Background,
		Goals:       persona.Goals,
		Motivations: persona.Motivations,
		PainPoints:  persona.PainPoints,
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.TopicsTimeout)
	defer cancel()

	var resp topicsResponse
	if err := s.hooks.Post(callCtx, s.cfg.TopicsURL, payload, &resp); err != nil {
		return 0, fmt.Errorf("request topics: %w", err)
	}

	if len(resp.Topics) == 0 {
		s.log.InfoContext(ctx, "topics requested, none returned",
			slog.Int64("persona_id", input.PersonaID),
		)
		return 0, nil
	}

	inserted, err := s.Import(ctx, ImportInput{
		PersonaID: input.PersonaID,
		Topics:    resp.Topics,
		Source:    domain.SourceRequested,
	})
	if err != nil {
		return inserted, err
	}

	s.log.InfoContext(ctx, "topics requested",
		slog.Int64("persona_id", input.PersonaID),
		slog.Int("received", len(resp.Topics)),
		slog.Int("inserted_count", inserted),
	)

	return inserted, nil
}
