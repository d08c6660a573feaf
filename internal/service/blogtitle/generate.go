package blogtitle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ndevr/contentseer/internal/domain"
)

// titlesRequest is the payload sent to the blog titles webhook.
type titlesRequest struct {
	TermName  string `json:"term_name"`
	JobTitle  string `json:"job_title"`
	TopicText string `json:"topic_text"`
}

// titlesResponse is the expected reply: a list of headline suggestions.
type titlesResponse struct {
	Titles []string `json:"titles"`
}

// Validate reports a contract violation when the titles key is absent.
func (r *titlesResponse) Validate() error {
	if r.Titles == nil {
		return fmt.Errorf("missing titles")
	}
	return nil
}

// Generate asks the configured blog titles webhook for headline suggestions
// for the topic and imports whatever comes back with source "generated".
// The topic and its persona are resolved before any HTTP call.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	topic, err := s.topics.GetByID(ctx, input.TopicID)
	if err != nil {
		return 0, fmt.Errorf("resolve topic: %w", err)
	}

	persona, err := s.personas.GetByID(ctx, topic.PersonaID)
	if err != nil {
		return 0, fmt.Errorf("resolve persona: %w", err)
	}

	if s.cfg.BlogTitlesURL == "" {
		return 0, domain.NewValidationError("blog_titles_url", "blog titles webhook URL not configured")
	}

	payload := titlesRequest{
		TermName:  persona.Name,
		JobTitle:  persona.JobTitle,
		TopicText: topic.Text,
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.BlogTitlesTimeout)
	defer cancel()

	var resp titlesResponse
	if err := s.hooks.Post(callCtx, s.cfg.BlogTitlesURL, payload, &resp); err != nil {
		return 0, fmt.Errorf("generate blog titles: %w", err)
	}

	if len(resp.Titles) == 0 {
		s.log.InfoContext(ctx, "blog titles generated, none returned",
			slog.Int64("topic_id", input.TopicID),
		)
		return 0, nil
	}

	inserted, err := s.Import(ctx, ImportInput{
		TopicID: input.TopicID,
		Titles:  resp.Titles,
		Source:  domain.SourceGenerated,
	})
	if err != nil {
		return inserted, err
	}

	s.log.InfoContext(ctx, "blog titles generated",
		slog.Int64("topic_id", input.TopicID),
		slog.Int("received", len(resp.Titles)),
		slog.Int("inserted_count", inserted),
	)

	return inserted, nil
}
