package generation

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ndevr/contentseer/internal/domain"
)

// generationRequest is the payload sent to the content generation webhook.
// The destination authenticates the call from the embedded authorization
// field rather than an HTTP header.
type generationRequest struct {
	WordpressSiteID string   `json:"wordpress_site_id"`
	Authorization   string   `json:"authorization"`
	BlogTitle       string   `json:"blog_title"`
	Topic           string   `json:"topic"`
	TermID          int64    `json:"term_id"`
	TermName        string   `json:"term_name"`
	JobTitle        string   `json:"job_title"`
	Background      string   `json:"background"`
	Goals           string   `json:"goals"`
	Motivations     string   `json:"motivations"`
	PainPoints      []string `json:"pain_points"`
}

// generationResponse is the expected reply: the id of the created post.
type generationResponse struct {
	PostID int64 `json:"post_id"`
}

// Validate reports a contract violation when no post id came back.
func (r *generationResponse) Validate() error {
	if r.PostID <= 0 {
		return fmt.Errorf("content generation failed")
	}
	return nil
}

// Generate requests a full post from the content generation webhook and
// returns the created post id. On success the source topic and blog title
// are marked used; failures there are logged but do not fail the call since
// the post already exists.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (int64, error) {
	if !s.features.EnableCreate {
		return 0, fmt.Errorf("content generation disabled: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	persona, err := s.personas.GetByID(ctx, input.PersonaID)
	if err != nil {
		return 0, fmt.Errorf("resolve persona: %w", err)
	}

	if s.cfg.ContentGenerationURL == "" {
		return 0, domain.NewValidationError("content_generation_url", "content generation webhook URL not configured")
	}

	payload := generationRequest{
		WordpressSiteID: s.api.SiteID,
		Authorization:   base64.StdEncoding.EncodeToString([]byte(s.api.Key + ":" + s.api.Secret)),
		BlogTitle:       strings.TrimSpace(input.BlogTitle),
		Topic:           strings.TrimSpace(input.Topic),
		TermID:          persona.ID,
		TermName:        persona.Name,
		JobTitle:        persona.JobTitle,
		Background:      persona.Background,
		Goals:           persona.Goals,
		Motivations:     persona.Motivations,
		PainPoints:      persona.PainPoints,
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	var resp generationResponse
	if err := s.hooks.Post(callCtx, s.cfg.ContentGenerationURL, payload, &resp); err != nil {
		return 0, fmt.Errorf("generate content: %w", err)
	}

	s.markUsed(ctx, input, resp.PostID)

	s.log.InfoContext(ctx, "content generated",
		slog.Int64("persona_id", input.PersonaID),
		slog.Int64("post_id", resp.PostID),
	)

	return resp.PostID, nil
}

// markUsed stamps the topic and blog title with the created post id.
// By-id marking is exact; the text fallback targets the oldest active
// unused row with matching text.
func (s *Service) markUsed(ctx context.Context, input GenerateInput, postID int64) {
	var err error
	if input.TopicID != nil {
		err = s.topics.MarkUsed(ctx, *input.TopicID, postID)
	} else {
		err = s.topics.MarkUsedByText(ctx, strings.TrimSpace(input.Topic), postID)
	}
	if err != nil {
		s.log.WarnContext(ctx, "failed to mark topic used",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
	}

	switch {
	case input.BlogTitleID != nil:
		err = s.titles.MarkUsed(ctx, *input.BlogTitleID, postID)
	case strings.TrimSpace(input.BlogTitle) != "":
		err = s.titles.MarkUsedByText(ctx, strings.TrimSpace(input.BlogTitle), postID)
	default:
		// no title was supplied; an empty-text match could stamp an
		// unrelated row
		return
	}
	if err != nil {
		s.log.WarnContext(ctx, "failed to mark blog title used",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()),
		)
	}
}
