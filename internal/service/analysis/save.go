package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ndevr/contentseer/internal/domain"
)

// SaveInput holds an externally produced analysis report to store verbatim.
// Scores are read from the report's top-level fields when present.
type SaveInput struct {
	PostID int64
	Report json.RawMessage
}

// Validate checks all fields.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError
	if i.PostID <= 0 {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if len(i.Report) == 0 || !json.Valid(i.Report) {
		errs = append(errs, domain.FieldError{Field: "analysis", Message: "must be a JSON object"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Save stores an analysis report pushed by the analysis service itself,
// replacing any earlier report for the post.
func (s *Service) Save(ctx context.Context, input SaveInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	var scores struct {
		ReadabilityScore int `json:"readability_score"`
		SentimentScore   int `json:"sentiment_score"`
		SEOScore         int `json:"seo_score"`
		EngagementScore  int `json:"engagement_score"`
	}
	if err := json.Unmarshal(input.Report, &scores); err != nil {
		return domain.NewValidationError("analysis", "must be a JSON object")
	}

	sum := scores.ReadabilityScore + scores.SentimentScore + scores.SEOScore + scores.EngagementScore
	record := &domain.Analysis{
		PostID:           input.PostID,
		ReadabilityScore: scores.ReadabilityScore,
		SentimentScore:   scores.SentimentScore,
		SEOScore:         scores.SEOScore,
		EngagementScore:  scores.EngagementScore,
		OverallScore:     float64(sum) / 4,
		Report:           input.Report,
	}

	if err := s.analyses.Upsert(ctx, record); err != nil {
		return fmt.Errorf("store analysis: %w", err)
	}

	s.log.InfoContext(ctx, "analysis saved",
		slog.Int64("post_id", input.PostID),
	)

	return nil
}

// Get returns the stored analysis for a post.
func (s *Service) Get(ctx context.Context, postID int64) (*domain.Analysis, error) {
	if postID <= 0 {
		return nil, domain.NewValidationError("post_id", "required")
	}

	record, err := s.analyses.GetByPostID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}

	return record, nil
}
