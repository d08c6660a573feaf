package analysis

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/ndevr/contentseer/internal/domain"
)

// analyzeRequest is the payload sent to the content analysis webhook. The
// post body is sent both as raw HTML and as stripped plain text so the
// destination can score structure and prose independently.
type analyzeRequest struct {
	WordpressID     int64    `json:"wordpress_id"`
	WordpressSiteID string   `json:"wordpress_site_id"`
	Authorization   string   `json:"authorization"`
	Title           string   `json:"title"`
	ContentHTML     string   `json:"content_html"`
	ContentText     string   `json:"content_text"`
	TermID          int64    `json:"term_id"`
	TermName        string   `json:"term_name"`
	JobTitle        string   `json:"job_title"`
	Background      string   `json:"background"`
	Goals           string   `json:"goals"`
	Motivations     string   `json:"motivations"`
	PainPoints      []string `json:"pain_points"`
}

// analyzeResponse is the expected reply: four 0-100 scores plus the full
// structured report.
type analyzeResponse struct {
	ReadabilityScore int             `json:"readability_score"`
	SentimentScore   int             `json:"sentiment_score"`
	SEOScore         int             `json:"seo_score"`
	EngagementScore  int             `json:"engagement_score"`
	Analysis         json.RawMessage `json:"analysis"`
}

// Validate reports a contract violation when the reply carries no report.
func (r *analyzeResponse) Validate() error {
	if len(r.Analysis) == 0 {
		return fmt.Errorf("missing analysis")
	}
	return nil
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripTags reduces an HTML fragment to plain text: tags removed,
// whitespace runs collapsed to single spaces.
func stripTags(html string) string {
	text := tagPattern.ReplaceAllString(html, " ")
	return strings.Join(strings.Fields(text), " ")
}

// Analyze sends the post to the content analysis webhook, stores the scores
// it returns, and hands back the stored record. The persona is resolved
// before any HTTP call.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (*domain.Analysis, error) {
	if !s.features.EnableAnalyze {
		return nil, fmt.Errorf("content analysis disabled: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	persona, err := s.personas.GetByID(ctx, input.PersonaID)
	if err != nil {
		return nil, fmt.Errorf("resolve persona: %w", err)
	}

	if s.cfg.ContentAnalysisURL == "" {
		return nil, domain.NewValidationError("content_analysis_url", "content analysis webhook URL not configured")
	}

	payload := analyzeRequest{
		WordpressID:     input.PostID,
		WordpressSiteID: s.api.SiteID,
		Authorization:   base64.StdEncoding.EncodeToString([]byte(s.api.Key + ":" + s.api.Secret)),
		Title:           strings.TrimSpace(input.Title),
		ContentHTML:     input.Content,
		ContentText:     stripTags(input.Content),
		TermID:          persona.ID,
		TermName:        persona.Name,
		JobTitle:        persona.JobTitle,
		Background:      persona.Background,
		Goals:           persona.Goals,
		Motivations:     persona.Motivations,
		PainPoints:      persona.PainPoints,
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.AnalysisTimeout)
	defer cancel()

	var resp analyzeResponse
	if err := s.hooks.Post(callCtx, s.cfg.ContentAnalysisURL, payload, &resp); err != nil {
		return nil, fmt.Errorf("analyze content: %w", err)
	}

	record := &domain.Analysis{
		PostID:           input.PostID,
		ReadabilityScore: resp.ReadabilityScore,
		SentimentScore:   resp.SentimentScore,
		SEOScore:         resp.SEOScore,
		EngagementScore:  resp.EngagementScore,
		OverallScore:     overallScore(resp),
		Report:           resp.Analysis,
	}

	if err := s.analyses.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("store analysis: %w", err)
	}

	s.log.InfoContext(ctx, "content analyzed",
		slog.Int64("post_id", input.PostID),
		slog.Float64("overall_score", record.OverallScore),
	)

	return record, nil
}

func overallScore(r analyzeResponse) float64 {
	sum := r.ReadabilityScore + r.SentimentScore + r.SEOScore + r.EngagementScore
	return float64(sum) / 4
}
