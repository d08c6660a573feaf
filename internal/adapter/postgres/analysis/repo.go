// Package analysis implements the content analysis store using PostgreSQL.
// One row per analyzed post; saving again replaces the previous report.
package analysis

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/ndevr/contentseer/internal/adapter/postgres"
	"github.com/ndevr/contentseer/internal/domain"
)

// Repo provides analysis persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new analysis repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const upsertSQL = `
INSERT INTO content_analyses (
    post_id, readability_score, sentiment_score, seo_score,
    engagement_score, overall_score, analysis
)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (post_id) DO UPDATE SET
    readability_score = EXCLUDED.readability_score,
    sentiment_score   = EXCLUDED.sentiment_score,
    seo_score         = EXCLUDED.seo_score,
    engagement_score  = EXCLUDED.engagement_score,
    overall_score     = EXCLUDED.overall_score,
    analysis          = EXCLUDED.analysis,
    updated_at        = now()`

// Upsert stores the analysis for a post, replacing any previous report.
func (r *Repo) Upsert(ctx context.Context, a *domain.Analysis) error {
	_, err := r.q.Exec(ctx, upsertSQL,
		a.PostID, a.ReadabilityScore, a.SentimentScore, a.SEOScore,
		a.EngagementScore, a.OverallScore, a.Report,
	)
	if err != nil {
		return postgres.MapError(err, "analysis", a.PostID)
	}
	return nil
}

const getByPostIDSQL = `
SELECT post_id, readability_score, sentiment_score, seo_score,
       engagement_score, overall_score, analysis, created_at, updated_at
FROM content_analyses
WHERE post_id = $1`

// GetByPostID returns the stored analysis for a post.
// Returns domain.ErrNotFound if the post has never been analyzed.
func (r *Repo) GetByPostID(ctx context.Context, postID int64) (*domain.Analysis, error) {
	var a domain.Analysis
	if err := pgxscan.Get(ctx, r.q, &a, getByPostIDSQL, postID); err != nil {
		return nil, postgres.MapError(err, "analysis", postID)
	}
	return &a, nil
}
