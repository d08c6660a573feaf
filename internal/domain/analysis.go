package domain

import (
	"encoding/json"
	"time"
)

// Analysis holds the per-post content analysis scores plus the full
// structured report returned by the analysis service. One row per post;
// re-analyzing a post replaces the previous report.
type Analysis struct {
	PostID           int64           `db:"post_id"`
	ReadabilityScore int             `db:"readability_score"`
	SentimentScore   int             `db:"sentiment_score"`
	SEOScore         int             `db:"seo_score"`
	EngagementScore  int             `db:"engagement_score"`
	OverallScore     float64         `db:"overall_score"`
	Report           json.RawMessage `db:"analysis"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
