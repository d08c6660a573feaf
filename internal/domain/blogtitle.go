package domain

import "time"

// BlogTitle is a candidate headline, scoped to a topic. It follows the same
// lifecycle as Topic: active → deleted (soft delete, cascaded from the parent
// topic) and unused → used (one-way, on successful generation).
type BlogTitle struct {
	ID         int64      `db:"id"`
	TopicID    int64      `db:"topic_id"`
	Text       string     `db:"title_text"`
	Source     Source     `db:"source"`
	Status     Status     `db:"status"`
	UsedDate   *time.Time `db:"used_date"`
	UsedPostID *int64     `db:"used_post_id"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// Used reports whether the title has been consumed by content generation.
func (t BlogTitle) Used() bool { return t.UsedDate != nil }
