package domain

import "time"

// Topic is a candidate subject for a piece of content, scoped to a persona.
//
// UsedDate and UsedPostID are either both nil or both set: they are written
// together exactly once, when content generation consumes the topic. The
// transition is one-way; a used topic never becomes unused again.
type Topic struct {
	ID         int64      `db:"id"`
	PersonaID  int64      `db:"persona_id"`
	Text       string     `db:"topic_text"`
	Source     Source     `db:"source"`
	Status     Status     `db:"status"`
	UsedDate   *time.Time `db:"used_date"`
	UsedPostID *int64     `db:"used_post_id"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// Used reports whether the topic has been consumed by content generation.
func (t Topic) Used() bool { return t.UsedDate != nil }
