// Package blogtitle implements the BlogTitle store using PostgreSQL.
// Blog titles are leaf entities under a topic and share the topic
// lifecycle: soft delete and the one-way "used" transition.
package blogtitle

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/ndevr/contentseer/internal/adapter/postgres"
	"github.com/ndevr/contentseer/internal/domain"
)

var columns = []string{
	"id", "topic_id", "title_text", "source", "status",
	"used_date", "used_post_id", "created_at", "updated_at",
}

// Repo provides blog title persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new blog title repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const existsActiveSQL = `
SELECT id FROM blog_titles
WHERE topic_id = $1 AND title_text = $2 AND status = 'active'`

const insertSQL = `
INSERT INTO blog_titles (topic_id, title_text, source, status)
VALUES ($1, $2, $3, 'active')`

// InsertIfAbsent inserts a new active title unless an active row with the
// same (topic_id, text) already exists. Returns whether an insert occurred.
func (r *Repo) InsertIfAbsent(ctx context.Context, topicID int64, text string, source domain.Source) (bool, error) {
	var existingID int64
	err := r.q.QueryRow(ctx, existsActiveSQL, topicID, text).Scan(&existingID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, postgres.MapError(err, "blog_title", topicID)
	}

	if _, err := r.q.Exec(ctx, insertSQL, topicID, text, source); err != nil {
		return false, postgres.MapError(err, "blog_title", topicID)
	}

	return true, nil
}

// ListByTopic returns active titles for a topic, unused first, then by
// creation time descending. When includeUsed is false, used titles are
// excluded entirely.
func (r *Repo) ListByTopic(ctx context.Context, topicID int64, includeUsed bool) ([]domain.BlogTitle, error) {
	builder := sq.Select(columns...).
		From("blog_titles").
		Where(sq.Eq{"topic_id": topicID, "status": domain.StatusActive}).
		OrderBy("used_date IS NULL DESC", "created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if !includeUsed {
		builder = builder.Where("used_date IS NULL")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list blog titles query: %w", err)
	}

	titles := []domain.BlogTitle{}
	if err := pgxscan.Select(ctx, r.q, &titles, query, args...); err != nil {
		return nil, postgres.MapError(err, "blog_title", topicID)
	}

	return titles, nil
}

const getByIDSQL = `
SELECT id, topic_id, title_text, source, status,
       used_date, used_post_id, created_at, updated_at
FROM blog_titles
WHERE id = $1`

// GetByID returns a blog title by primary key regardless of status.
// Returns domain.ErrNotFound if the title does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.BlogTitle, error) {
	var t domain.BlogTitle
	if err := pgxscan.Get(ctx, r.q, &t, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "blog_title", id)
	}
	return &t, nil
}

const softDeleteSQL = `
UPDATE blog_titles SET status = 'deleted', updated_at = now()
WHERE id = $1 AND status = 'active'`

// SoftDelete marks the title deleted. Returns false (without error) when the
// update affects no rows.
func (r *Repo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "blog_title", id)
	}
	return tag.RowsAffected() > 0, nil
}

const softDeleteByTopicSQL = `
UPDATE blog_titles SET status = 'deleted', updated_at = now()
WHERE topic_id = $1 AND status = 'active'`

// SoftDeleteByTopic marks every active title under the topic deleted and
// returns how many rows changed. Used to cascade a topic soft delete.
func (r *Repo) SoftDeleteByTopic(ctx context.Context, topicID int64) (int64, error) {
	tag, err := r.q.Exec(ctx, softDeleteByTopicSQL, topicID)
	if err != nil {
		return 0, postgres.MapError(err, "blog_title", topicID)
	}
	return tag.RowsAffected(), nil
}

const markUsedSQL = `
UPDATE blog_titles SET used_date = now(), used_post_id = $2, updated_at = now()
WHERE id = $1 AND status = 'active' AND used_date IS NULL`

// MarkUsed records that content generation consumed the title. The used_date
// guard makes the transition one-way; marking an already-used row is a no-op.
func (r *Repo) MarkUsed(ctx context.Context, id, postID int64) error {
	if _, err := r.q.Exec(ctx, markUsedSQL, id, postID); err != nil {
		return postgres.MapError(err, "blog_title", id)
	}
	return nil
}

const markUsedByTextSQL = `
UPDATE blog_titles SET used_date = now(), used_post_id = $2, updated_at = now()
WHERE id = (
    SELECT id FROM blog_titles
    WHERE title_text = $1 AND status = 'active' AND used_date IS NULL
    ORDER BY created_at
    LIMIT 1
)`

// MarkUsedByText marks the oldest active, unused title with the given text.
// MarkUsed by id is preferred; see the topic store for the rationale.
func (r *Repo) MarkUsedByText(ctx context.Context, text string, postID int64) error {
	if _, err := r.q.Exec(ctx, markUsedByTextSQL, text, postID); err != nil {
		return postgres.MapError(err, "blog_title", 0)
	}
	return nil
}
