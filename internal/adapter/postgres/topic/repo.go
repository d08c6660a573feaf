// Package topic implements the Topic store using PostgreSQL.
// It provides idempotent bulk-import inserts, persona-scoped listing,
// soft delete, and the one-way "used" transition.
package topic

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
	"id", "persona_id", "topic_text", "source", "status",
	"used_date", "used_post_id", "created_at", "updated_at",
}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new topic repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const existsActiveSQL = `
SELECT id FROM topics
WHERE persona_id = $1 AND topic_text = $2 AND status = 'active'`

const insertSQL = `
INSERT INTO topics (persona_id, topic_text, source, status)
VALUES ($1, $2, $3, 'active')`

// InsertIfAbsent inserts a new active topic unless an active row with the
// same (persona_id, text) already exists. Returns whether an insert occurred.
// The check and the insert are two statements, not a transaction. Acceptable
// at the admin-operation volumes this store serves.
func (r *Repo) InsertIfAbsent(ctx context.Context, personaID int64, text string, source domain.Source) (bool, error) {
	var existingID int64
	err := r.q.QueryRow(ctx, existsActiveSQL, personaID, text).Scan(&existingID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, postgres.MapError(err, "topic", personaID)
	}

	if _, err := r.q.Exec(ctx, insertSQL, personaID, text, source); err != nil {
		return false, postgres.MapError(err, "topic", personaID)
	}

	return true, nil
}

// ListByPersona returns active topics for a persona, unused first, then by
// creation time descending. When includeUsed is false, used topics are
// excluded entirely.
func (r *Repo) ListByPersona(ctx context.Context, personaID int64, includeUsed bool) ([]domain.Topic, error) {
	builder := sq.Select(columns...).
		From("topics").
		Where(sq.Eq{"persona_id": personaID, "status": domain.StatusActive}).
		OrderBy("used_date IS NULL DESC", "created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if !includeUsed {
		builder = builder.Where("used_date IS NULL")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics query: %w", err)
	}

	topics := []domain.Topic{}
	if err := pgxscan.Select(ctx, r.q, &topics, query, args...); err != nil {
		return nil, postgres.MapError(err, "topic", personaID)
	}

	return topics, nil
}

const getByIDSQL = `
SELECT id, persona_id, topic_text, source, status,
       used_date, used_post_id, created_at, updated_at
FROM topics
WHERE id = $1`

// GetByID returns a topic by primary key regardless of status.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Topic, error) {
	var t domain.Topic
	if err := pgxscan.Get(ctx, r.q, &t, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return &t, nil
}

const softDeleteSQL = `
UPDATE topics SET status = 'deleted', updated_at = now()
WHERE id = $1 AND status = 'active'`

// SoftDelete marks the topic deleted. Returns false (without error) when the
// update affects no rows. Cascading the delete to blog titles is the topic
// service's responsibility.
func (r *Repo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, softDeleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "topic", id)
	}
	return tag.RowsAffected() > 0, nil
}

const markUsedSQL = `
UPDATE topics SET used_date = now(), used_post_id = $2, updated_at = now()
WHERE id = $1 AND status = 'active' AND used_date IS NULL`

// MarkUsed records that content generation consumed the topic. The used_date
// guard makes the transition one-way: an already-used row is never
// overwritten, and marking it again is a no-op.
func (r *Repo) MarkUsed(ctx context.Context, id, postID int64) error {
	if _, err := r.q.Exec(ctx, markUsedSQL, id, postID); err != nil {
		return postgres.MapError(err, "topic", id)
	}
	return nil
}

const markUsedByTextSQL = `
UPDATE topics SET used_date = now(), used_post_id = $2, updated_at = now()
WHERE id = (
    SELECT id FROM topics
    WHERE topic_text = $1 AND status = 'active' AND used_date IS NULL
    ORDER BY created_at
    LIMIT 1
)`

// MarkUsedByText marks the oldest active, unused topic with the given text.
// Kept for callers that did not carry the topic id through the generation
// round trip; ambiguous when personas share identical topic text, so MarkUsed
// is preferred.
func (r *Repo) MarkUsedByText(ctx context.Context, text string, postID int64) error {
	if _, err := r.q.Exec(ctx, markUsedByTextSQL, text, postID); err != nil {
		return postgres.MapError(err, "topic", 0)
	}
	return nil
}
