// Package persona implements the read-mostly Persona store using PostgreSQL.
// Rows are written only by persona import; the idea lifecycle reads them.
package persona

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/ndevr/contentseer/internal/adapter/postgres"
	"github.com/ndevr/contentseer/internal/domain"
)

// Repo provides persona persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new persona repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const getByIDSQL = `
SELECT id, job_title, name, background, goals, motivations, pain_points,
       created_at, updated_at
FROM personas
WHERE id = $1`

// GetByID returns a persona by primary key.
// Returns domain.ErrNotFound if the persona does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	var p domain.Persona
	if err := pgxscan.Get(ctx, r.q, &p, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "persona", id)
	}
	return &p, nil
}

const listSQL = `
SELECT id, job_title, name, background, goals, motivations, pain_points,
       created_at, updated_at
FROM personas
ORDER BY job_title`

// List returns all personas ordered by job title.
// Returns an empty slice (not nil) when no personas exist.
func (r *Repo) List(ctx context.Context) ([]domain.Persona, error) {
	personas := []domain.Persona{}
	if err := pgxscan.Select(ctx, r.q, &personas, listSQL); err != nil {
		return nil, postgres.MapError(err, "persona", 0)
	}
	return personas, nil
}

const upsertSQL = `
INSERT INTO personas (job_title, name, background, goals, motivations, pain_points)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (job_title) DO UPDATE SET
    name        = EXCLUDED.name,
    background  = EXCLUDED.background,
    goals       = EXCLUDED.goals,
    motivations = EXCLUDED.motivations,
    pain_points = EXCLUDED.pain_points,
    updated_at  = now()
RETURNING id`

// Upsert inserts a persona or, when one with the same job title exists,
// refreshes its attributes. Returns the persona id either way.
func (r *Repo) Upsert(ctx context.Context, p *domain.Persona) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx, upsertSQL,
		p.JobTitle, p.Name, p.Background, p.Goals, p.Motivations, p.PainPoints,
	).Scan(&id)
	if err != nil {
		return 0, postgres.MapError(err, "persona", 0)
	}
	return id, nil
}
