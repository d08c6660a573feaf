package domain

import "time"

// Persona is a target-audience profile content is tailored toward.
// Read-only from the idea lifecycle's perspective; rows are written only by
// persona import.
type Persona struct {
	ID          int64     `db:"id"`
	JobTitle    string    `db:"job_title"`
	Name        string    `db:"name"`
	Background  string    `db:"background"`
	Goals       string    `db:"goals"`
	Motivations string    `db:"motivations"`
	PainPoints  []string  `db:"pain_points"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
