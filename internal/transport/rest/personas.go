package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ndevr/contentseer/internal/domain"
)

// personaService defines the minimal interface needed by PersonaHandler.
type personaService interface {
	Get(ctx context.Context, id int64) (*domain.Persona, error)
	List(ctx context.Context) ([]domain.Persona, error)
	GenerateAndImport(ctx context.Context) ([]domain.Persona, error)
}

// PersonaHandler serves persona REST endpoints.
type PersonaHandler struct {
	svc personaService
	log *slog.Logger
}

// NewPersonaHandler creates a PersonaHandler.
func NewPersonaHandler(svc personaService, logger *slog.Logger) *PersonaHandler {
	return &PersonaHandler{svc: svc, log: logger.With("handler", "personas")}
}

type personaResponse struct {
	ID          int64    `json:"id"`
	JobTitle    string   `json:"job_title"`
	Name        string   `json:"name"`
	Background  string   `json:"background"`
	Goals       string   `json:"goals"`
	Motivations string   `json:"motivations"`
	PainPoints  []string `json:"pain_points"`
}

func toPersonaResponse(p domain.Persona) personaResponse {
	return personaResponse{
		ID:          p.ID,
		JobTitle:    p.JobTitle,
		Name:        p.Name,
		Background:  p.Background,
		Goals:       p.Goals,
		Motivations: p.Motivations,
		PainPoints:  p.PainPoints,
	}
}

// List handles GET /v1/personas.
func (h *PersonaHandler) List(w http.ResponseWriter, r *http.Request) {
	personas, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]personaResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, toPersonaResponse(p))
	}

	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /v1/personas/{id}.
func (h *PersonaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid persona id")
		return
	}

	persona, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPersonaResponse(*persona))
}

// Generate handles POST /v1/personas/generate: regenerates the persona set
// through the AI provider and upserts the result.
func (h *PersonaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	personas, err := h.svc.GenerateAndImport(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]personaResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, toPersonaResponse(p))
	}

	writeJSON(w, http.StatusOK, out)
}
