package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ndevr/contentseer/internal/service/generation"
)

// generationService defines the minimal interface needed by GenerateHandler.
type generationService interface {
	Generate(ctx context.Context, input generation.GenerateInput) (int64, error)
}

// GenerateHandler serves the content generation endpoint.
type GenerateHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc generationService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate")}
}

type generateRequest struct {
	PersonaID   int64  `json:"persona_id"`
	Topic       string `json:"topic"`
	BlogTitle   string `json:"blog_title"`
	TopicID     *int64 `json:"topic_id,omitempty"`
	BlogTitleID *int64 `json:"blog_title_id,omitempty"`
}

type generateResponse struct {
	Success bool  `json:"success"`
	PostID  int64 `json:"post_id"`
}

// Generate handles POST /v1/generate: requests a full post from the content
// generation webhook and returns the created post id.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	postID, err := h.svc.Generate(r.Context(), generation.GenerateInput{
		PersonaID:   req.PersonaID,
		Topic:       req.Topic,
		BlogTitle:   req.BlogTitle,
		TopicID:     req.TopicID,
		BlogTitleID: req.BlogTitleID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success: true,
		PostID:  postID,
	})
}
