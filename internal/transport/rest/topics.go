package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ndevr/contentseer/internal/domain"
	"github.com/ndevr/contentseer/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	Import(ctx context.Context, input topic.ImportInput) (int, error)
	Request(ctx context.Context, input topic.RequestInput) (int, error)
	ListByPersona(ctx context.Context, input topic.ListInput) ([]domain.Topic, error)
	Delete(ctx context.Context, topicID int64) (bool, error)
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc topicService
	log *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(svc topicService, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, log: logger.With("handler", "topics")}
}

type topicWebhookRequest struct {
	PersonaID int64    `json:"persona_id"`
	Topics    []string `json:"topics"`
}

type topicRequestRequest struct {
	PersonaID int64 `json:"persona_id"`
}

// webhookResponse is the acknowledgement returned to inbound webhook calls
// and the topic request endpoint.
type webhookResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	InsertedCount int    `json:"inserted_count"`
}

type topicResponse struct {
	ID         int64   `json:"id"`
	PersonaID  int64   `json:"persona_id"`
	TopicText  string  `json:"topic_text"`
	Source     string  `json:"source"`
	UsedDate   *string `json:"used_date"`
	UsedPostID *int64  `json:"used_post_id"`
	CreatedAt  string  `json:"created_at"`
}

func toTopicResponse(t domain.Topic) topicResponse {
	resp := topicResponse{
		ID:         t.ID,
		PersonaID:  t.PersonaID,
		TopicText:  t.Text,
		Source:     t.Source.String(),
		UsedPostID: t.UsedPostID,
		CreatedAt:  t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if t.UsedDate != nil {
		s := t.UsedDate.Format("2006-01-02 15:04:05")
		resp.UsedDate = &s
	}
	return resp
}

// Webhook handles POST /v1/topics/webhook: bulk import of topics pushed by
// the external content service.
func (h *TopicHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req topicWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inserted, err := h.svc.Import(r.Context(), topic.ImportInput{
		PersonaID: req.PersonaID,
		Topics:    req.Topics,
		Source:    domain.SourceWebhook,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Success:       true,
		Message:       fmt.Sprintf("Successfully added %d new topics", inserted),
		InsertedCount: inserted,
	})
}

// Request handles POST /v1/topics/request: asks the topics webhook for fresh
// suggestions for a persona and imports the result.
func (h *TopicHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req topicRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inserted, err := h.svc.Request(r.Context(), topic.RequestInput{PersonaID: req.PersonaID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Success:       true,
		Message:       fmt.Sprintf("Successfully added %d new topics", inserted),
		InsertedCount: inserted,
	})
}

// ListByPersona handles GET /v1/personas/{id}/topics.
// Used topics are included only with ?show_used=true.
func (h *TopicHandler) ListByPersona(w http.ResponseWriter, r *http.Request) {
	personaID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid persona id")
		return
	}

	topics, err := h.svc.ListByPersona(r.Context(), topic.ListInput{
		PersonaID:   personaID,
		IncludeUsed: r.URL.Query().Get("show_used") == "true",
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}

	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /v1/topics/{id}: soft-deletes the topic and all of
// its blog titles.
func (h *TopicHandler) Delete(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	deleted, err := h.svc.Delete(r.Context(), topicID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "topic not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// pathID parses an int64 path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
