package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ndevr/contentseer/internal/domain"
	"github.com/ndevr/contentseer/internal/service/blogtitle"
)

// blogTitleService defines the minimal interface needed by BlogTitleHandler.
type blogTitleService interface {
	Import(ctx context.Context, input blogtitle.ImportInput) (int, error)
	Generate(ctx context.Context, input blogtitle.GenerateInput) (int, error)
	ListByTopic(ctx context.Context, input blogtitle.ListInput) ([]domain.BlogTitle, error)
	Delete(ctx context.Context, titleID int64) (bool, error)
}

// BlogTitleHandler serves blog title REST endpoints.
type BlogTitleHandler struct {
	svc blogTitleService
	log *slog.Logger
}

// NewBlogTitleHandler creates a BlogTitleHandler.
func NewBlogTitleHandler(svc blogTitleService, logger *slog.Logger) *BlogTitleHandler {
	return &BlogTitleHandler{svc: svc, log: logger.With("handler", "blog_titles")}
}

type titleWebhookRequest struct {
	TopicID int64    `json:"topic_id"`
	Titles  []string `json:"blog_titles"`
}

type titleResponse struct {
	ID         int64   `json:"id"`
	TopicID    int64   `json:"topic_id"`
	TitleText  string  `json:"title_text"`
	Source     string  `json:"source"`
	UsedDate   *string `json:"used_date"`
	UsedPostID *int64  `json:"used_post_id"`
	CreatedAt  string  `json:"created_at"`
}

func toTitleResponse(t domain.BlogTitle) titleResponse {
	resp := titleResponse{
		ID:         t.ID,
		TopicID:    t.TopicID,
		TitleText:  t.Text,
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

// Webhook handles POST /v1/blog-titles/webhook: bulk import of titles pushed
// by the external content service.
func (h *BlogTitleHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req titleWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inserted, err := h.svc.Import(r.Context(), blogtitle.ImportInput{
		TopicID: req.TopicID,
		Titles:  req.Titles,
		Source:  domain.SourceWebhook,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Success:       true,
		Message:       fmt.Sprintf("Successfully added %d new blog titles", inserted),
		InsertedCount: inserted,
	})
}

// Generate handles POST /v1/topics/{id}/blog-titles/generate: asks the blog
// titles webhook for headline suggestions and imports the result.
func (h *BlogTitleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	inserted, err := h.svc.Generate(r.Context(), blogtitle.GenerateInput{TopicID: topicID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		Success:       true,
		Message:       fmt.Sprintf("Successfully added %d new blog titles", inserted),
		InsertedCount: inserted,
	})
}

// ListByTopic handles GET /v1/topics/{id}/blog-titles.
// Used titles are included only with ?show_used=true.
func (h *BlogTitleHandler) ListByTopic(w http.ResponseWriter, r *http.Request) {
	topicID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid topic id")
		return
	}

	titles, err := h.svc.ListByTopic(r.Context(), blogtitle.ListInput{
		TopicID:     topicID,
		IncludeUsed: r.URL.Query().Get("show_used") == "true",
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]titleResponse, 0, len(titles))
	for _, t := range titles {
		out = append(out, toTitleResponse(t))
	}

	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /v1/blog-titles/{id}.
func (h *BlogTitleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	titleID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid title id")
		return
	}

	deleted, err := h.svc.Delete(r.Context(), titleID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "blog title not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
