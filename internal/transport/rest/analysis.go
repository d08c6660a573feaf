package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ndevr/contentseer/internal/domain"
	"github.com/ndevr/contentseer/internal/service/analysis"
)

// analysisService defines the minimal interface needed by AnalysisHandler.
type analysisService interface {
	Analyze(ctx context.Context, input analysis.AnalyzeInput) (*domain.Analysis, error)
	Save(ctx context.Context, input analysis.SaveInput) error
	Get(ctx context.Context, postID int64) (*domain.Analysis, error)
}

// AnalysisHandler serves content analysis REST endpoints.
type AnalysisHandler struct {
	svc analysisService
	log *slog.Logger
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(svc analysisService, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, log: logger.With("handler", "analysis")}
}

type analyzeRequest struct {
	PostID    int64  `json:"post_id"`
	PersonaID int64  `json:"persona_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type saveAnalysisRequest struct {
	Analysis json.RawMessage `json:"analysis"`
}

type analysisResponse struct {
	PostID           int64           `json:"post_id"`
	ReadabilityScore int             `json:"readability_score"`
	SentimentScore   int             `json:"sentiment_score"`
	SEOScore         int             `json:"seo_score"`
	EngagementScore  int             `json:"engagement_score"`
	OverallScore     float64         `json:"overall_score"`
	Analysis         json.RawMessage `json:"analysis"`
	UpdatedAt        string          `json:"updated_at"`
}

func toAnalysisResponse(a *domain.Analysis) analysisResponse {
	return analysisResponse{
		PostID:           a.PostID,
		ReadabilityScore: a.ReadabilityScore,
		SentimentScore:   a.SentimentScore,
		SEOScore:         a.SEOScore,
		EngagementScore:  a.EngagementScore,
		OverallScore:     a.OverallScore,
		Analysis:         a.Report,
		UpdatedAt:        a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Analyze handles POST /v1/analyze: sends the post to the analysis webhook
// and stores the returned scores.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.svc.Analyze(r.Context(), analysis.AnalyzeInput{
		PostID:    req.PostID,
		PersonaID: req.PersonaID,
		Title:     req.Title,
		Content:   req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(record))
}

// Save handles POST /v1/analysis/{id}: stores a report pushed by the
// analysis service for a post.
func (h *AnalysisHandler) Save(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req saveAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Save(r.Context(), analysis.SaveInput{
		PostID: postID,
		Report: req.Analysis,
	}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Get handles GET /v1/analysis/{id}: returns the stored analysis for a post.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	record, err := h.svc.Get(r.Context(), postID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnalysisResponse(record))
}
