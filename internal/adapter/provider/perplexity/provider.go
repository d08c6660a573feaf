// Package perplexity generates audience personas via the Perplexity
// chat completions API with a structured JSON-schema response format.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"

	"github.com/ndevr/contentseer/internal/config"
	"github.com/ndevr/contentseer/internal/domain"
)

const systemPrompt = "Output only valid JSON. Format three personas (Persona 1, Persona 2, Persona 3) " +
	"as a JSON object with fields: job_title, name, background, pain_points (array), goals, and motivations."

const userPrompt = "Based on the company's website and services, provide the three personas."

// Provider calls the Perplexity API to generate personas.
type Provider struct {
	cfg        config.PerplexityConfig
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from configuration.
func NewProvider(cfg config.PerplexityConfig, logger *slog.Logger) *Provider {
	return &Provider{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "perplexity"),
	}
}

// GeneratePersonas asks the model for three personas and returns them in
// schema order (persona_1, persona_2, persona_3).
func (p *Provider) GeneratePersonas(ctx context.Context) ([]domain.Persona, error) {
	if p.cfg.APIKey == "" {
		return nil, fmt.Errorf("perplexity: %w: api key not configured", domain.ErrValidation)
	}

	payload := map[string]any{
		"model": p.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"response_format": map[string]any{
			"type":        "json_schema",
			"json_schema": personaSchema(),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("perplexity: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("perplexity: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	p.log.DebugContext(ctx, "perplexity request", slog.String("model", p.cfg.Model))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perplexity: request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("perplexity: unexpected status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("perplexity: read body: %w", err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("perplexity: decode json: %w", err)
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("perplexity: empty completion")
	}

	// The completion content is itself a JSON document:
	// {"persona_1": {...}, "persona_2": {...}, "persona_3": {...}}.
	var keyed map[string]apiPersona
	if err := json.Unmarshal([]byte(envelope.Choices[0].Message.Content), &keyed); err != nil {
		return nil, fmt.Errorf("perplexity: decode completion content: %w", err)
	}

	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	personas := make([]domain.Persona, 0, len(keyed))
	for _, k := range keys {
		ap := keyed[k]
		if ap.JobTitle == "" {
			continue
		}
		personas = append(personas, domain.Persona{
			JobTitle:    ap.JobTitle,
			Name:        ap.Name,
			Background:  ap.Background,
			Goals:       ap.Goals,
			Motivations: ap.Motivations,
			PainPoints:  ap.PainPoints,
		})
	}

	p.log.InfoContext(ctx, "perplexity personas generated", slog.Int("count", len(personas)))

	return personas, nil
}

// personaSchema is the json_schema response format constraining the model
// to three persona objects.
func personaSchema() map[string]any {
	personaObject := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"job_title":  map[string]any{"type": "string"},
			"name":       map[string]any{"type": "string"},
			"background": map[string]any{"type": "string"},
			"pain_points": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"goals":       map[string]any{"type": "string"},
			"motivations": map[string]any{"type": "string"},
		},
		"required": []string{"job_title", "name", "background", "pain_points", "motivations"},
	}

	return map[string]any{
		"schema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"persona_1": personaObject,
				"persona_2": personaObject,
				"persona_3": personaObject,
			},
			"required": []string{"persona_1", "persona_2", "persona_3"},
		},
	}
}
