// Package webhook implements the outbound JSON webhook client.
//
// Every call is single-shot: one POST, bounded by the caller's context
// deadline, no retry and no backoff. Failures are classified into three
// domain sentinels so callers can tell where the call broke down:
// transport (no HTTP response), response (non-2xx or undecodable body),
// and contract (decoded body missing expected keys).
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ndevr/contentseer/internal/domain"
)

const userAgent = "ContentSeer/1.0"

// Client posts JSON payloads to configured webhook URLs.
type Client struct {
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a webhook client. Deadlines are per-call via context,
// so the underlying http.Client carries no timeout of its own.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		log:        logger.With("adapter", "webhook"),
	}
}

// Validator is implemented by response types that can check their own
// contract (presence of expected keys) after decoding.
type Validator interface {
	Validate() error
}

// Post serializes payload to JSON, POSTs it to url, and decodes the JSON
// response into out. If out implements Validator, the decoded response is
// checked and a violation is reported as a contract error.
func (c *Client) Post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.log.DebugContext(ctx, "webhook request", slog.String("url", url))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "webhook transport failure",
			slog.String("url", url), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", domain.ErrWebhookTransport, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", domain.ErrWebhookResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnContext(ctx, "webhook bad status",
			slog.String("url", url), slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: unexpected status %d", domain.ErrWebhookResponse, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%w: decode json: %v", domain.ErrWebhookResponse, err)
		}
		if v, ok := out.(Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("%w: %v", domain.ErrWebhookContract, err)
			}
		}
	}

	c.log.DebugContext(ctx, "webhook response",
		slog.String("url", url), slog.Int("status", resp.StatusCode))

	return nil
}
