package config

import (
	"fmt"
	"net/url"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.API.Key == "" || c.API.Secret == "" {
		return fmt.Errorf("api.key and api.secret are required")
	}

	if err := c.Webhooks.validate(); err != nil {
		return fmt.Errorf("webhooks: %w", err)
	}

	if c.Perplexity.Timeout <= 0 {
		return fmt.Errorf("perplexity.timeout must be > 0 (got %v)", c.Perplexity.Timeout)
	}

	// a write deadline shorter than the slowest webhook call would reset
	// the connection before the response is written
	if c.Server.WriteTimeout > 0 {
		if longest := c.Webhooks.longestTimeout(); c.Server.WriteTimeout <= longest {
			return fmt.Errorf("server.write_timeout (%v) must exceed the longest webhook timeout (%v)",
				c.Server.WriteTimeout, longest)
		}
	}

	return nil
}

func (w *WebhookConfig) longestTimeout() time.Duration {
	longest := w.TopicsTimeout
	for _, d := range []time.Duration{w.BlogTitlesTimeout, w.GenerationTimeout, w.AnalysisTimeout} {
		if d > longest {
			longest = d
		}
	}
	return longest
}

func (w *WebhookConfig) validate() error {
	urls := map[string]string{
		"topics_url":             w.TopicsURL,
		"blog_titles_url":        w.BlogTitlesURL,
		"content_generation_url": w.ContentGenerationURL,
		"content_analysis_url":   w.ContentAnalysisURL,
	}
	for name, raw := range urls {
		if raw == "" {
			continue // unset endpoints disable the corresponding operation
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s: invalid URL %q", name, raw)
		}
	}

	timeouts := map[string]time.Duration{
		"topics_timeout":      w.TopicsTimeout,
		"blog_titles_timeout": w.BlogTitlesTimeout,
		"generation_timeout":  w.GenerationTimeout,
		"analysis_timeout":    w.AnalysisTimeout,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be > 0 (got %v)", name, d)
		}
	}

	return nil
}
