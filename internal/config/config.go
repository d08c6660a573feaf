package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	API        APIConfig        `yaml:"api"`
	Webhooks   WebhookConfig    `yaml:"webhooks"`
	Perplexity PerplexityConfig `yaml:"perplexity"`
	Features   FeatureConfig    `yaml:"features"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout must exceed the longest webhook timeout: generation holds the
// connection open for up to WebhookConfig.GenerationTimeout before responding.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"420s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// APIConfig holds the site identity and the key:secret credential pair.
// The same pair authenticates inbound callers (Basic auth) and is embedded,
// base64-encoded, in outbound generation/analysis payloads under the
// "authorization" field; the destination services authenticate requests
// from the payload, not from HTTP headers.
type APIConfig struct {
	Key    string `yaml:"key"     env:"API_KEY"     env-required:"true"`
	Secret string `yaml:"secret"  env:"API_SECRET"  env-required:"true"`
	SiteID string `yaml:"site_id" env:"API_SITE_ID"`
}

// WebhookConfig holds the outbound webhook endpoints and per-operation
// timeouts. Calls are single-shot: one attempt, bounded by the timeout,
// no retry.
type WebhookConfig struct {
	TopicsURL            string        `yaml:"topics_url"             env:"WEBHOOK_TOPICS_URL"`
	BlogTitlesURL        string        `yaml:"blog_titles_url"        env:"WEBHOOK_BLOG_TITLES_URL"`
	ContentGenerationURL string        `yaml:"content_generation_url" env:"WEBHOOK_CONTENT_GENERATION_URL"`
	ContentAnalysisURL   string        `yaml:"content_analysis_url"   env:"WEBHOOK_CONTENT_ANALYSIS_URL"`
	TopicsTimeout        time.Duration `yaml:"topics_timeout"         env:"WEBHOOK_TOPICS_TIMEOUT"         env-default:"120s"`
	BlogTitlesTimeout    time.Duration `yaml:"blog_titles_timeout"    env:"WEBHOOK_BLOG_TITLES_TIMEOUT"    env-default:"120s"`
	GenerationTimeout    time.Duration `yaml:"generation_timeout"     env:"WEBHOOK_GENERATION_TIMEOUT"     env-default:"360s"`
	AnalysisTimeout      time.Duration `yaml:"analysis_timeout"       env:"WEBHOOK_ANALYSIS_TIMEOUT"       env-default:"120s"`
}

// PerplexityConfig holds the persona generation provider settings.
type PerplexityConfig struct {
	APIKey  string        `yaml:"api_key"  env:"PERPLEXITY_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"PERPLEXITY_BASE_URL" env-default:"https://api.perplexity.ai"`
	Model   string        `yaml:"model"    env:"PERPLEXITY_MODEL"    env-default:"sonar-pro"`
	Timeout time.Duration `yaml:"timeout"  env:"PERPLEXITY_TIMEOUT"  env-default:"120s"`
}

// FeatureConfig holds feature flags.
type FeatureConfig struct {
	EnableCreate  bool `yaml:"enable_create"  env:"FEATURE_ENABLE_CREATE"  env-default:"true"`
	EnableAnalyze bool `yaml:"enable_analyze" env:"FEATURE_ENABLE_ANALYZE" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Requested-With"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
