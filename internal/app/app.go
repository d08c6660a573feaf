// Package app wires configuration, logging, the database pool, services,
// and the HTTP server into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/ndevr/contentseer/internal/adapter/postgres"
	analysisrepo "github.com/ndevr/contentseer/internal/adapter/postgres/analysis"
	titlerepo "github.com/ndevr/contentseer/internal/adapter/postgres/blogtitle"
	personarepo "github.com/ndevr/contentseer/internal/adapter/postgres/persona"
	topicrepo "github.com/ndevr/contentseer/internal/adapter/postgres/topic"
	"github.com/ndevr/contentseer/internal/adapter/provider/perplexity"
	"github.com/ndevr/contentseer/internal/adapter/webhook"
	"github.com/ndevr/contentseer/internal/config"
	"github.com/ndevr/contentseer/internal/service/analysis"
	"github.com/ndevr/contentseer/internal/service/blogtitle"
	"github.com/ndevr/contentseer/internal/service/generation"
	"github.com/ndevr/contentseer/internal/service/persona"
	"github.com/ndevr/contentseer/internal/service/topic"
	"github.com/ndevr/contentseer/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, builds the service graph, and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	topics := topicrepo.New(pool)
	titles := titlerepo.New(pool)
	personas := personarepo.New(pool)
	analyses := analysisrepo.New(pool)

	hooks := webhook.NewClient(logger)
	provider := perplexity.NewProvider(cfg.Perplexity, logger)

	topicSvc := topic.NewService(logger, topics, titles, personas, hooks, cfg.Webhooks)
	titleSvc := blogtitle.NewService(logger, titles, topics, personas, hooks, cfg.Webhooks)
	generationSvc := generation.NewService(logger, personas, topics, titles, hooks, cfg.API, cfg.Webhooks, cfg.Features)
	analysisSvc := analysis.NewService(logger, analyses, personas, hooks, cfg.API, cfg.Webhooks, cfg.Features)
	personaSvc := persona.NewService(logger, personas, provider)

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Topics:     rest.NewTopicHandler(topicSvc, logger),
		BlogTitles: rest.NewBlogTitleHandler(titleSvc, logger),
		Generate:   rest.NewGenerateHandler(generationSvc, logger),
		Analysis:   rest.NewAnalysisHandler(analysisSvc, logger),
		Personas:   rest.NewPersonaHandler(personaSvc, logger),
	}, cfg, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
