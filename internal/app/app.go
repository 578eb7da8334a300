package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/studybuddy/platform/internal/answer"
	"github.com/studybuddy/platform/internal/config"
	"github.com/studybuddy/platform/internal/genai"
	"github.com/studybuddy/platform/internal/logging"
	"github.com/studybuddy/platform/internal/quiz"
	"github.com/studybuddy/platform/internal/schedule"
	"github.com/studybuddy/platform/internal/server"
	"github.com/studybuddy/platform/internal/studyplan"
)

// Application aggregates shared infrastructure (stores, services, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger
	http   *http.Server
}

// New bootstraps the logger, file stores, generation client and HTTP server.
func New(cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	var answerGen answer.Generator
	var quizGen quiz.Generator
	var planGen studyplan.Generator
	if cfg.AIConfigured() {
		client := genai.NewClient(genai.Config{
			APIKey:  cfg.AI.APIKey,
			Model:   cfg.AI.Model,
			Timeout: cfg.AI.HTTPTimeout,
		}, logger)
		answerGen, quizGen, planGen = client, client, client
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set; AI features run in fallback mode")
	}

	cache, err := answer.NewCache(filepath.Join(cfg.Storage.DataDir, cfg.Storage.CacheFile))
	if err != nil {
		return nil, fmt.Errorf("load answer cache: %w", err)
	}

	resolver := answer.NewResolver(answer.DefaultBank(), cache, answerGen, logger)
	quizSvc := quiz.NewService(quizGen, logger)
	planSvc := studyplan.NewService(planGen, logger)

	scheduleStore, err := schedule.NewStore(
		filepath.Join(cfg.Storage.DataDir, cfg.Storage.SchedulesFile),
		planSvc,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("load schedule store: %w", err)
	}

	apiServer := server.NewHTTPServer(
		cfg,
		logger,
		answer.NewHTTPHandlers(resolver, logger),
		quiz.NewHTTPHandlers(quizSvc, cfg.Quiz.DefaultQuestionCount, logger),
		schedule.NewHTTPHandlers(scheduleStore, logger),
	)

	return &Application{
		cfg:    cfg,
		logger: logger,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
