package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/robdix/spanish-reading/internal/adapter/postgres"
	"github.com/robdix/spanish-reading/internal/adapter/postgres/dailystat"
	"github.com/robdix/spanish-reading/internal/adapter/postgres/goal"
	"github.com/robdix/spanish-reading/internal/adapter/postgres/settings"
	storyrepo "github.com/robdix/spanish-reading/internal/adapter/postgres/story"
	vocabrepo "github.com/robdix/spanish-reading/internal/adapter/postgres/vocabulary"
	"github.com/robdix/spanish-reading/internal/auth"
	"github.com/robdix/spanish-reading/internal/config"
	"github.com/robdix/spanish-reading/internal/service/export"
	"github.com/robdix/spanish-reading/internal/service/progress"
	"github.com/robdix/spanish-reading/internal/service/story"
	"github.com/robdix/spanish-reading/internal/service/vocabulary"
	"github.com/robdix/spanish-reading/internal/transport/middleware"
	"github.com/robdix/spanish-reading/internal/transport/rest"
)

// rateLimitCleanup is how often idle rate-limit buckets are dropped.
const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations and serves HTTP until ctx is cancelled.
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
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, cleanup := NewHandler(cfg, pool, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// NewHandler builds the full HTTP stack on top of pool. The returned
// cleanup func releases background resources and must be called once the
// handler is no longer served.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	statRepo := dailystat.New(pool)
	goalRepo := goal.New(pool)
	settingsRepo := settings.New(pool, cfg.Reading.DefaultTimezone)
	stories := storyrepo.New(pool)
	userStories := storyrepo.NewUserStoryRepo(pool)
	vocab := vocabrepo.New(pool)

	// Services.
	progressSvc := progress.NewService(logger, statRepo, goalRepo, settingsRepo, txm, cfg.Reading.DefaultTimezone)
	storySvc := story.NewService(logger, stories, userStories, progressSvc, txm, cfg.Reading.ContextWindow)
	vocabSvc := vocabulary.NewService(logger, vocab, stories, cfg.Reading.ContextWindow)
	exportSvc := export.NewService(logger, vocab, cfg.Export)

	rl := middleware.NewRateLimiter(rateLimitCleanup)

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{"database": pool}),
		Progress:   rest.NewProgressHandler(progressSvc, logger),
		Story:      rest.NewStoryHandler(storySvc, logger, cfg.Import.MaxBodyBytes),
		Text:       rest.NewTextHandler(logger, cfg.Reading.ContextWindow),
		Vocabulary: rest.NewVocabularyHandler(vocabSvc, logger),
		Export:     rest.NewExportHandler(exportSvc, logger),
	}, middleware.RequireUser, rl.Limit(cfg.Import.RateLimitPerMinute))

	// An empty origin list turns CORS off entirely.
	var cors middleware.Middleware
	if cfg.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(cfg.CORS)
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		cors,
		middleware.Auth(auth.NewValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
		middleware.Logger(logger),
	)

	return chain(router), rl.Stop
}
