// Command import-article downloads a web page, extracts its readable text
// and stores it as a news story owned by the given user.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/adapter/postgres"
	"github.com/robdix/spanish-reading/internal/adapter/postgres/dailystat"
	"github.com/robdix/spanish-reading/internal/adapter/postgres/goal"
	"github.com/robdix/spanish-reading/internal/adapter/postgres/settings"
	storyrepo "github.com/robdix/spanish-reading/internal/adapter/postgres/story"
	"github.com/robdix/spanish-reading/internal/adapter/provider/article"
	"github.com/robdix/spanish-reading/internal/app"
	"github.com/robdix/spanish-reading/internal/config"
	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/service/progress"
	"github.com/robdix/spanish-reading/internal/service/story"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

func main() {
	rawURL := flag.String("url", "", "page to import")
	userFlag := flag.String("user", "", "owner user ID")
	difficultyFlag := flag.String("difficulty", "", "optional CEFR level (A1..C1)")
	flag.Parse()

	if *rawURL == "" || *userFlag == "" {
		flag.Usage()
		os.Exit(1)
	}
	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		log.Fatalf("invalid -user: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	progressSvc := progress.NewService(logger,
		dailystat.New(pool), goal.New(pool), settings.New(pool, cfg.Reading.DefaultTimezone),
		txm, cfg.Reading.DefaultTimezone)
	storySvc := story.NewService(logger,
		storyrepo.New(pool), storyrepo.NewUserStoryRepo(pool), progressSvc,
		txm, cfg.Reading.ContextWindow)

	page, pageURL, err := article.NewFetcher(logger, cfg.Import).Fetch(ctx, *rawURL)
	if err != nil {
		logger.Error("fetch article", slog.String("url", *rawURL), slog.String("error", err.Error()))
		os.Exit(1)
	}

	input := story.ImportInput{HTML: string(page), SourceURL: pageURL.String()}
	if *difficultyFlag != "" {
		d := domain.Difficulty(*difficultyFlag)
		input.Difficulty = &d
	}

	created, err := storySvc.ImportArticle(ctxutil.WithUserID(ctx, userID), input)
	if err != nil {
		logger.Error("import article", slog.String("url", *rawURL), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("article imported",
		slog.String("story_id", created.ID.String()),
		slog.String("title", created.Title),
		slog.Int("word_count", created.WordCount),
	)
}
