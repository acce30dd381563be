// Command export writes a user's vocabulary to an Anki import file or an
// Excel workbook. Entries are marked as exported only after the file has
// been written and closed.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/adapter/postgres"
	vocabrepo "github.com/robdix/spanish-reading/internal/adapter/postgres/vocabulary"
	"github.com/robdix/spanish-reading/internal/app"
	"github.com/robdix/spanish-reading/internal/config"
	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/service/export"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

func main() {
	userFlag := flag.String("user", "", "owner user ID")
	format := flag.String("format", "anki", "anki or xlsx")
	mode := flag.String("mode", "new", "new or all")
	out := flag.String("out", "", "output file")
	dryRun := flag.Bool("dry-run", false, "write the file without marking entries as exported")
	flag.Parse()

	if *userFlag == "" || *out == "" {
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
	ctx = ctxutil.WithUserID(ctx, userID)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := export.NewService(logger, vocabrepo.New(pool), cfg.Export)
	req := export.Request{Mode: domain.ExportMode(*mode)}

	result, err := writeFile(ctx, svc, *format, req, *out)
	if err != nil {
		logger.Error("export failed", slog.String("out", *out), slog.String("error", err.Error()))
		os.Exit(1)
	}

	marked := 0
	if !*dryRun {
		marked, err = svc.MarkExported(ctx, result.IncludedIDs)
		if err != nil {
			logger.Error("mark exported", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("export completed",
		slog.String("out", *out),
		slog.Int("entries", len(result.IncludedIDs)),
		slog.Int("marked", marked),
	)
}

func writeFile(ctx context.Context, svc *export.Service, format string, req export.Request, path string) (export.Result, error) {
	f, err := os.Create(path)
	if err != nil {
		return export.Result{}, fmt.Errorf("create %s: %w", path, err)
	}

	var result export.Result
	switch format {
	case "anki":
		result, err = svc.Anki(ctx, req)
		if err == nil {
			_, err = f.WriteString(result.Text)
		}
	case "xlsx":
		result, err = svc.XLSX(ctx, req, f)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return export.Result{}, err
	}
	return result, nil
}
