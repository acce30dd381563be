package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/config"
	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.VocabularyFilter) ([]domain.VocabularyEntry, error)
	MarkExported(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, at time.Time) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service builds vocabulary exports for the authenticated user.
type Service struct {
	vocab vocabRepo
	log   *slog.Logger
	cfg   config.ExportConfig
	now   func() time.Time
}

// NewService creates a new export service.
func NewService(log *slog.Logger, vocab vocabRepo, cfg config.ExportConfig) *Service {
	return &Service{
		vocab: vocab,
		log:   log.With("service", "export"),
		cfg:   cfg,
		now:   time.Now,
	}
}

// Request describes one export. Empty Mappings means the configured
// default columns; empty Mode means ExportModeNew.
type Request struct {
	Mappings []domain.FieldMapping
	Mode     domain.ExportMode
}

// maxColumns bounds the number of export columns.
const maxColumns = 20

// Validate checks all fields and collects all errors.
func (r *Request) Validate() error {
	var errs []domain.FieldError

	if r.Mode != "" && !r.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be new or all"})
	}
	if len(r.Mappings) > maxColumns {
		errs = append(errs, domain.FieldError{Field: "mappings", Message: fmt.Sprintf("at most %d columns", maxColumns)})
	}
	for i, m := range r.Mappings {
		if len(m.SourceFields) == 0 {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("mappings[%d].sourceFields", i), Message: "required"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Anki serializes the user's vocabulary to the Anki text format. Nothing is
// marked as exported; call MarkExported with Result.IncludedIDs once the
// text was delivered.
func (s *Service) Anki(ctx context.Context, req Request) (Result, error) {
	entries, mappings, mode, err := s.load(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("export.Anki: %w", err)
	}

	res := Build(entries, mappings, mode)

	s.log.InfoContext(ctx, "anki export built",
		slog.String("mode", mode.String()),
		slog.Int("entries", len(res.IncludedIDs)),
	)

	return res, nil
}

// XLSX writes the user's vocabulary as a workbook to w. Result.Text is empty.
// As with Anki, marking the entries exported is left to the caller.
func (s *Service) XLSX(ctx context.Context, req Request, w io.Writer) (Result, error) {
	entries, mappings, mode, err := s.load(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("export.XLSX: %w", err)
	}

	included := Select(entries, mode)
	if err := WriteXLSX(w, included, mappings); err != nil {
		return Result{}, fmt.Errorf("export.XLSX: %w", err)
	}

	ids := make([]uuid.UUID, len(included))
	for i, e := range included {
		ids[i] = e.ID
	}

	s.log.InfoContext(ctx, "xlsx export written",
		slog.String("mode", mode.String()),
		slog.Int("entries", len(ids)),
	)

	return Result{Included: included, IncludedIDs: ids}, nil
}

// MarkExported stamps the given entries with the current time.
func (s *Service) MarkExported(ctx context.Context, ids []uuid.UUID) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := s.vocab.MarkExported(ctx, userID, ids, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("export.MarkExported: %w", err)
	}

	s.log.InfoContext(ctx, "vocabulary marked exported",
		slog.String("user_id", userID.String()),
		slog.Int("count", n),
	)

	return n, nil
}

func (s *Service) load(ctx context.Context, req Request) ([]domain.VocabularyEntry, []domain.FieldMapping, domain.ExportMode, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, "", err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, "", domain.ErrUnauthorized
	}

	mode := req.Mode
	if mode == "" {
		mode = domain.ExportModeNew
	}
	mappings := req.Mappings
	if len(mappings) == 0 {
		mappings = s.cfg.DefaultMappings
	}

	entries, err := s.vocab.List(ctx, userID, domain.VocabularyFilter{
		NotExportedOnly: mode == domain.ExportModeNew,
		Limit:           s.cfg.MaxEntries,
	})
	if err != nil {
		return nil, nil, "", fmt.Errorf("list vocabulary: %w", err)
	}

	return entries, mappings, mode, nil
}
