package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/robdix/spanish-reading/internal/domain"
	"github.com/robdix/spanish-reading/internal/service/export"
)

const (
	formatAnki = "anki"
	formatXLSX = "xlsx"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type exportService interface {
	Anki(ctx context.Context, req export.Request) (export.Result, error)
	XLSX(ctx context.Context, req export.Request, w io.Writer) (export.Result, error)
	MarkExported(ctx context.Context, ids []uuid.UUID) (int, error)
}

// ExportHandler serves vocabulary downloads.
type ExportHandler struct {
	svc exportService
	log *slog.Logger
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{svc: svc, log: logger.With("handler", "export")}
}

type exportRequest struct {
	Mode     string                `json:"mode"`
	Mappings []domain.FieldMapping `json:"mappings"`
}

// Export handles POST /api/vocabulary/export?format=anki|xlsx.
//
// The file is fully built before anything is sent. Entries are marked as
// exported only after the body was written without error.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatAnki
	}
	if format != formatAnki && format != formatXLSX {
		handleError(h.log, w, r, domain.NewValidationError("format", "must be anki or xlsx"))
		return
	}

	var req exportRequest
	if !decodeOptionalJSON(w, r, maxRequestBody, &req) {
		return
	}
	exportReq := export.Request{Mode: domain.ExportMode(req.Mode), Mappings: req.Mappings}

	var (
		body        []byte
		res         export.Result
		contentType string
		filename    string
		err         error
	)
	switch format {
	case formatXLSX:
		var buf bytes.Buffer
		res, err = h.svc.XLSX(r.Context(), exportReq, &buf)
		body, contentType, filename = buf.Bytes(), contentTypeXLSX, "vocabulary.xlsx"
	default:
		res, err = h.svc.Anki(r.Context(), exportReq)
		body, contentType, filename = []byte(res.Text), "text/plain; charset=utf-8", "vocabulary.txt"
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("X-Export-Count", strconv.Itoa(len(res.IncludedIDs)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		h.log.WarnContext(r.Context(), "export body not delivered; entries left unmarked",
			slog.String("format", format),
			slog.String("error", err.Error()),
		)
		return
	}

	if _, err := h.svc.MarkExported(context.WithoutCancel(r.Context()), res.IncludedIDs); err != nil {
		h.log.ErrorContext(r.Context(), "mark exported failed",
			slog.String("format", format),
			slog.Int("entries", len(res.IncludedIDs)),
			slog.String("error", err.Error()),
		)
	}
}
