package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "cellwatch/internal/errors"
	"cellwatch/internal/middleware"
	"cellwatch/internal/validation"
	"cellwatch/pkg/contracts/domain"
)

// Export content types
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DocumentsResponse is the body of GET /api/documents
type DocumentsResponse struct {
	Documents []domain.DocumentInfo `json:"documents"`
	Count     int                   `json:"count"`
}

// SectionResponse is the body of GET /api/sections/{kind}
type SectionResponse struct {
	Kind    domain.Kind     `json:"kind"`
	Title   string          `json:"title"`
	File    string          `json:"file,omitempty"`
	Count   int             `json:"count"`
	Records []domain.Record `json:"records"`
}

// ReportHandler serves the read-only report API with RFC 7807 errors
type ReportHandler struct {
	service      ReportServiceInterface
	validator    *validation.QueryValidator
	params       *middleware.QueryParamValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ReportServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = apierrors.NewErrorHandler(logger, false)
	}
	return &ReportHandler{
		service:      service,
		validator:    validation.NewQueryValidator(),
		params:       middleware.NewQueryParamValidator(logger, errorHandler),
		logger:       logger.With(slog.String("component", "report_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the report routes, mounted under /api
func (h *ReportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.With(h.params.Allow()).Get("/documents", h.GetDocuments)

		r.Group(func(r chi.Router) {
			r.Use(h.params.Allow("file"))
			r.Get("/sections/{kind}", h.GetSection)
			r.Get("/anomalies", h.GetAnomalies)
			r.Get("/report/cells", h.GetCellReport)
			r.Get("/summary", h.GetSummary)
		})
	})

	r.With(h.params.Allow("file")).Get("/export/{target}.{format}", h.Export)

	return r
}

// GetDocuments handles GET /api/documents
func (h *ReportHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.Documents(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if docs == nil {
		docs = []domain.DocumentInfo{}
	}
	render.JSON(w, r, DocumentsResponse{Documents: docs, Count: len(docs)})
}

// GetSection handles GET /api/sections/{kind}
func (h *ReportHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	query := validation.SectionQuery{
		Kind: chi.URLParam(r, "kind"),
		File: r.URL.Query().Get("file"),
	}
	if err := h.validator.Validate(query); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	kind, err := domain.ParseKind(query.Kind)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("kind", err.Error()))
		return
	}

	h.logger.DebugContext(r.Context(), "fetching section",
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.String("kind", string(kind)),
		slog.String("file", query.File))

	recs, err := h.service.Records(r.Context(), kind, query.File)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if recs == nil {
		recs = []domain.Record{}
	}
	render.JSON(w, r, SectionResponse{
		Kind:    kind,
		Title:   kind.Title(),
		File:    query.File,
		Count:   len(recs),
		Records: recs,
	})
}

// GetAnomalies handles GET /api/anomalies
func (h *ReportHandler) GetAnomalies(w http.ResponseWriter, r *http.Request) {
	file, ok := h.documentQuery(w, r)
	if !ok {
		return
	}
	report, err := h.service.Anomalies(r.Context(), file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, report)
}

// GetCellReport handles GET /api/report/cells
func (h *ReportHandler) GetCellReport(w http.ResponseWriter, r *http.Request) {
	file, ok := h.documentQuery(w, r)
	if !ok {
		return
	}
	report, err := h.service.CellReport(r.Context(), file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, report)
}

// GetSummary handles GET /api/summary
func (h *ReportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	file, ok := h.documentQuery(w, r)
	if !ok {
		return
	}
	summary, err := h.service.Summary(r.Context(), file)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, summary)
}

// Export handles GET /api/export/{target}.{format}. The export is buffered
// so a failure still produces a problem response.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	file, ok := h.documentQuery(w, r)
	if !ok {
		return
	}
	target := chi.URLParam(r, "target")
	format := chi.URLParam(r, "format")

	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), &buf, format, target, file); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	contentType := ContentTypeCSV
	if format == "xlsx" {
		contentType = ContentTypeXLSX
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", target+"."+format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WarnContext(r.Context(), "export response interrupted",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()))
	}
}

func (h *ReportHandler) documentQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	query := validation.DocumentQuery{File: r.URL.Query().Get("file")}
	if err := h.validator.Validate(query); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return "", false
	}
	return query.File, true
}
