package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"cellwatch/internal/cellref"
	"cellwatch/internal/dataprocessing"
	"cellwatch/internal/exporter"
	"cellwatch/pkg/contracts/domain"
)

// Export targets besides the section kinds
const (
	TargetAnomalies = "anomalies"
	TargetCells     = "cells"
)

// DocumentSource is the document store the report service reads from
type DocumentSource interface {
	dataprocessing.DocumentStore
	Documents(ctx context.Context) ([]domain.DocumentInfo, error)
}

// ReportService builds the section, anomaly and cell reports over the corpus
type ReportService struct {
	store  DocumentSource
	agg    *dataprocessing.Aggregator
	cells  *cellref.Extractor
	logger *slog.Logger
}

// NewReportService creates a report service. A nil extractor extracts
// cells without the legacy fallback.
func NewReportService(store DocumentSource, cells *cellref.Extractor, logger *slog.Logger, opts ...dataprocessing.AggregatorOption) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	if cells == nil {
		cells = cellref.NewExtractor(nil)
	}
	logger = logger.With(slog.String("component", "report_service"))

	opts = append([]dataprocessing.AggregatorOption{dataprocessing.WithLogger(logger)}, opts...)
	return &ReportService{
		store:  store,
		agg:    dataprocessing.NewAggregator(store, opts...),
		cells:  cells,
		logger: logger,
	}
}

// Documents lists the stored documents with their sizes
func (s *ReportService) Documents(ctx context.Context) ([]domain.DocumentInfo, error) {
	docs, err := s.store.Documents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentsUnlisted, err)
	}
	if docs == nil {
		docs = []domain.DocumentInfo{}
	}
	return docs, nil
}

// Records returns every record of kind, from all documents when file is
// empty or from the named document only
func (s *ReportService) Records(ctx context.Context, kind domain.Kind, file string) ([]domain.Record, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := s.checkDocument(ctx, file); err != nil {
		return nil, err
	}
	recs := s.records(ctx, kind, file)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// Anomalies returns the rows of every kind that pass the display filter
func (s *ReportService) Anomalies(ctx context.Context, file string) (domain.AnomalyReport, error) {
	if err := s.checkDocument(ctx, file); err != nil {
		return domain.AnomalyReport{}, err
	}

	report := domain.AnomalyReport{
		LinkPerf: dataprocessing.LinkPerf.Filter(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.LinkPerf, file)),
		BoardSfp: dataprocessing.BoardSfp.Filter(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.BoardSfp, file)),
		FruRadio: dataprocessing.FruRadio.Filter(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.FruRadio, file)),
		Mfar:     dataprocessing.Mfar.Filter(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.Mfar, file)),
		Mfitr:    dataprocessing.Mfitr.Filter(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.Mfitr, file)),
	}
	if err := ctx.Err(); err != nil {
		return domain.AnomalyReport{}, err
	}

	s.logger.DebugContext(ctx, "anomaly report built",
		slog.String("file", file),
		slog.Int("rows", report.Len()))
	return report, nil
}

// CellReport groups the anomalies by the cells they affect. Radio and link
// rows without a reference cell are dropped; transport rows are kept.
func (s *ReportService) CellReport(ctx context.Context, file string) (domain.CellReport, error) {
	anomalies, err := s.Anomalies(ctx, file)
	if err != nil {
		return domain.CellReport{}, err
	}
	return s.cellReport(anomalies), nil
}

func (s *ReportService) cellReport(a domain.AnomalyReport) domain.CellReport {
	report := domain.CellReport{
		Radio:     []domain.RadioCell{},
		Links:     []domain.LinkCell{},
		Transport: make([]domain.TransportCell, 0, len(a.BoardSfp)),
		Mfar:      a.Mfar,
		Mfitr:     a.Mfitr,
	}

	for _, r := range a.FruRadio {
		cells := s.cells.Extract(r)
		if cells.AB == "" {
			continue
		}
		report.Radio = append(report.Radio, domain.RadioCell{
			RefCell: cells.AB,
			VSWR:    r.VSWR,
			Radio:   r.FRU,
			Board:   r.Board,
			RF:      r.RF,
			Source:  r.Source,
		})
	}

	for _, r := range a.LinkPerf {
		cells := s.cells.Extract(r)
		if cells.Empty() {
			continue
		}
		report.Links = append(report.Links, domain.LinkCell{
			RefCells: cells.String(),
			DlLoss:   r.DlLoss,
			UlLoss:   r.UlLoss,
			Length:   r.Length,
			Source:   r.Source,
		})
	}

	for _, r := range a.BoardSfp {
		report.Transport = append(report.Transport, domain.TransportCell{
			RefCells: s.cells.Extract(r).String(),
			Board:    r.Board,
			TXdBm:    r.TXdBm,
			RXdBm:    r.RXdBm,
			WL:       r.WL,
			Source:   r.Source,
		})
	}
	return report
}

// Summary counts the records and anomalies of every kind
func (s *ReportService) Summary(ctx context.Context, file string) (domain.Summary, error) {
	if err := s.checkDocument(ctx, file); err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{
		Documents: s.agg.Documents(ctx, file),
		Sections:  make([]domain.SectionSummary, 0, len(domain.AllKinds)),
	}
	if summary.Documents == nil {
		summary.Documents = []string{}
	}

	for _, kind := range domain.AllKinds {
		sec := domain.SectionSummary{Kind: kind, Title: kind.Title()}
		for _, r := range s.records(ctx, kind, file) {
			sec.Total++
			if r.Anomalous() {
				sec.Anomalous++
			}
		}
		summary.Sections = append(summary.Sections, sec)
	}
	if err := ctx.Err(); err != nil {
		return domain.Summary{}, err
	}
	return summary, nil
}

// Export writes a report to out. CSV exports one section kind; XLSX exports
// a section kind, the anomaly report or the cell report.
func (s *ReportService) Export(ctx context.Context, out io.Writer, format, target, file string) error {
	format = strings.ToLower(format)
	target = strings.ToLower(strings.TrimSpace(target))

	var err error
	switch format {
	case "csv":
		err = s.exportCSV(ctx, out, target, file)
	case "xlsx":
		err = s.exportXLSX(ctx, out, target, file)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "export written",
		slog.String("format", format),
		slog.String("target", target),
		slog.String("file", file))
	return nil
}

func (s *ReportService) exportCSV(ctx context.Context, out io.Writer, target, file string) error {
	kind, err := domain.ParseKind(target)
	if err != nil {
		return fmt.Errorf("%w: csv exports a section kind, got %q", ErrUnsupportedTarget, target)
	}
	recs, err := s.Records(ctx, kind, file)
	if err != nil {
		return err
	}
	if err := exporter.WriteRecordsCSV(out, kind, recs); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	return nil
}

func (s *ReportService) exportXLSX(ctx context.Context, out io.Writer, target, file string) error {
	switch target {
	case TargetAnomalies:
		report, err := s.Anomalies(ctx, file)
		if err != nil {
			return err
		}
		return wrapWrite(exporter.WriteAnomalyWorkbook(out, report))
	case TargetCells:
		report, err := s.CellReport(ctx, file)
		if err != nil {
			return err
		}
		return wrapWrite(exporter.WriteCellWorkbook(out, report))
	}

	kind, err := domain.ParseKind(target)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedTarget, target)
	}
	recs, err := s.Records(ctx, kind, file)
	if err != nil {
		return err
	}
	return wrapWrite(exporter.WriteRecordsWorkbook(out, kind, recs))
}

func wrapWrite(err error) error {
	if err != nil {
		return fmt.Errorf("failed to write xlsx export: %w", err)
	}
	return nil
}

// checkDocument fails with ErrDocumentNotFound when file names no stored document
func (s *ReportService) checkDocument(ctx context.Context, file string) error {
	if file == "" {
		return nil
	}
	names, err := s.store.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDocumentsUnlisted, err)
	}
	if !slices.Contains(names, file) {
		return fmt.Errorf("%w: %s", ErrDocumentNotFound, file)
	}
	return nil
}

func (s *ReportService) records(ctx context.Context, kind domain.Kind, file string) []domain.Record {
	switch kind {
	case domain.KindLinkPerf:
		return domain.Records(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.LinkPerf, file))
	case domain.KindBoardSfp:
		return domain.Records(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.BoardSfp, file))
	case domain.KindFruRadio:
		return domain.Records(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.FruRadio, file))
	case domain.KindMfitr:
		return domain.Records(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.Mfitr, file))
	case domain.KindMfar:
		return domain.Records(dataprocessing.Aggregate(ctx, s.agg, dataprocessing.Mfar, file))
	default:
		return nil
	}
}
