// Package services implements the business logic between the HTTP handlers
// and the parsers.
//
// # Services
//
//	- ReportService: section records, anomaly report, cell report,
//	  per-kind summary and CSV/XLSX exports over the document corpus
//	- HealthService: liveness, readiness and version information
//
// # Common Service Pattern
//
// Services receive their collaborators and a logger in the constructor and
// tag the logger with a component attribute:
//
//	store := files.NewStore(paths.DocumentsDir, cfg.Corpus.Extensions, logger)
//	reports := services.NewReportService(store, cellref.NewExtractor(cellref.LegacyRiLFallback{}), logger,
//	    dataprocessing.WithWorkers(cfg.Corpus.Workers))
//
//	summary, err := reports.Summary(ctx, "")
//
// # Error Handling
//
// Services return the sentinel errors of errors.go wrapped with %w. They are
// typed application errors, so errors.ErrorHandler maps them to problems:
// ErrUnknownKind and ErrUnsupportedFormat to 400, ErrDocumentNotFound to 404.
// A cancelled context is returned as is.
package services
