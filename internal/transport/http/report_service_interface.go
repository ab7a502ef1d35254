package http

import (
	"context"
	"io"

	"cellwatch/pkg/contracts/domain"
)

// ReportServiceInterface defines the report operations the API serves
type ReportServiceInterface interface {
	Documents(ctx context.Context) ([]domain.DocumentInfo, error)
	Records(ctx context.Context, kind domain.Kind, file string) ([]domain.Record, error)
	Anomalies(ctx context.Context, file string) (domain.AnomalyReport, error)
	CellReport(ctx context.Context, file string) (domain.CellReport, error)
	Summary(ctx context.Context, file string) (domain.Summary, error)
	Export(ctx context.Context, out io.Writer, format, target, file string) error
}
