package infrastructure

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"cellwatch/pkg/contracts/domain"
)

// ParseMetrics counts documents and records seen by the section parsers.
// It satisfies dataprocessing.Recorder.
type ParseMetrics struct {
	documentsRead     metric.Int64Counter
	documentFailures  metric.Int64Counter
	recordsParsed     metric.Int64Counter
	anomaliesDetected metric.Int64Counter
}

// NewParseMetrics creates the parse counters on meter
func NewParseMetrics(meter metric.Meter) (*ParseMetrics, error) {
	documentsRead, err := meter.Int64Counter(
		"documents_read_total",
		metric.WithDescription("Total number of documents read by section parsers"),
	)
	if err != nil {
		return nil, fmt.Errorf("documents_read_total: %w", err)
	}

	documentFailures, err := meter.Int64Counter(
		"document_read_failures_total",
		metric.WithDescription("Total number of documents that could not be read"),
	)
	if err != nil {
		return nil, fmt.Errorf("document_read_failures_total: %w", err)
	}

	recordsParsed, err := meter.Int64Counter(
		"records_parsed_total",
		metric.WithDescription("Total number of section records parsed"),
	)
	if err != nil {
		return nil, fmt.Errorf("records_parsed_total: %w", err)
	}

	anomaliesDetected, err := meter.Int64Counter(
		"anomalies_detected_total",
		metric.WithDescription("Total number of parsed records flagged anomalous"),
	)
	if err != nil {
		return nil, fmt.Errorf("anomalies_detected_total: %w", err)
	}

	return &ParseMetrics{
		documentsRead:     documentsRead,
		documentFailures:  documentFailures,
		recordsParsed:     recordsParsed,
		anomaliesDetected: anomaliesDetected,
	}, nil
}

// DocumentRead counts one document read attempt
func (m *ParseMetrics) DocumentRead(ctx context.Context, kind domain.Kind, ok bool) {
	attrs := metric.WithAttributes(attribute.String("section.kind", string(kind)))
	if ok {
		m.documentsRead.Add(ctx, 1, attrs)
		return
	}
	m.documentFailures.Add(ctx, 1, attrs)
}

// RecordsParsed counts the records and anomalies of one parsed document
func (m *ParseMetrics) RecordsParsed(ctx context.Context, kind domain.Kind, total, anomalous int) {
	attrs := metric.WithAttributes(attribute.String("section.kind", string(kind)))
	m.recordsParsed.Add(ctx, int64(total), attrs)
	m.anomaliesDetected.Add(ctx, int64(anomalous), attrs)
}

// HTTPMetrics holds the request instruments used by the HTTP middleware
type HTTPMetrics struct {
	RequestsTotal   metric.Int64Counter
	RequestDuration metric.Float64Histogram
	ActiveRequests  metric.Int64UpDownCounter
}

// NewHTTPMetrics creates the HTTP request instruments on meter
func NewHTTPMetrics(meter metric.Meter) (*HTTPMetrics, error) {
	requestsTotal, err := meter.Int64Counter(
		"http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"http_active_requests",
		metric.WithDescription("Number of active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		RequestsTotal:   requestsTotal,
		RequestDuration: requestDuration,
		ActiveRequests:  activeRequests,
	}, nil
}

// RecordRequest records a completed request
func (m *HTTPMetrics) RecordRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
	m.RequestsTotal.Add(ctx, 1, attrs)
	m.RequestDuration.Record(ctx, duration.Seconds(), attrs)
}
