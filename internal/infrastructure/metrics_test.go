package infrastructure

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"cellwatch/pkg/contracts/domain"
)

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			byKind := map[string]int64{}
			for _, dp := range sum.DataPoints {
				kind, _ := dp.Attributes.Value(attribute.Key("section.kind"))
				byKind[kind.AsString()] += dp.Value
			}
			out[m.Name] = byKind
		}
	}
	return out
}

func TestParseMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewParseMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	metrics.DocumentRead(ctx, domain.KindLinkPerf, true)
	metrics.DocumentRead(ctx, domain.KindLinkPerf, true)
	metrics.DocumentRead(ctx, domain.KindLinkPerf, false)
	metrics.RecordsParsed(ctx, domain.KindLinkPerf, 7, 2)
	metrics.RecordsParsed(ctx, domain.KindMfar, 3, 3)

	sums := collectSums(t, reader)
	assert.Equal(t, int64(2), sums["documents_read_total"]["linkperf"])
	assert.Equal(t, int64(1), sums["document_read_failures_total"]["linkperf"])
	assert.Equal(t, int64(7), sums["records_parsed_total"]["linkperf"])
	assert.Equal(t, int64(3), sums["records_parsed_total"]["mfar"])
	assert.Equal(t, int64(2), sums["anomalies_detected_total"]["linkperf"])
	assert.Equal(t, int64(3), sums["anomalies_detected_total"]["mfar"])
}

func TestHTTPMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewHTTPMetrics(mp.Meter("test"))
	require.NoError(t, err)

	metrics.RecordRequest(context.Background(), http.MethodGet, "/api/v1/records/{kind}", 200, 15*time.Millisecond)
	metrics.RecordRequest(context.Background(), http.MethodGet, "/api/v1/records/{kind}", 400, time.Millisecond)

	var nilMetrics *HTTPMetrics
	assert.NotPanics(t, func() {
		nilMetrics.RecordRequest(context.Background(), http.MethodGet, "/", 200, 0)
	})

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	names := map[string]bool{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		names[m.Name] = true
		if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "http_requests_total" {
			assert.Len(t, sum.DataPoints, 2)
		}
	}
	assert.True(t, names["http_requests_total"])
	assert.True(t, names["http_request_duration_seconds"])
}
