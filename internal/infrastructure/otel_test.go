package infrastructure

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"cellwatch/internal/config"
	"cellwatch/pkg/contracts/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOTelInitialization(t *testing.T) {
	providers, err := InitializeOTel(nil, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, providers)

	assert.NotNil(t, providers.TracerProvider)
	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.PrometheusHTTP)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestTraceCorrelation(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), discardLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	ctx, span := otel.Tracer("test").Start(context.Background(), "test-operation")
	defer span.End()

	traceID := TraceIDFromContext(ctx)
	assert.NotEmpty(t, traceID)
	assert.Equal(t, span.SpanContext().TraceID().String(), traceID)
	assert.Empty(t, TraceIDFromContext(context.Background()))

	RecordError(ctx, assert.AnError)
	assert.True(t, span.IsRecording())
}

func TestPrometheusEndpoint(t *testing.T) {
	providers, err := InitializeOTel(DefaultOTelConfig(), discardLogger())
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	metrics, err := NewParseMetrics(providers.Meter)
	require.NoError(t, err)
	metrics.DocumentRead(context.Background(), domain.KindMfar, true)

	server := httptest.NewServer(providers.PrometheusHTTP)
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "documents_read_total")
}

func TestOTelConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		config      *OTelConfig
		wantErr     bool
		wantMetrics bool
	}{
		{
			name: "stdout traces and prometheus",
			config: &OTelConfig{
				ServiceName:    "test-service",
				ServiceVersion: "v1.0.0",
				Environment:    "test",
				TraceExporter:  "stdout",
				MetricExporter: "prometheus",
				SampleRatio:    1.0,
			},
			wantMetrics: true,
		},
		{
			name: "metrics disabled",
			config: &OTelConfig{
				ServiceName:    "test-service",
				TraceExporter:  "none",
				MetricExporter: "none",
			},
		},
		{
			name:    "unknown trace exporter",
			config:  &OTelConfig{ServiceName: "x", TraceExporter: "otlp", MetricExporter: "none"},
			wantErr: true,
		},
		{
			name:    "unknown metric exporter",
			config:  &OTelConfig{ServiceName: "x", TraceExporter: "none", MetricExporter: "statsd"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := InitializeOTel(tt.config, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.NotNil(t, providers.TracerProvider)
			assert.NotNil(t, providers.Meter)
			if tt.wantMetrics {
				assert.NotNil(t, providers.MeterProvider)
				assert.NotNil(t, providers.PrometheusHTTP)
			} else {
				assert.Nil(t, providers.MeterProvider)
				assert.Nil(t, providers.PrometheusHTTP)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			assert.NoError(t, providers.Shutdown(ctx))
		})
	}
}

func TestOTelConfigFrom(t *testing.T) {
	cfg := OTelConfigFrom(config.Default().Telemetry)
	assert.Equal(t, config.AppName, cfg.ServiceName)
	assert.Equal(t, config.AppVersion, cfg.ServiceVersion)
	assert.Equal(t, "prometheus", cfg.MetricExporter)
}
