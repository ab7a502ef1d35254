package app

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellwatch/internal/config"
	"cellwatch/internal/shared/testutil"
	"cellwatch/pkg/contracts/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Server.ShutdownTimeout = 5 * time.Second
	cfg.Paths.BaseDir = t.TempDir()
	cfg.Paths.DocumentsDir = testutil.SampleCorpus(t)
	cfg.Security.RateLimit.Enabled = false
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	application, err := New(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		application.Close(context.Background())
	})
	return application
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestNew(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := New(nil, nil)
		assert.Error(t, err)
	})

	t.Run("wires components", func(t *testing.T) {
		cfg := testConfig(t)
		application := newTestApp(t, cfg)

		assert.NotNil(t, application.Router)
		assert.NotNil(t, application.Reports)
		assert.NotNil(t, application.Health)
		assert.Equal(t, cfg.Paths.DocumentsDir, application.Store.Dir())
		assert.Equal(t, "127.0.0.1:0", application.Server.Addr)
		assert.DirExists(t, application.Paths.ReportsDir)
		assert.DirExists(t, application.Paths.LogsDir)
	})
}

func TestRouter_ReportEndpoints(t *testing.T) {
	application := newTestApp(t, testConfig(t))
	router := application.Router

	t.Run("health", func(t *testing.T) {
		rec := get(t, router, "/api/health")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	})

	t.Run("readiness counts documents", func(t *testing.T) {
		rec := get(t, router, "/api/health/ready")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2 documents")
	})

	t.Run("documents", func(t *testing.T) {
		rec := get(t, router, "/api/documents")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Documents []domain.DocumentInfo `json:"documents"`
			Count     int                   `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "site_a.txt", resp.Documents[0].Name)
		assert.Equal(t, "site_b.log", resp.Documents[1].Name)
	})

	t.Run("summary", func(t *testing.T) {
		rec := get(t, router, "/api/summary")
		require.Equal(t, http.StatusOK, rec.Code)

		var summary domain.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, []string{"site_a.txt", "site_b.log"}, summary.Documents)
		assert.Equal(t, 3, summary.Section(domain.KindBoardSfp).Total)
		assert.Equal(t, 2, summary.Section(domain.KindBoardSfp).Anomalous)
		assert.Equal(t, 1, summary.Section(domain.KindMfar).Anomalous)
	})

	t.Run("section of one document", func(t *testing.T) {
		rec := get(t, router, "/api/sections/boardsfp?file=site_b.log")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":1`)
		assert.Contains(t, rec.Body.String(), "BB-2")
	})

	t.Run("trailing slash", func(t *testing.T) {
		rec := get(t, router, "/api/anomalies/")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown document", func(t *testing.T) {
		rec := get(t, router, "/api/anomalies?file=missing.txt")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("csv export", func(t *testing.T) {
		rec := get(t, router, "/api/export/mfar.csv")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "\xEF\xBB\xBF"))
		assert.Contains(t, rec.Body.String(), "Failed VSWR")
	})

	t.Run("csv of a report is rejected", func(t *testing.T) {
		rec := get(t, router, "/api/export/anomalies.csv")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := get(t, router, "/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "/errors/not-found")
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/summary", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		rec := get(t, router, "/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "http_requests_total")
		assert.Contains(t, body, "documents_read_total")
	})
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Security.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 1}
	router := newTestApp(t, cfg).Router

	require.Equal(t, http.StatusOK, get(t, router, "/api/health").Code)
	rec := get(t, router, "/api/health")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// scrapes are not limited
	assert.Equal(t, http.StatusOK, get(t, router, "/metrics").Code)
}

func TestStartStop(t *testing.T) {
	application := newTestApp(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, application.Start(ctx, cancel))
	assert.NoError(t, application.Stop(context.Background()))
}

func TestStartAddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testConfig(t)
	cfg.Server.Port = busy.Addr().(*net.TCPAddr).Port
	application := newTestApp(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.Error(t, application.Start(ctx, cancel))
}

func TestRunStopsOnCancel(t *testing.T) {
	application := newTestApp(t, testConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServedOverHTTP(t *testing.T) {
	application := newTestApp(t, testConfig(t))
	server := httptest.NewServer(application.Router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/report/cells")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var report domain.CellReport
	require.NoError(t, json.Unmarshal(body, &report))
	require.Len(t, report.Radio, 1)
	assert.Equal(t, "CS0FM12", report.Radio[0].RefCell)
	require.Len(t, report.Transport, 2)
}
