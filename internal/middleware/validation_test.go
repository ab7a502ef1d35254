package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cellwatch/internal/shared/testutil"
)

func TestQueryParamValidator(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	allow := NewQueryParamValidator(logger, nil).Allow("file")
	handler := allow(http.HandlerFunc(okHandler))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantFields []string
	}{
		{"no query", "/api/anomalies", http.StatusOK, nil},
		{"allowed parameter", "/api/anomalies?file=site_a.txt", http.StatusOK, nil},
		{"empty allowed parameter", "/api/anomalies?file=", http.StatusOK, nil},
		{"unknown parameter", "/api/anomalies?kind=mfar", http.StatusBadRequest, []string{"kind"}},
		{"repeated parameter", "/api/anomalies?file=a&file=b", http.StatusBadRequest, []string{"file"}},
		{"sorted fields", "/api/anomalies?zeta=1&alpha=2", http.StatusBadRequest, []string{"alpha", "zeta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantFields == nil {
				return
			}

			var problem struct {
				Type      string `json:"type"`
				ErrorCode string `json:"error_code"`
				Details   struct {
					Errors []struct {
						Field string `json:"field"`
					} `json:"errors"`
				} `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, "VALIDATION_FAILED", problem.ErrorCode)

			var fields []string
			for _, e := range problem.Details.Errors {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
