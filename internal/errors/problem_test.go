package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemDetails_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		problem *ProblemDetails
		want    map[string]interface{}
	}{
		{
			name:    "required fields only",
			problem: NewProblemDetails(http.StatusNotFound, TypeNotFound, "Not Found", "", ""),
			want: map[string]interface{}{
				"type": TypeNotFound, "title": "Not Found", "status": float64(404),
			},
		},
		{
			name: "extensions flattened",
			problem: NewProblemDetails(http.StatusBadRequest, TypeValidation, "Validation Failed", "unknown kind", "/api/sections/x").
				WithExtension("trace_id", "abc").
				WithExtension("error_type", "VALIDATION"),
			want: map[string]interface{}{
				"type": TypeValidation, "title": "Validation Failed", "status": float64(400),
				"detail": "unknown kind", "instance": "/api/sections/x",
				"trace_id": "abc", "error_type": "VALIDATION",
			},
		},
		{
			name: "extensions cannot override standard fields",
			problem: NewProblemDetails(http.StatusInternalServerError, TypeInternal, "Internal Server Error", "", "").
				WithExtension("status", 200),
			want: map[string]interface{}{
				"type": TypeInternal, "title": "Internal Server Error", "status": float64(500),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.problem)
			require.NoError(t, err)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProblemDetails_WithExtensionOnZeroValue(t *testing.T) {
	pd := &ProblemDetails{Status: http.StatusConflict}
	pd.WithExtension("k", "v")
	assert.Equal(t, "v", pd.Extensions["k"])
}

func TestProblemDetails_Render(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/report/cells", nil)

	require.NoError(t, render.Render(w, r, NewProblemDetails(http.StatusUnprocessableEntity, TypeParsing, "Unprocessable Document", "", "")))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), TypeParsing)
}
