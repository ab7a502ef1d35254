package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sort"

	apierrors "cellwatch/internal/errors"
)

// QueryParamValidator rejects requests with query parameters a route does not accept
type QueryParamValidator struct {
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewQueryParamValidator creates a new query parameter validator
func NewQueryParamValidator(logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *QueryParamValidator {
	if logger == nil {
		logger = slog.Default()
	}
	if errorHandler == nil {
		errorHandler = apierrors.NewErrorHandler(logger, false)
	}
	return &QueryParamValidator{
		logger:       logger.With(slog.String("component", "query_validator")),
		errorHandler: errorHandler,
	}
}

// Allow returns middleware accepting only the named query parameters, each at most once
func (v *QueryParamValidator) Allow(params ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var fields []apierrors.ValidationError
			query := r.URL.Query()

			names := make([]string, 0, len(query))
			for name := range query {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				switch {
				case !slices.Contains(params, name):
					fields = append(fields, apierrors.ValidationError{
						Field:   name,
						Message: "unknown query parameter",
					})
				case len(query[name]) > 1:
					fields = append(fields, apierrors.ValidationError{
						Field:   name,
						Message: fmt.Sprintf("%s given %d times", name, len(query[name])),
					})
				}
			}

			if len(fields) > 0 {
				v.logger.DebugContext(r.Context(), "query rejected",
					slog.String("path", r.URL.Path),
					slog.String("query", r.URL.RawQuery))
				v.errorHandler.HandleError(w, r, apierrors.NewValidationErrors(fields))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
