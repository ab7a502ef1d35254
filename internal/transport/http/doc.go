// Package http implements the read-only JSON API over the report service.
// Handlers parse and validate the request, call the service and render the
// result; they hold no parsing logic of their own.
//
// # Routes
//
//	GET /api/health                   liveness summary (also /ready, /live)
//	GET /api/version                  build information
//	GET /api/documents                stored documents
//	GET /api/sections/{kind}?file=    records of one section kind
//	GET /api/anomalies?file=          display-filtered rows of every kind
//	GET /api/report/cells?file=       reference-cell triage view
//	GET /api/summary?file=            per-kind totals and anomaly counts
//	GET /api/export/{target}.{format} CSV or XLSX download
//
// An empty file parameter aggregates over every stored document.
//
// # Errors
//
// Every failure is passed to errors.ErrorHandler, which renders an RFC 7807
// problem. Query parameters are checked twice: middleware.QueryParamValidator
// rejects parameters a route does not take, and validation.QueryValidator
// checks the values.
package http
