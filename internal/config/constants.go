package config

// Application constants
const (
	AppName    = "cellwatch"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable (CELLWATCH_SERVER_PORT, ...)
	EnvPrefix = "CELLWATCH"

	// Rate Limiting
	DefaultRateLimit = 100 // requests per second
	DefaultBurstSize = 50

	// File Paths (relative to the base directory)
	DefaultDocumentsDir = "data/documents"
	DefaultReportsDir   = "data/reports"
	DefaultLogsDir      = "logs"
	DefaultLogFile      = "logs/cellwatch.log"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultWorkers = 4

	// API Endpoints
	APIBasePath     = "/api"
	HealthEndpoint  = "/api/health"
	MetricsEndpoint = "/metrics"
)
