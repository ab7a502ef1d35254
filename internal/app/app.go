package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"

	"cellwatch/internal/cellref"
	"cellwatch/internal/config"
	apperrors "cellwatch/internal/errors"
	"cellwatch/internal/dataprocessing"
	"cellwatch/internal/files"
	"cellwatch/internal/infrastructure"
	customMiddleware "cellwatch/internal/middleware"
	"cellwatch/internal/services"
	handlers "cellwatch/internal/transport/http"
	"cellwatch/internal/validation"
)

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Paths         *config.Paths
	Logger        *slog.Logger
	Store         *files.Store
	Reports       *services.ReportService
	Health        *services.HealthService
	ErrorHandler  *apperrors.ErrorHandler
	OTelProviders *infrastructure.OTelProviders
	Router        *chi.Mux
	Server        *http.Server
}

// NewApplication loads the configuration, initializes the global logger and
// builds the application. An empty configFile searches the default locations.
func NewApplication(configFile string) (*Application, error) {
	load := config.Load
	if configFile != "" {
		load = func() (*config.Config, error) { return config.LoadFile(configFile) }
	}
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(cfg, logger)
}

// New wires every component for cfg. The caller owns logger.
func New(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		return nil, apperrors.NewConfigError("configuration is required", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion))

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}
	paths.LogPathResolution(logger)

	providers, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Paths:         paths,
		Logger:        logger,
		ErrorHandler:  apperrors.NewErrorHandler(logger, false),
		OTelProviders: providers,
	}

	if err := app.initializeServices(); err != nil {
		providers.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	app.setupRouter()
	app.createServer()

	return app, nil
}

// initializeServices builds the document store and the services on top of it
func (a *Application) initializeServices() error {
	recorder, err := infrastructure.NewParseMetrics(a.OTelProviders.Meter)
	if err != nil {
		return fmt.Errorf("failed to create parse metrics: %w", err)
	}

	a.Store = files.NewStore(a.Paths.DocumentsDir, a.Config.Corpus.Extensions, a.Logger)

	var fallback cellref.Fallback
	if a.Config.Corpus.LegacyCellFallback {
		fallback = cellref.LegacyRiLFallback{}
	}

	a.Reports = services.NewReportService(a.Store, cellref.NewExtractor(fallback), a.Logger,
		dataprocessing.WithWorkers(a.Config.Corpus.Workers),
		dataprocessing.WithRecorder(recorder),
	)
	a.Health = services.NewHealthService(config.AppVersion, a.Store, a.Logger)
	return nil
}

// setupRouter configures the HTTP router with all routes.
// Middleware order: RequestID, RealIP, OTel, Logger, Recoverer, headers,
// rate limit, timeout.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(customMiddleware.StripSlashes)

	r.Group(func(r chi.Router) {
		otelMiddleware, err := customMiddleware.NewOTelMiddleware(a.OTelProviders)
		if err != nil {
			a.Logger.Error("Failed to create OpenTelemetry middleware", slog.String("error", err.Error()))
		} else {
			r.Use(otelMiddleware.Handler)
		}

		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(a.ErrorHandler.Middleware)
		r.Use(customMiddleware.SecurityHeaders)

		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.ErrorHandler,
				a.Logger,
			).Handler)
		}

		r.Use(customMiddleware.Timeout(a.Config.Server.WriteTimeout))

		a.setupAPIRoutes(r)
	})

	// Prometheus scrapes bypass logging and rate limiting
	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle(config.MetricsEndpoint, a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
}

// setupAPIRoutes configures API endpoints
func (a *Application) setupAPIRoutes(r chi.Router) {
	healthHandler := handlers.NewHealthHandler(a.Health, a.Logger)
	r.Mount(config.HealthEndpoint, healthHandler.Routes())
	r.Get(config.APIBasePath+"/version", healthHandler.Version)

	reportHandler := handlers.NewReportHandler(a.Reports, a.Logger, a.ErrorHandler)
	r.Mount(config.APIBasePath, reportHandler.Routes())
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           a.Config.Server.Addr(),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Start binds the listener and serves in the background. A serve failure
// calls cancel so Run can shut down.
func (a *Application) Start(ctx context.Context, cancel context.CancelFunc) error {
	a.Logger.InfoContext(ctx, "Starting application",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("address", a.Server.Addr),
		slog.String("level", a.Config.Logging.Level))

	if err := a.performStartupHealthCheck(ctx); err != nil {
		a.Logger.WarnContext(ctx, "Startup health check warnings", slog.String("warnings", err.Error()))
	}

	listener, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}

	go func() {
		if err := a.Server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			cancel()
		}
	}()

	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", "http://"+listener.Addr().String()))
	return nil
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if a.Server != nil {
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
		}
	}
	if err := a.Close(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return errors.Join(errs...)
}

// Close releases the telemetry providers. Commands that never start the
// server call it directly.
func (a *Application) Close(ctx context.Context) error {
	if a.OTelProviders == nil {
		return nil
	}
	if err := a.OTelProviders.Shutdown(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Run serves until ctx is cancelled or an interrupt arrives
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.Start(ctx, cancel); err != nil {
		return err
	}

	<-ctx.Done()
	a.Logger.InfoContext(ctx, "Received shutdown signal")

	// ctx is already done; shutdown gets a fresh one
	return a.Stop(context.WithoutCancel(ctx))
}

// performStartupHealthCheck reports directories the service cannot use
func (a *Application) performStartupHealthCheck(ctx context.Context) error {
	validator := validation.NewFileValidator(a.Logger)
	var warnings []string

	count, err := validator.ValidateDocumentsDir(a.Paths.DocumentsDir, a.Config.Corpus.Extensions)
	if err != nil {
		warnings = append(warnings, err.Error())
	}
	if err := validator.ValidateOutputDirectory(a.Paths.ReportsDir); err != nil {
		warnings = append(warnings, fmt.Sprintf("reports directory not writable: %v", err))
	}

	if len(warnings) > 0 {
		return fmt.Errorf("startup health check warnings: %s", strings.Join(warnings, "; "))
	}

	a.Logger.InfoContext(ctx, "Startup health check passed", slog.Int("documents", count))
	return nil
}
