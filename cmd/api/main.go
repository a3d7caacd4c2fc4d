package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/shag-platform/shag-api/config"
	"github.com/shag-platform/shag-api/internal/catalog"
	"github.com/shag-platform/shag-api/internal/handlers"
	"github.com/shag-platform/shag-api/internal/match"
	"github.com/shag-platform/shag-api/internal/middleware"
	"github.com/shag-platform/shag-api/internal/services"
	"github.com/shag-platform/shag-api/internal/session"
	"github.com/shag-platform/shag-api/internal/sheets"
	"github.com/shag-platform/shag-api/pkg/httpclient"
	"github.com/shag-platform/shag-api/pkg/logger"
	"github.com/shag-platform/shag-api/pkg/metrics"
	"github.com/shag-platform/shag-api/pkg/profiling"
	"github.com/shag-platform/shag-api/pkg/tracing"
)

// registerAPIRoutes registers the public API surface for a given router group
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, matchRateLimiter, submitRateLimiter *middleware.RateLimiter,
	catalogHandler *handlers.CatalogHandler,
	matchHandler *handlers.MatchHandler,
	bookingHandler *handlers.BookingHandler,
	registrationHandler *handlers.RegistrationHandler,
) {
	group.GET("/mentors", generalRateLimiter.Middleware(), catalogHandler.ListMentors)
	group.GET("/mentors/:id", generalRateLimiter.Middleware(), catalogHandler.GetMentorByID)
	group.GET("/catalog/filters", generalRateLimiter.Middleware(), catalogHandler.GetFilters)

	// The match endpoint fronts a paid model API, so it gets a much
	// tighter limit than the catalog reads
	group.POST("/match", matchRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(16*1024), matchHandler.Recommend)

	bookings := group.Group("/bookings")
	bookings.Use(generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024))
	bookings.POST("", bookingHandler.Create)
	bookings.GET("/:id", bookingHandler.Status)
	bookings.POST("/:id/format", bookingHandler.SelectFormat)
	bookings.POST("/:id/goal", bookingHandler.SubmitGoal)
	bookings.POST("/:id/slot", submitRateLimiter.Middleware(), bookingHandler.SelectSlot)
	bookings.POST("/:id/back", bookingHandler.Back)
	bookings.DELETE("/:id", bookingHandler.Cancel)

	registrations := group.Group("/registrations")
	registrations.Use(generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(64*1024))
	registrations.POST("", registrationHandler.Create)
	registrations.GET("/:id", registrationHandler.Status)
	registrations.POST("/:id/fields", registrationHandler.SetFields)
	registrations.POST("/:id/advance", registrationHandler.Advance)
	registrations.POST("/:id/back", registrationHandler.Back)
	registrations.POST("/:id/slots", registrationHandler.AddSlot)
	registrations.DELETE("/:id/slots/:index", registrationHandler.RemoveSlot)
	registrations.POST("/:id/submit", submitRateLimiter.Middleware(), registrationHandler.Submit)
	registrations.DELETE("/:id", registrationHandler.Cancel)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SHAG API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.AlloyEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Continuous profiling
	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	// Load the mentor catalog before accepting requests
	mentorCatalog, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		logger.Fatal("Failed to load mentor catalog", zap.Error(err))
	}
	logger.Info("Mentor catalog loaded", zap.Int("mentors", len(mentorCatalog.All())))

	// Match engine (optional)
	var matchEngine match.Engine
	if cfg.Match.Disabled {
		logger.Warn("AI matching is DISABLED by configuration")
	} else {
		engine, err := match.NewGeminiEngine(
			context.Background(),
			cfg.Match.GeminiAPIKey,
			cfg.Match.GeminiModel,
			time.Duration(cfg.Match.TimeoutSeconds)*time.Second,
		)
		if err != nil {
			logger.Fatal("Failed to initialize match engine", zap.Error(err))
		}
		matchEngine = engine
		logger.Info("Match engine initialized", zap.String("model", cfg.Match.GeminiModel))
	}

	// Session store and sheets client
	store := session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	sheetsHTTPClient := httpclient.NewStandardClientWithTimeout(time.Duration(cfg.Sheets.TimeoutSeconds) * time.Second)
	sheetsClient := sheets.NewClient(cfg.Sheets.WebhookURL, sheetsHTTPClient)
	if cfg.Sheets.WebhookURL == "" {
		logger.Warn("Sheets webhook not configured, submissions will be unconfirmed")
	}

	// Initialize services
	catalogService := services.NewCatalogService(mentorCatalog, cfg.Server.BaseURL)
	matchService := services.NewMatchService(matchEngine, mentorCatalog, store, cfg.Server.BaseURL)
	bookingService := services.NewBookingService(mentorCatalog, store, sheetsClient, cfg.Server.BaseURL)
	registrationService := services.NewRegistrationService(store, sheetsClient)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	matchHandler := handlers.NewMatchHandler(matchService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	healthHandler := handlers.NewHealthHandler(func() bool { return len(mentorCatalog.All()) > 0 })

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// CORS: only the configured frontend origins may call the API
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // catalog reads and workflow steps
	matchRateLimiter := middleware.NewRateLimiter(1, 3)       // model calls are slow and metered
	submitRateLimiter := middleware.NewRateLimiter(5, 10)     // final submissions hit the sheet webhook

	// Operational endpoints (not versioned)
	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, matchRateLimiter, submitRateLimiter,
		catalogHandler, matchHandler, bookingHandler, registrationHandler)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
