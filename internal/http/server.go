// Package http provides the HTTP server, router setup, and middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	authService "github.com/AnakAmira/amira-vault/internal/auth/service"
	"github.com/AnakAmira/amira-vault/internal/metrics"
	vaulthttp "github.com/AnakAmira/amira-vault/internal/vault/http"
)

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// RouterConfig holds the dependencies and options used to build the API router.
type RouterConfig struct {
	// VaultHandler serves the /v1 encryption endpoints.
	VaultHandler *vaulthttp.VaultHandler

	// AuthEnabled requires a bearer token on all /v1 endpoints.
	AuthEnabled bool
	// AuthTokenHash is the Argon2id hash the bearer token is verified against.
	AuthTokenHash string
	// TokenService verifies bearer tokens. Required when AuthEnabled is true.
	TokenService authService.TokenService

	// RateLimitEnabled enables per-IP rate limiting on /v1 endpoints.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the allowed request rate per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst capacity per client IP.
	RateLimitBurst int

	// CORSEnabled enables CORS for the configured origins.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	// MeterProvider enables HTTP request metrics when non-nil.
	MeterProvider metric.MeterProvider
	// MetricsNamespace is the metric name prefix.
	MetricsNamespace string
}

// NewServer creates a new API server. Call SetupRouter before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with the configured middleware stack and routes.
func (s *Server) SetupRouter(cfg RouterConfig) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	// Health endpoints are unauthenticated and not rate limited
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	if cfg.AuthEnabled {
		v1.Use(AuthenticationMiddleware(cfg.AuthTokenHash, cfg.TokenService, s.logger))
	}

	if handler := cfg.VaultHandler; handler != nil {
		v1.POST("/keys", handler.GenerateKeyHandler)
		v1.DELETE("/keys/:identifier", handler.DeleteKeyHandler)
		v1.POST("/keys/:identifier/encrypt", handler.EncryptHandler)
		v1.POST("/keys/:identifier/decrypt", handler.DecryptHandler)
		v1.POST("/files/encrypt", handler.EncryptFileHandler)
		v1.POST("/files/decrypt", handler.DecryptFileHandler)
		v1.POST("/export", handler.ExportHandler)
		v1.POST("/import", handler.ImportHandler)
		v1.POST("/integrity/checksum", handler.ChecksumFileHandler)
		v1.POST("/integrity/verify", handler.VerifyFileHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. Blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve requests.
// Checks database connectivity with a short timeout.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(pingCtx); err != nil {
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
