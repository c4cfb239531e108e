// Package http provides HTTP server implementation and request handlers.
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

	addressHTTP "github.com/jo4ovms/psychology-project/internal/address/http"
	appointmentHTTP "github.com/jo4ovms/psychology-project/internal/appointment/http"
	clientHTTP "github.com/jo4ovms/psychology-project/internal/client/http"
	"github.com/jo4ovms/psychology-project/internal/config"
	consultationHTTP "github.com/jo4ovms/psychology-project/internal/consultation/http"
	"github.com/jo4ovms/psychology-project/internal/metrics"
	userHTTP "github.com/jo4ovms/psychology-project/internal/user/http"
)

// Handlers groups the resource handlers mounted under /v1.
type Handlers struct {
	User         *userHTTP.UserHandler
	Client       *clientHTTP.ClientHandler
	Address      *addressHTTP.AddressHandler
	Appointment  *appointmentHTTP.AppointmentHandler
	Consultation *consultationHTTP.ConsultationHandler
}

// Server represents the HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates the API server. Call SetupRouter before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

// SetupRouter builds the Gin engine with middleware, health endpoints and the /v1
// resource routes. metricsProvider may be nil when metrics are disabled. ctx bounds
// the lifetime of background middleware state.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handlers Handlers,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	registerRoutes(v1, handlers)

	s.router = router
}

func registerRoutes(v1 *gin.RouterGroup, handlers Handlers) {
	users := v1.Group("/users")
	if h := handlers.User; h != nil {
		users.POST("", h.CreateHandler)
		users.GET("", h.ListHandler)
		users.GET("/:user_id", h.GetHandler)
		users.PUT("/:user_id", h.UpdateHandler)
		users.DELETE("/:user_id", h.DeleteHandler)
	}

	if h := handlers.Client; h != nil {
		clients := users.Group("/:user_id/clients")
		clients.POST("", h.CreateHandler)
		clients.GET("", h.ListHandler)
		clients.GET("/:client_id", h.GetHandler)
		clients.PUT("/:client_id", h.UpdateHandler)
		clients.DELETE("/:client_id", h.DeleteHandler)
	}

	if h := handlers.Address; h != nil {
		addresses := users.Group("/:user_id/clients/:client_id/addresses")
		addresses.POST("", h.CreateHandler)
		addresses.GET("", h.ListHandler)
		addresses.GET("/:address_id", h.GetHandler)
		addresses.PUT("/:address_id", h.UpdateHandler)
		addresses.DELETE("/:address_id", h.DeleteHandler)
	}

	if h := handlers.Appointment; h != nil {
		appointments := users.Group("/:user_id/appointments")
		appointments.POST("", h.CreateHandler)
		appointments.GET("", h.ListHandler)
		appointments.GET("/:appointment_id", h.GetHandler)
		appointments.PUT("/:appointment_id", h.UpdateHandler)
		appointments.DELETE("/:appointment_id", h.DeleteHandler)
	}

	if h := handlers.Consultation; h != nil {
		consultations := users.Group("/:user_id/consultations")
		consultations.POST("", h.CreateHandler)
		consultations.GET("", h.ListHandler)
		consultations.GET("/:consultation_id", h.GetHandler)
		consultations.PUT("/:consultation_id", h.UpdateHandler)
		consultations.DELETE("/:consultation_id", h.DeleteHandler)
	}
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	return listenAndServe(s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports that the process is alive.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database is reachable.
func (s *Server) readinessHandler(c *gin.Context) {
	dbStatus := "ok"
	if s.db == nil {
		dbStatus = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("readiness check failed", slog.Any("error", err))
			dbStatus = "error"
		}
	}

	if dbStatus != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": dbStatus},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": dbStatus},
	})
}
