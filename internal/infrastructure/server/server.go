package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/lumenward/beacon/internal/api/http"
	"github.com/lumenward/beacon/internal/api/middleware"
	"github.com/lumenward/beacon/internal/infrastructure/config"
	"github.com/lumenward/beacon/internal/infrastructure/logging"
	"github.com/lumenward/beacon/internal/infrastructure/monitoring"
	"github.com/lumenward/beacon/internal/infrastructure/tracing"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// New creates a new server instance
func New(cfg *config.Config, logger *logging.Logger) *Server {
	metrics := monitoring.NewMetrics()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Recovery sits outside tracing so a panicking handler still gets
	// its span closed before the 500 is written.
	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(cfg.Tracing.ServiceVersion)
	router.GET("/", handlers.Root)
	router.GET("/hello/:name", handlers.Hello)
	router.GET("/healthz", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router:  router,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close shuts down server-owned resources
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	// Sync logger before exit
	s.logger.Sync()

	return nil
}
