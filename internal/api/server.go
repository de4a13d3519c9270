package api

import (
	"net/http"

	"github.com/Sachin-MethodTech/analytics-dashboard/internal/api/handler"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/api/middleware"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/config"
	"github.com/Sachin-MethodTech/analytics-dashboard/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wraps the HTTP server and dependencies.
type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// ServerDeps holds all dependencies for the API server.
type ServerDeps struct {
	Config      *config.Config
	FeedService *service.FeedService
	ViewService *service.ViewService
	Logger      *zap.Logger
}

// NewServer creates a new API server with all routes configured.
func NewServer(deps ServerDeps) *Server {
	logger := deps.Logger

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware.
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", middleware.RequestIDHeader},
	}))

	// Health check.
	r.GET("/api/health", handler.Health)

	// Feed relay and derived views.
	feedHandler := handler.NewFeedHandler(deps.FeedService, logger)
	recordsHandler := handler.NewRecordsHandler(
		deps.FeedService,
		deps.ViewService,
		deps.Config.TimezoneLocation(),
		logger,
	)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/analytics", feedHandler.Analytics)
		apiGroup.GET("/records", recordsHandler.Records)
		apiGroup.GET("/users", recordsHandler.Users)
		apiGroup.GET("/applications", recordsHandler.Applications)
	}

	return &Server{
		router: r,
		logger: logger,
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts the HTTP server.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.router.Run(addr)
}
