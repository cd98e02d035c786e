package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/geladeira/backend/config"
	"github.com/pageza/geladeira/backend/internal/api"
	"github.com/pageza/geladeira/backend/internal/middleware"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
	cfg    *config.Config
}

// New creates a new server instance with every route registered
func New(cfg *config.Config, svc api.Services, logger *zap.Logger) *Server {
	gin.SetMode(cfg.Environment.GinMode())

	router := gin.New()
	router.Use(
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(logger),
		middleware.CORS(cfg.CORSOrigins),
	)

	api.SetupAPI(router, svc, logger)

	return &Server{
		router: router,
		logger: logger,
		cfg:    cfg,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until the server is shut down
func (s *Server) Start() error {
	s.logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server within the configured timeout
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
