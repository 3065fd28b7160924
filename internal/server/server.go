package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/wallet-import/internal/config"
	"github.com/grachmannico95/wallet-import/internal/handler"
	"github.com/grachmannico95/wallet-import/internal/middleware"
	"github.com/grachmannico95/wallet-import/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echo                *echo.Echo
	cfg                 *config.Config
	logger              *logger.Logger
	gatherer            prometheus.Gatherer
	importHandler       *handler.ImportHandler
	notificationHandler *handler.NotificationHandler
	healthHandler       *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	gatherer prometheus.Gatherer,
	importHandler *handler.ImportHandler,
	notificationHandler *handler.NotificationHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:                e,
		cfg:                 cfg,
		logger:              log,
		gatherer:            gatherer,
		importHandler:       importHandler,
		notificationHandler: notificationHandler,
		healthHandler:       healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	if s.cfg.Server.BodyLimit != "" {
		s.echo.Use(echoMiddleware.BodyLimit(s.cfg.Server.BodyLimit))
	}
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)
	if s.gatherer != nil {
		s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := s.echo.Group("/api/v1", middleware.Auth(middleware.AuthConfig{
		JWTSecret:     s.cfg.Auth.JWTSecret,
		DefaultUserID: s.cfg.Auth.DefaultUserID,
	}))

	api.POST("/imports", s.importHandler.Create)
	api.GET("/imports/:id", s.importHandler.Get)
	api.DELETE("/imports/:id", s.importHandler.Delete)
	api.PUT("/imports/:id/mapping", s.importHandler.SetMapping)
	api.POST("/imports/:id/mapping/reset", s.importHandler.ResetMapping)
	api.POST("/imports/:id/run", s.importHandler.StartRun)
	api.GET("/imports/:id/run", s.importHandler.GetRun)
	api.GET("/imports/:id/run/errors.csv", s.importHandler.ExportErrors)

	api.GET("/notifications", s.notificationHandler.List)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
