package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	_ "github.com/DjordjeVuckovic/fhs-news/docs"
	"github.com/DjordjeVuckovic/fhs-news/internal/apperr"
	"github.com/DjordjeVuckovic/fhs-news/internal/errlog"
	mw "github.com/DjordjeVuckovic/fhs-news/pkg/middleware"
	pkgserver "github.com/DjordjeVuckovic/fhs-news/pkg/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type Server struct {
	Echo *echo.Echo

	cfg           *Config
	healthChecker pkgserver.HealthChecker
	healthPath    string

	shutdown chan struct{}
}

func New(cfg *Config, healthChecker pkgserver.HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.DisableHTTP2 = !cfg.UseHttp2

	return &Server{
		Echo:          e,
		cfg:           cfg,
		healthChecker: healthChecker,
		shutdown:      make(chan struct{}),
	}
}

func (s *Server) SetupMiddlewares() *Server {
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(mw.Logger(mw.WithSkipper(func(c echo.Context) bool {
		return s.healthPath != "" && c.Path() == s.healthPath
	})))
	s.Echo.Use(middleware.Recover())
	return s
}

func (s *Server) SetupErrorHandler(errLog errlog.Store, pages *apperr.ErrorPages) *Server {
	s.Echo.HTTPErrorHandler = apperr.GlobalErrorHandler(errLog, pages)
	return s
}

func (s *Server) SetupHealthChecks(path string) *Server {
	s.healthPath = path
	s.Echo.GET(path, func(c echo.Context) error {
		if !s.healthChecker.Healthy(c.Request().Context()) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return s
}

func (s *Server) SetupOpenApi(path string) *Server {
	if !s.cfg.SwaggerEnabled {
		return s
	}
	s.Echo.GET(path, echoSwagger.WrapHandler)
	slog.Info("OpenAPI docs enabled", "path", strings.TrimSuffix(path, "*")+"index.html")
	return s
}

// ShutdownSignal is closed when shutdown starts. In-flight
// requests may still be draining.
func (s *Server) ShutdownSignal() <-chan struct{} {
	return s.shutdown
}

// Start serves until SIGINT, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "address", "http://"+s.cfg.Address()+"/", "home", "http://"+s.cfg.Address()+"/api/home")
		if err := s.Echo.Start(s.cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		close(s.shutdown)
		return err
	}

	close(s.shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(ctx); err != nil {
		return err
	}
	return nil
}
