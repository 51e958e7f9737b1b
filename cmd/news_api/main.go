// Package main FHS News API
// @title FHS News API
// @version 1.0
// @description Read-only JSON API serving school news articles, clubs, alerts, weather and lunch
// @contact.name API Support
// @contact.url https://splittikin.github.io/FHS-News-Docs/
// @BasePath /
package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/fhs-news/internal/api/router"
	"github.com/DjordjeVuckovic/fhs-news/internal/api/server"
	"github.com/DjordjeVuckovic/fhs-news/internal/apperr"
	"github.com/DjordjeVuckovic/fhs-news/internal/errlog"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage/factory"
	"github.com/DjordjeVuckovic/fhs-news/pkg/logging"
	pkgserver "github.com/DjordjeVuckovic/fhs-news/pkg/server"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	logging.InitLogger(cfg.LogLevel)

	reader, err := factory.NewReader(cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create content reader", "error", err)
		os.Exit(1)
		return
	}

	errLog, err := errlog.NewStore(cfg.ErrorLog)
	if err != nil {
		slog.Error("Failed to open error log", "driver", cfg.ErrorLog.Driver, "error", err)
		os.Exit(1)
		return
	}

	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if cfg.StorageConfig.Type == storage.Disk {
		healthChecker = pkgserver.NewDirHealthChecker(cfg.StorageConfig.Root)
	}

	s := server.New(&cfg.Server, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler(errLog, apperr.NewErrorPages(cfg.PagesDir)).
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	feedRouter := router.NewFeedRouter(s.Echo, reader, router.Config{
		AttachmentsURL: cfg.AttachmentsURL,
		RedirectURL:    cfg.RedirectURL,
		PagesDir:       cfg.PagesDir,
	})
	feedRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining in-flight requests...")
	}()

	err = s.Start()
	// Start returns once in-flight requests have drained.
	if cerr := errLog.Close(); cerr != nil {
		slog.Error("Failed to close error log", "error", cerr)
	}
	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
