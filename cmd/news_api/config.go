package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/DjordjeVuckovic/fhs-news/internal/api/server"
	"github.com/DjordjeVuckovic/fhs-news/internal/errlog"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage/factory"
	"github.com/DjordjeVuckovic/fhs-news/pkg/config/env"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath  = "config.yaml"
	defaultRedirectURL = "https://splittikin.github.io/FHS-News-Docs/"
	defaultPagesDir    = "pages"
)

type AppConfig struct {
	ENV        string
	ConfigPath string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV:        os.Getenv("ENV"),
		ConfigPath: env.GetOrDefault("CONFIG_PATH", defaultConfigPath),
	}
}

// NewsAPIConfig is the flat config.yaml document. Environment variables
// override whatever the file sets.
type NewsAPIConfig struct {
	Server        server.Config         `yaml:",inline"`
	StorageConfig factory.StorageConfig `yaml:",inline"`
	ErrorLog      errlog.Config         `yaml:",inline"`

	AttachmentsURL string `yaml:"attachments_url"`
	RedirectURL    string `yaml:"redirect_url"`
	PagesDir       string `yaml:"pages_dir"`
	LogLevel       string `yaml:"log_level"`
}

func (as *AppConfig) Load() (*NewsAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	cfg := &NewsAPIConfig{}
	if err := cfg.readFile(as.ConfigPath); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readFile decodes path into cfg. A missing file leaves cfg untouched.
func (cfg *NewsAPIConfig) readFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Config file not found, using environment only", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (cfg *NewsAPIConfig) applyEnv() {
	cfg.Server.ApplyEnv()
	cfg.StorageConfig.ApplyEnv()
	cfg.ErrorLog.ApplyEnv()

	cfg.AttachmentsURL = env.GetOrDefault("ATTACHMENTS_URL", cfg.AttachmentsURL)
	cfg.RedirectURL = env.GetOrDefault("REDIRECT_URL", cfg.RedirectURL)
	cfg.PagesDir = env.GetOrDefault("PAGES_DIR", cfg.PagesDir)
	cfg.LogLevel = env.GetOrDefault("LOG_LEVEL", cfg.LogLevel)

	if cfg.RedirectURL == "" {
		cfg.RedirectURL = defaultRedirectURL
	}
	if cfg.PagesDir == "" {
		cfg.PagesDir = defaultPagesDir
	}
}

func (cfg *NewsAPIConfig) Validate() error {
	if err := cfg.Server.Validate(); err != nil {
		return err
	}
	if err := cfg.StorageConfig.Validate(); err != nil {
		return err
	}
	if err := cfg.ErrorLog.Validate(); err != nil {
		return err
	}

	if cfg.AttachmentsURL == "" {
		return errors.New("attachments_url is required")
	}
	u, err := url.Parse(cfg.AttachmentsURL)
	if err != nil || !u.IsAbs() {
		return fmt.Errorf("attachments_url must be an absolute URL, got %q", cfg.AttachmentsURL)
	}
	return nil
}
