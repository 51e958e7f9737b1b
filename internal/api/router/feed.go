package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/fhs-news/internal/enrich"
	"github.com/DjordjeVuckovic/fhs-news/internal/feed"
	"github.com/DjordjeVuckovic/fhs-news/internal/query"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	faviconFile = "bruh.png"
	filesPrefix = "/files/"
)

type FeedRouter struct {
	e      *echo.Echo
	cfg    Config
	reader storage.Reader

	enricher  *enrich.Enricher
	engine    *query.Engine
	assembler *feed.Assembler
}

func NewFeedRouter(e *echo.Echo, reader storage.Reader, cfg Config) *FeedRouter {
	enricher := enrich.New(cfg.AttachmentsURL)

	return &FeedRouter{
		e:         e,
		cfg:       cfg,
		reader:    reader,
		enricher:  enricher,
		engine:    query.NewEngine(reader, enricher),
		assembler: feed.NewAssembler(reader, enricher),
	}
}

// Bind registers every route. Outside /files/ a trailing slash is ignored, so
// /api/home/ is /api/home.
func (r *FeedRouter) Bind() {
	r.e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, filesPrefix)
		},
	}))

	pages := os.DirFS(r.cfg.PagesDir)
	r.e.GET("/", r.redirectHandler)
	r.e.FileFS("/favicon.ico", faviconFile, pages)
	// Paths that leave PagesDir are not found.
	r.e.StaticFS(filesPrefix, pages)

	api := r.e.Group("/api")
	api.GET("/article", r.articleHandler)
	api.GET("/article/:id", r.articleHandler)
	api.GET("/home", r.homeHandler)
	api.GET("/feedClubs", r.feedClubsHandler)
	api.GET("/club", r.clubHandler)
	api.GET("/club/:id", r.clubHandler)
	api.GET("/search_date", r.searchDateHandler)
	api.GET("/weather", r.weatherHandler)
	api.GET("/lunch", r.lunchHandler)
	api.GET("/search", r.searchHandler)
	api.GET("", r.unknownVerbHandler)
	api.GET("/*", r.unknownVerbHandler)
}

func (r *FeedRouter) redirectHandler(c echo.Context) error {
	return c.Redirect(http.StatusFound, r.cfg.RedirectURL)
}
