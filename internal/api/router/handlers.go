package router

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/fhs-news/internal/apperr"
	"github.com/DjordjeVuckovic/fhs-news/internal/query"
	"github.com/DjordjeVuckovic/fhs-news/internal/storage"
	"github.com/DjordjeVuckovic/fhs-news/pkg/pagination"
	"github.com/labstack/echo/v4"
)

// homeHandler godoc
// @Summary Home feed
// @Description Lunch, alerts (newest first), weather, then articles, paginated as one list
// @Tags feed
// @Produce json
// @Param quantity query int false "Page size" default(5)
// @Param position query int false "Offset into the feed" default(0)
// @Success 200 {array} object
// @Failure 400 {object} apperr.Body
// @Failure 500 {object} apperr.Body
// @Router /api/home [get]
func (r *FeedRouter) homeHandler(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	items, err := r.assembler.BuildHome(c.Request().Context(), page)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
	return c.JSON(http.StatusOK, items)
}

// feedClubsHandler godoc
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Param quantity query int false "Page size" default(5)
// @Param position query int false "Offset" default(0)
// @Success 200 {array} domain.Club
// @Failure 400 {object} apperr.Body
// @Failure 500 {object} apperr.Body
// @Router /api/feedClubs [get]
func (r *FeedRouter) feedClubsHandler(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	clubs, err := r.engine.List(c.Request().Context(), storage.Clubs, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clubs)
}

// articleHandler godoc
// @Summary Get an article
// @Tags articles
// @Produce json
// @Param id query string false "Article folder id"
// @Param id path string false "Article folder id, used when the query parameter is absent"
// @Success 200 {object} domain.Article
// @Failure 400 {object} apperr.Body
// @Failure 404 {object} apperr.Body
// @Router /api/article/{id} [get]
func (r *FeedRouter) articleHandler(c echo.Context) error {
	return r.single(c, storage.Articles, "Article")
}

// clubHandler godoc
// @Summary Get a club
// @Tags clubs
// @Produce json
// @Param id query string false "Club folder id"
// @Param id path string false "Club folder id, used when the query parameter is absent"
// @Success 200 {object} domain.Club
// @Failure 400 {object} apperr.Body
// @Failure 404 {object} apperr.Body
// @Router /api/club/{id} [get]
func (r *FeedRouter) clubHandler(c echo.Context) error {
	return r.single(c, storage.Clubs, "Club")
}

func (r *FeedRouter) single(c echo.Context, coll storage.Collection, noun string) error {
	id := c.QueryParam("id")
	if id == "" {
		id = c.Param("id")
	}
	if id == "" {
		return apperr.NewValidation("Argument id is required.")
	}

	slog.Debug("Single item request", "collection", coll, "id", id)

	item, err := r.reader.ReadRecord(c.Request().Context(), coll, id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFoundWrap(fmt.Sprintf("%s %s does not exist or is no longer available.", noun, id), err)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, r.enricher.Enrich(item))
}

// searchDateHandler godoc
// @Summary Articles posted within a time range
// @Description Inclusive range in epoch seconds; range_end defaults to range_start + 86400. Oldest first, not paginated.
// @Tags articles
// @Produce json
// @Param range_start query int true "Range start"
// @Param range_end query int false "Range end"
// @Success 200 {array} domain.Article
// @Failure 400 {object} apperr.Body
// @Failure 500 {object} apperr.Body
// @Router /api/search_date [get]
func (r *FeedRouter) searchDateHandler(c echo.Context) error {
	rng, err := query.ParseDateRange(c.QueryParam("range_start"), c.QueryParam("range_end"))
	if err != nil {
		return err
	}

	articles, err := r.engine.SearchDate(c.Request().Context(), rng)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// searchHandler godoc
// @Summary Case-insensitive substring search over articles
// @Tags articles
// @Produce json
// @Param query query string true "Text to look for"
// @Param quantity query int false "Page size" default(5)
// @Param position query int false "Offset" default(0)
// @Success 200 {array} domain.Article
// @Failure 400 {object} apperr.Body
// @Failure 500 {object} apperr.Body
// @Router /api/search [get]
func (r *FeedRouter) searchHandler(c echo.Context) error {
	if !c.QueryParams().Has("query") {
		return apperr.NewValidation("Argument query is required.")
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	articles, err := r.engine.SearchText(c.Request().Context(), c.QueryParam("query"), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articles)
}

// weatherHandler godoc
// @Summary Current weather extra
// @Tags extras
// @Produce json
// @Success 200 {object} object
// @Failure 500 {object} apperr.Body
// @Router /api/weather [get]
func (r *FeedRouter) weatherHandler(c echo.Context) error {
	return r.extra(c, storage.Weather)
}

// lunchHandler godoc
// @Summary Current lunch extra
// @Tags extras
// @Produce json
// @Success 200 {object} object
// @Failure 500 {object} apperr.Body
// @Router /api/lunch [get]
func (r *FeedRouter) lunchHandler(c echo.Context) error {
	return r.extra(c, storage.Lunch)
}

func (r *FeedRouter) extra(c echo.Context, name storage.ExtraName) error {
	item, err := r.reader.ReadExtra(c.Request().Context(), name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (r *FeedRouter) unknownVerbHandler(c echo.Context) error {
	return apperr.NewValidation(fmt.Sprintf("Unknown endpoint %s.", c.Request().URL.Path))
}

func parsePage(c echo.Context) (pagination.OffsetRequest, error) {
	page, err := pagination.ParseOffset(c.QueryParam("position"), c.QueryParam("quantity"))
	if err != nil {
		return pagination.OffsetRequest{}, apperr.NewValidation(err.Error())
	}
	return page, nil
}
