package apperr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/fhs-news/internal/errlog"
	"github.com/labstack/echo/v4"
)

const (
	errorLogTimeout = 5 * time.Second

	// statusClientClosedRequest is nginx's non-standard code for a client that
	// disconnected before the response was written.
	statusClientClosedRequest = 499
)

// GlobalErrorHandler writes the response for every error a handler returns.
// Client errors echo their message; anything else is persisted to errLog and
// answered with a generic ServerError body. Non-API 404s get an HTML page.
func GlobalErrorHandler(errLog errlog.Store, pages *ErrorPages) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, ClientBody(ve.Message))
			return
		}

		var nf *NotFoundError
		if errors.As(err, &nf) {
			_ = c.JSON(http.StatusNotFound, ClientBody(nf.Message))
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
			if !isAPIRequest(c) && pages != nil {
				_ = pages.Render(c, he.Code)
				return
			}
			_ = c.JSON(he.Code, ClientBody(fmt.Sprintf("%v", he.Message)))
			return
		}

		if clientGone(c, err) {
			slog.Debug("Client disconnected", "uri", c.Request().RequestURI, "error", err)
			_ = c.NoContent(statusClientClosedRequest)
			return
		}

		persist(c, errLog, err)
		_ = c.JSON(http.StatusInternalServerError, ServerBody())
	}
}

func persist(c echo.Context, errLog errlog.Store, err error) {
	req := c.Request()
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	slog.Error("Unhandled error", "uri", req.RequestURI, "request_id", requestID, "error", err)
	if errLog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(req.Context()), errorLogTimeout)
	defer cancel()

	entry := errlog.NewEntry(time.Now(), req.RequestURI, requestID, err)
	if werr := errLog.Write(ctx, entry); werr != nil {
		slog.Error("Failed to persist error entry", "error", werr)
	}
}

func clientGone(c echo.Context, err error) bool {
	return errors.Is(err, context.Canceled) && c.Request().Context().Err() != nil
}

func isAPIRequest(c echo.Context) bool {
	path := c.Request().URL.Path
	return path == "/api" || strings.HasPrefix(path, "/api/")
}
