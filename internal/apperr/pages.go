package apperr

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ErrorPages serves <dir>/error/<code>.html, falling back to <dir>/error/generic.html.
type ErrorPages struct {
	dir string
}

func NewErrorPages(dir string) *ErrorPages {
	return &ErrorPages{dir: dir}
}

func (p *ErrorPages) Render(c echo.Context, code int) error {
	for _, name := range []string{strconv.Itoa(code) + ".html", "generic.html"} {
		data, err := os.ReadFile(filepath.Join(p.dir, "error", name))
		if err == nil {
			return c.HTMLBlob(code, data)
		}
	}
	return c.String(code, http.StatusText(code))
}
