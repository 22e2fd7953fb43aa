package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/iliyamo/fyyur/web"
)

// ErrorHandler replaces echo's default error handler.  Browsers get the
// 404 or 500 page, JSON clients get {"success": false, "error": ...}.
// Store errors that reach it are logged; HTTP errors are not.
func (h *Handler) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := http.StatusText(status)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(status)
		}
	} else {
		c.Logger().Errorj(log.JSON{"op": c.Path(), "error": err.Error(), "request_id": requestID(c)})
	}

	var out error
	switch {
	case c.Request().Method == http.MethodHead:
		out = c.NoContent(status)
	case wantsJSON(c):
		out = c.JSON(status, deleteResult{Error: msg})
	default:
		tmpl := "errors/4xx.html"
		switch {
		case status == http.StatusNotFound:
			tmpl = "errors/404.html"
		case status >= http.StatusInternalServerError:
			tmpl = "errors/500.html"
		}
		out = h.page(c, status, tmpl, web.Page{
			Title: http.StatusText(status),
			Data:  echo.Map{"code": status, "message": msg},
		})
	}
	if out != nil {
		c.Logger().Error(out)
	}
}
