package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/farays/internal/handlers"
	"github.com/nfrund/farays/internal/middleware"
	"github.com/nfrund/farays/web/src/templates/layouts"
	"github.com/nfrund/farays/web/src/templates/pages"
)

// setupErrorHandling installs the central error handler. Echo HTTP errors keep
// their status and message; anything else is a 500 and is logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := middleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok && m != "" {
				message = m
			} else {
				message = http.StatusText(code)
			}
			if code >= http.StatusInternalServerError {
				logger.Error("Internal Server Error", "error", err, "status", code)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		if rerr := writeError(c, code, message); rerr != nil {
			logger.Error("Failed to write error response", "error", rerr, "original_error", err)
		}
	}
}

func writeError(c echo.Context, code int, message string) error {
	req := c.Request()
	switch {
	case req.Method == http.MethodHead:
		return c.NoContent(code)
	case strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON):
		return c.JSON(code, handlers.ErrorResponse{Code: errorCode(code), Message: message})
	case c.Echo().Renderer == nil:
		return c.String(code, message)
	case req.Header.Get("HX-Request") == "true":
		return c.Render(code, "", pages.Error(code, message))
	default:
		title := fmt.Sprintf("%d %s", code, http.StatusText(code))
		return c.Render(code, "", layouts.Minimal(title, pages.Error(code, message)))
	}
}

// errorCode turns a status into a stable machine-readable code, e.g. "not_found".
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return fmt.Sprintf("status_%d", status)
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}
