// Package httpx shapes every response of the API into the envelope the
// clients expect: a success boolean plus either a payload key or an "erro"
// message.
package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// OK writes a success envelope with the given payload keys.
func OK(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// ErrorHandler converts every error escaping a handler into the JSON error
// envelope. Internal failures are logged with detail server-side and
// presented as a generic message.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := "erro interno do servidor"

		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}
		}

		if status >= http.StatusInternalServerError {
			rid, _ := c.Get("request_id").(string)
			logger.Error().
				Err(err).
				Str("request_id", rid).
				Str("path", c.Request().URL.Path).
				Msg("internal error")
			msg = "erro interno do servidor"
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, echo.Map{"success": false, "erro": msg})
	}
}
