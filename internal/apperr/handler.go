package apperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"toolhub/internal/response"
)

// EchoErrorHandler is the single boundary that turns any error escaping a
// handler into the error envelope. The HTTP status always equals the
// envelope's statusCode.
func EchoErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		var appErr *Error
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.StatusCode
			message = appErr.Message
		case errors.As(err, &echoErr):
			// middleware errors, e.g. the JWT gate rejecting a request
			status = echoErr.Code
			if msg, ok := echoErr.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			if werr := c.NoContent(status); werr != nil {
				log.Error().Err(werr).Msg("write error response")
			}
			return
		}

		if werr := response.JSON(c, status, nil, message); werr != nil {
			log.Error().Err(werr).Msg("write error response")
		}
	}
}
