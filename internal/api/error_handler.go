package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userhub/account-service/internal/core/domain"
)

// errorBody is the canonical error envelope for all API errors.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps auth failures escaping a handler to their status and code.
//   - Logs unexpected errors internally without leaking details.
//   - Renders a consistent JSON envelope: {"error": ..., "code": ...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		// Echo's own errors (middleware rejections, 404 from router).
		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorBody{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		// Coded auth failures that a handler let bubble up.
		var ae *domain.AuthError
		if errors.As(err, &ae) {
			_ = c.JSON(statusForCode(ae.Code), errorBody{Error: ae.Message, Code: ae.Code})
			return
		}

		// Unexpected error: log the real cause, return a generic message.
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		_ = c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func statusForCode(code string) int {
	switch code {
	case "USER_ALREADY_EXISTS":
		return http.StatusConflict
	case "USER_NOT_FOUND":
		return http.StatusNotFound
	case "INCORRECT_PASSWORD":
		return http.StatusUnauthorized
	case "ACCOUNT_LOCKED":
		return http.StatusLocked
	default:
		return http.StatusBadRequest
	}
}
