package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/core/ports"
)

// Auth validates the bearer token and injects the account claims into
// the request context. A missing header and a malformed or invalid
// token are reported as distinct failures; an invalid token never
// reveals whether the signature or the expiry was at fault.
func Auth(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header must be provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization header must be 'Bearer <token>'")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("account_id", claims.AccountID)
			c.Set("email", claims.Email)
			c.Set("username", claims.Username)

			return next(c)
		}
	}
}
