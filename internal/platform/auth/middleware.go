package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// Identity is the authenticated dentist attached to a request.
type Identity struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// Middleware validates the Authorization bearer token and attaches the
// decoded identity to the echo context. Requests without a valid token are
// rejected before any handler runs.
func Middleware(tm *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token não fornecido")
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				return echo.NewHTTPError(http.StatusUnauthorized, "token não fornecido")
			}

			claims, err := tm.Verify(tokenStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
			}

			id, err := uuid.Parse(claims.DentistID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
			}

			c.Set(identityKey, Identity{ID: id, Email: claims.Email, Name: claims.Name})
			return next(c)
		}
	}
}

// MustIdentity returns the authenticated identity or an unauthorized error
// suitable for returning straight from a handler.
func MustIdentity(c echo.Context) (Identity, error) {
	ident, ok := FromContext(c)
	if !ok {
		return Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token inválido ou expirado")
	}
	return ident, nil
}

// FromContext returns the authenticated identity set by Middleware.
func FromContext(c echo.Context) (Identity, bool) {
	ident, ok := c.Get(identityKey).(Identity)
	return ident, ok
}

// SetIdentity attaches an identity to the context. Used by tests to simulate
// an authenticated request without going through the middleware.
func SetIdentity(c echo.Context, ident Identity) {
	c.Set(identityKey, ident)
}
