package context

import (
	"backoffice/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// GetSession extracts the authenticated session claims from echo.Context.
// It returns nil when the request is unauthenticated.
func GetSession(c echo.Context) *service.SessionClaims {
	val := c.Get(string(KeySession))
	if claims, ok := val.(*service.SessionClaims); ok {
		return claims
	}

	return nil
}

// SetSession stores the authenticated session claims in echo.Context.
func SetSession(c echo.Context, claims *service.SessionClaims) {
	c.Set(string(KeySession), claims)
}
