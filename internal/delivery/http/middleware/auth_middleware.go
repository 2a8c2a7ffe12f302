package middleware

import (
	"strings"

	deliverycontext "backoffice/internal/delivery/context"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionCookieName is the fallback cookie checked when no Authorization
// header is present, matching browser-based clients.
const SessionCookieName = "session_token"

// AuthMiddleware is the role gate in front of the protected route groups.
// It validates the session token and requires a back-office role before any
// handler runs.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC}
}

// Authenticate validates the session token from the Authorization header or
// the session cookie and stashes the claims in the request context.
//
// Tokens minted before the account's role was resolved carry an empty role
// claim; those are re-resolved by email here so the authorization predicate
// always sees the current role.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired session token")
		}

		if claims.Role == "" && claims.Email != "" {
			role, err := m.authUC.ResolveRole(c.Request().Context(), claims.Email)
			if err != nil && !errors.Is(err, domainerrors.ErrAccountNotFound) {
				return errors.Wrap(err, "failed to resolve role")
			}
			claims.Role = role
		}

		deliverycontext.SetSession(c, claims)

		return next(c)
	}
}

// RequireBackOffice allows only admin and super_admin sessions through. It
// must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireBackOffice(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := deliverycontext.GetSession(c)
		if claims == nil {
			return domainerrors.ErrUnauthenticated
		}

		if !claims.Role.CanAccessBackOffice() {
			return domainerrors.ErrAccessDenied
		}

		return next(c)
	}
}

// extractToken reads the bearer token, falling back to the session cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}

		return ""
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
