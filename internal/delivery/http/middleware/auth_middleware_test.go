package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	mockservice "backoffice/internal/mocks/service"
	mockusecase "backoffice/internal/mocks/usecase"
)

type authMiddlewareFixture struct {
	middleware *AuthMiddleware
	tokenSvc   *mockservice.MockTokenService
	authUC     *mockusecase.MockAuthUsecase
}

func newAuthMiddlewareFixture(t *testing.T) *authMiddlewareFixture {
	t.Helper()

	tokenSvc := mockservice.NewMockTokenService(t)
	authUC := mockusecase.NewMockAuthUsecase(t)

	return &authMiddlewareFixture{
		middleware: NewAuthMiddleware(tokenSvc, authUC),
		tokenSvc:   tokenSvc,
		authUC:     authUC,
	}
}

// invoke runs the given middleware chain against a request and returns the
// error surfaced to the echo error handler plus the claims the handler saw.
func invoke(req *http.Request, chain ...echo.MiddlewareFunc) (error, *service.SessionClaims) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *service.SessionClaims
	handler := func(c echo.Context) error {
		seen = deliverycontext.GetSession(c)

		return c.NoContent(http.StatusOK)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	return handler(c), seen
}

func TestAuthenticate_MissingToken(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)

	err, _ := invoke(req, fixture.middleware.Authenticate)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)
	fixture.tokenSvc.On("Validate", "bad-token").Return(nil, errors.New("token is expired"))

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	err, _ := invoke(req, fixture.middleware.Authenticate)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_MalformedAuthorizationHeader(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)

	// A non-bearer Authorization header is ignored, and with no cookie either
	// the request is unauthenticated. Validate must never be called.
	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	err, _ := invoke(req, fixture.middleware.Authenticate)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	fixture.tokenSvc.AssertNotCalled(t, "Validate")
}

func TestAuthenticate_BearerToken(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)

	claims := &service.SessionClaims{
		AccountID: uuid.New(),
		Role:      entity.RoleAdmin,
		Email:     "admin@example.com",
		Name:      "Admin",
	}
	fixture.tokenSvc.On("Validate", "good-token").Return(claims, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	err, seen := invoke(req, fixture.middleware.Authenticate)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, claims.AccountID, seen.AccountID)
	assert.Equal(t, entity.RoleAdmin, seen.Role)
}

func TestAuthenticate_CookieFallback(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)

	claims := &service.SessionClaims{AccountID: uuid.New(), Role: entity.RoleAdmin}
	fixture.tokenSvc.On("Validate", "cookie-token").Return(claims, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})

	err, seen := invoke(req, fixture.middleware.Authenticate)
	require.NoError(t, err)
	require.NotNil(t, seen)
}

func TestAuthenticate_ReResolvesEmptyRole(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)

	// Tokens minted without a role claim get the current role looked up by
	// email before the gate runs.
	claims := &service.SessionClaims{
		AccountID: uuid.New(),
		Email:     "admin@example.com",
	}
	fixture.tokenSvc.On("Validate", "legacy-token").Return(claims, nil)
	fixture.authUC.On("ResolveRole", mock.Anything, "admin@example.com").
		Return(entity.RoleSuperAdmin, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.Header.Set("Authorization", "Bearer legacy-token")

	err, seen := invoke(req, fixture.middleware.Authenticate)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, entity.RoleSuperAdmin, seen.Role)
}

func TestAuthenticate_ToleratesUnknownEmailOnReResolve(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)

	claims := &service.SessionClaims{
		AccountID: uuid.New(),
		Email:     "ghost@example.com",
	}
	fixture.tokenSvc.On("Validate", "orphan-token").Return(claims, nil)
	fixture.authUC.On("ResolveRole", mock.Anything, "ghost@example.com").
		Return(entity.Role(""), domainerrors.ErrAccountNotFound)

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
	req.Header.Set("Authorization", "Bearer orphan-token")

	// Authenticate still passes; RequireBackOffice is what rejects the
	// roleless session.
	err, seen := invoke(req, fixture.middleware.Authenticate)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Empty(t, seen.Role)
}

func TestRequireBackOffice(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		wantErr error
	}{
		{name: "admin allowed", role: entity.RoleAdmin, wantErr: nil},
		{name: "super admin allowed", role: entity.RoleSuperAdmin, wantErr: nil},
		{name: "regular user denied", role: entity.RoleUser, wantErr: domainerrors.ErrAccessDenied},
		{name: "empty role denied", role: entity.Role(""), wantErr: domainerrors.ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newAuthMiddlewareFixture(t)

			claims := &service.SessionClaims{AccountID: uuid.New(), Role: tt.role}
			fixture.tokenSvc.On("Validate", "token").Return(claims, nil)

			req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)
			req.Header.Set("Authorization", "Bearer token")

			err, _ := invoke(req, fixture.middleware.Authenticate, fixture.middleware.RequireBackOffice)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireBackOffice_WithoutSession(t *testing.T) {
	fixture := newAuthMiddlewareFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/jobs", nil)

	err, _ := invoke(req, fixture.middleware.RequireBackOffice)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
