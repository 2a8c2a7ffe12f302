package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/config"
	"backoffice/internal/domain/entity"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{
		Session: config.SessionConfig{
			Secret: "test-secret",
			TTL:    time.Hour,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	account := &entity.Account{
		ID:    uuid.New(),
		Name:  "Test Admin",
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}

	token, err := svc.Issue(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Name, claims.Name)
}

func TestJWTService_Validate_RejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	other := &jwtService{secret: "different-secret", ttl: time.Hour}
	token, err := other.Issue(&entity.Account{ID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t)
	svc.ttl = -time.Minute

	token, err := svc.Issue(&entity.Account{ID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsNonHMACAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	// alg=none tokens must never pass, whatever their claims say.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": entity.RoleSuperAdmin.String(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsMalformedSubject(t *testing.T) {
	svc := newTestJWTService(t)

	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := signed.SignedString([]byte(svc.secret))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_ToleratesMissingRole(t *testing.T) {
	svc := newTestJWTService(t)

	// Older tokens may lack the role claim; validation still succeeds and the
	// middleware re-resolves the role by email.
	accountID := uuid.New()
	signed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   accountID.String(),
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	token, err := signed.SignedString([]byte(svc.secret))
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Empty(t, claims.Role)
	assert.Equal(t, "admin@example.com", claims.Email)
}
