// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
//
// Sessions are stateless: nothing is persisted server-side and there is no
// revocation list. Rotating the signing secret is the only global revocation.
type jwtService struct {
	secret string        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Session.Secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: cfg.Session.Secret,
		ttl:    cfg.Session.TTL,
	}, nil
}

// Issue creates a signed session token embedding the account's id and role.
func (s *jwtService) Issue(account *entity.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.ID.String(),        // Subject (who the token is for)
		"role":  account.Role.String(),      // Privilege level read by the role gate
		"email": account.Email,              // Used to re-resolve the role if it is ever absent
		"name":  account.Name,               // Display name for the back-office UI
		"iat":   now.Unix(),                 // Issued At
		"exp":   now.Add(s.ttl).Unix(),      // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the validity of a token string and returns its claims.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type in session token")
	}

	sub, _ := mapClaims["sub"].(string)
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in session token")
	}

	role, _ := mapClaims["role"].(string)
	email, _ := mapClaims["email"].(string)
	name, _ := mapClaims["name"].(string)

	return &service.SessionClaims{
		AccountID: accountID,
		Role:      entity.Role(role),
		Email:     email,
		Name:      name,
	}, nil
}
