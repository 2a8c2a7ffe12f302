// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/pkg/errors"
)

// idTokenClaims represents the claims in a Google ID token
type idTokenClaims struct {
	Iss           string `json:"iss"`            // Issuer
	Sub           string `json:"sub"`            // Subject (user ID)
	Aud           string `json:"aud"`            // Audience (client ID)
	Exp           int64  `json:"exp"`            // Expiration time
	Iat           int64  `json:"iat"`            // Issued at
	Email         string `json:"email"`          // User's email
	EmailVerified bool   `json:"email_verified"` // Email verification status
	Name          string `json:"name"`           // User's full name
	Picture       string `json:"picture"`        // User's profile picture
}

// Verifier implements the service.IdentityVerifier interface for Google.
type Verifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier creates a new Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.IdentityVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &Verifier{
		clientID: clientID,
		logger:   logger,
	}
}

// VerifyIDToken implements the service.IdentityVerifier interface.
//
// Verification alone never grants back-office access; the sign-in gate still
// cross-checks the asserted email against the local account store.
func (v *Verifier) VerifyIDToken(_ context.Context, idToken string) (*service.ExternalIdentity, error) {
	claims, err := v.parseIDToken(idToken)
	if err != nil {
		v.logger.Warn("Failed to parse Google ID token", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if err := v.verifyTokenClaims(claims); err != nil {
		v.logger.Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	identity := &service.ExternalIdentity{
		Subject:       claims.Sub,
		Email:         claims.Email,
		Name:          claims.Name,
		AvatarURL:     claims.Picture,
		EmailVerified: claims.EmailVerified,
		Provider:      entity.ProviderTypeGoogle,
	}

	v.logger.Debug("Google ID token verified",
		slog.String("subject", identity.Subject),
		slog.String("email", identity.Email))

	return identity, nil
}

// Provider returns the provider type this verifier handles.
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// parseIDToken parses the JWT token and extracts claims
func (v *Verifier) parseIDToken(token string) (*idTokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("invalid JWT format")
	}

	// Decode the payload (second part)
	decoded, err := base64Decode(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token payload")
	}

	var claims idTokenClaims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token claims")
	}

	return &claims, nil
}

// verifyTokenClaims verifies the token claims
func (v *Verifier) verifyTokenClaims(claims *idTokenClaims) error {
	// Check issuer
	if claims.Iss != "https://accounts.google.com" && claims.Iss != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", claims.Iss)
	}

	// Check audience (client ID)
	if claims.Aud != v.clientID {
		return errors.Errorf("invalid audience: expected %s, got %s", v.clientID, claims.Aud)
	}

	// Check expiration
	now := time.Now().Unix()
	if claims.Exp < now {
		return errors.Errorf("token expired: expired at %d, current time %d", claims.Exp, now)
	}

	// Check email verification
	if !claims.EmailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// base64Decode decodes a base64 URL-safe string
func base64Decode(str string) ([]byte, error) {
	str = strings.ReplaceAll(str, "-", "+")
	str = strings.ReplaceAll(str, "_", "/")

	if len(str)%4 != 0 {
		str += strings.Repeat("=", 4-len(str)%4)
	}

	return base64.StdEncoding.DecodeString(str)
}
