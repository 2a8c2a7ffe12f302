package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/config"
	"backoffice/internal/domain/entity"
)

const testClientID = "test-client-id.apps.googleusercontent.com"

func newTestVerifier() *Verifier {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID},
	}

	return NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*Verifier)
}

// buildIDToken assembles an unsigned JWT carrying the given claims. Signature
// verification is out of scope for the parser, so a fixed third segment is fine.
func buildIDToken(t *testing.T, claims idTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func validClaims() idTokenClaims {
	return idTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "108123456789",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "user@example.com",
		EmailVerified: true,
		Name:          "Some User",
		Picture:       "https://example.com/avatar.png",
	}
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	verifier := newTestVerifier()

	identity, err := verifier.VerifyIDToken(context.Background(), buildIDToken(t, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "108123456789", identity.Subject)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "Some User", identity.Name)
	assert.Equal(t, "https://example.com/avatar.png", identity.AvatarURL)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, entity.ProviderTypeGoogle, identity.Provider)
}

func TestVerifier_VerifyIDToken_AcceptsBareIssuer(t *testing.T) {
	verifier := newTestVerifier()

	claims := validClaims()
	claims.Iss = "accounts.google.com"

	_, err := verifier.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.NoError(t, err)
}

func TestVerifier_VerifyIDToken_Rejections(t *testing.T) {
	verifier := newTestVerifier()

	tests := []struct {
		name   string
		mutate func(*idTokenClaims)
	}{
		{
			name:   "wrong issuer",
			mutate: func(c *idTokenClaims) { c.Iss = "https://evil.example.com" },
		},
		{
			name:   "wrong audience",
			mutate: func(c *idTokenClaims) { c.Aud = "another-client-id" },
		},
		{
			name:   "expired token",
			mutate: func(c *idTokenClaims) { c.Exp = time.Now().Add(-time.Hour).Unix() },
		},
		{
			name:   "unverified email",
			mutate: func(c *idTokenClaims) { c.EmailVerified = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(&claims)

			_, err := verifier.VerifyIDToken(context.Background(), buildIDToken(t, claims))
			assert.Error(t, err)
		})
	}
}

func TestVerifier_VerifyIDToken_MalformedToken(t *testing.T) {
	verifier := newTestVerifier()

	_, err := verifier.VerifyIDToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)

	_, err = verifier.VerifyIDToken(context.Background(), "a.!!!not-base64!!!.c")
	assert.Error(t, err)
}

func TestVerifier_Provider(t *testing.T) {
	assert.Equal(t, entity.ProviderTypeGoogle, newTestVerifier().Provider())
}
