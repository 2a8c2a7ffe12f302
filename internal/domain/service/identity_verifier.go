package service

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ExternalIdentity represents the identity asserted by an external provider
// after a successful handshake.
type ExternalIdentity struct {
	Subject       string              // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email         string              // Email address asserted by the provider.
	Name          string              // Display name asserted by the provider.
	AvatarURL     string              // Profile picture URL.
	EmailVerified bool                // Whether the provider has verified the email.
	Provider      entity.ProviderType // Which provider asserted this identity.
}

// IdentityVerifier defines the interface for verifying external-provider
// ID tokens. The verified identity is then cross-checked against the local
// account store by the sign-in gate; verification alone never grants access.
type IdentityVerifier interface {
	// VerifyIDToken verifies an ID token and returns the asserted identity.
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)

	// Provider returns the provider type this verifier handles.
	Provider() entity.ProviderType
}
