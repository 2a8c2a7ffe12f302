// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a credentials login.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleCallbackInput carries the Google ID token presented after external sign-in.
type GoogleCallbackInput struct {
	IDToken string
}

// SyncAccountInput defines the external-identity profile to upsert. It never
// carries a role; synchronization must not be able to grant privileges.
type SyncAccountInput struct {
	Name      string
	Email     string
	AvatarURL string
}

// --- Output DTOs ---

// SessionOutput returns the issued session token and the authenticated account.
type SessionOutput struct {
	Token   string
	Account *entity.Account
}

// SyncAccountOutput returns the account after the upsert.
type SyncAccountOutput struct {
	Account *entity.Account
	Created bool
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login verifies email/password credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*SessionOutput, error)

	// GoogleCallback verifies the Google ID token, gates the account by role
	// and active flag, and issues a session token.
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*SessionOutput, error)

	// SyncAccount upserts the external-identity profile by email.
	SyncAccount(ctx context.Context, input *SyncAccountInput) (*SyncAccountOutput, error)

	// ResolveRole looks up the current role of an account by email. The role
	// gate uses it to re-embed a role missing from older session tokens.
	ResolveRole(ctx context.Context, email string) (entity.Role, error)
}
