package service

import (
	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionClaims is the decoded content of a session token. The token is a
// signed, opaque blob from the client's point of view; only the server reads
// these fields.
//
// Role may be empty on tokens minted before the account's role was resolved
// (the external-identity first pass). The role gate re-resolves such tokens
// by email on each request.
type SessionClaims struct {
	AccountID uuid.UUID
	Role      entity.Role
	Email     string
	Name      string
}

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed session token embedding the account's identity
	// and role.
	Issue(account *entity.Account) (string, error)

	// Validate checks the signature and expiry of a token string and returns
	// its claims.
	Validate(tokenString string) (*SessionClaims, error)
}
