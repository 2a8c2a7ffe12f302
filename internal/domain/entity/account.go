// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity in the back office. One row per person,
// whether they sign in with a password or through Google.
type Account struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // Display name, refreshed on every external-identity sync.
	Email        string    // Login identifier; globally unique.
	PasswordHash string    // bcrypt hash. Empty for accounts that only sign in via Google.
	AvatarURL    string    // Profile picture URL supplied by the identity provider.
	Role         Role      // Privilege level: user, admin or super_admin.
	IsActive     bool      // Inactive accounts are blocked at the Google sign-in gate.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// HasPassword reports whether this account can authenticate with a password.
// Accounts created by the sync-on-login flow have no hash and must use Google.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}
