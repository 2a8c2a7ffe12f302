// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountPatch carries a partial account mutation. Nil fields are left
// untouched, so role and active-flag changes can be applied independently.
type AccountPatch struct {
	Role     *entity.Role
	IsActive *bool
}

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never on the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List retrieves all accounts, newest first.
	List(ctx context.Context) ([]*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateProfile refreshes the display name and avatar of an account.
	// It never touches role, active flag or password hash, which guarantees
	// the external-identity sync can never downgrade an administrator.
	UpdateProfile(ctx context.Context, id uuid.UUID, name, avatarURL string) error

	// Patch applies a partial role/active-flag mutation.
	Patch(ctx context.Context, id uuid.UUID, patch AccountPatch) error

	// Delete removes an account by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int64, error)
}
