package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to create an account from the
// back office.
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateAccountInput defines a partial account mutation. Nil fields are left
// untouched.
type UpdateAccountInput struct {
	AccountID uuid.UUID
	Role      *entity.Role
	IsActive  *bool
}

// AccountUsecase defines the interface for account administration.
type AccountUsecase interface {
	// ListAccounts retrieves all accounts, newest first.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)

	// GetAccount retrieves a single account by ID.
	GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// CreateAccount creates a new account with a bcrypt-hashed password.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// UpdateAccount applies a partial role/active-flag change.
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*entity.Account, error)

	// DeleteAccount removes an account by ID.
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
