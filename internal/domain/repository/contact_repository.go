package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is a domain-specific error returned when a contact message is not found.
var ErrMessageNotFound = errors.New("contact message not found")

// ContactRepository defines the operations for the contact-message inbox.
// Messages are immutable, so there is no update operation.
type ContactRepository interface {
	// Create persists a new contact message.
	Create(ctx context.Context, message *entity.ContactMessage) error

	// List retrieves all messages, newest first.
	List(ctx context.Context) ([]*entity.ContactMessage, error)

	// Delete removes a message by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of messages.
	Count(ctx context.Context) (int64, error)
}
