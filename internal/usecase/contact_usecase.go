package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateContactMessageInput defines the data of a public contact submission.
type CreateContactMessageInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactUsecase defines the interface for the contact inbox.
type ContactUsecase interface {
	// CreateMessage stores a public contact submission.
	CreateMessage(ctx context.Context, input *CreateContactMessageInput) (*entity.ContactMessage, error)

	// ListMessages retrieves all messages, newest first.
	ListMessages(ctx context.Context) ([]*entity.ContactMessage, error)

	// DeleteMessage removes a message by ID.
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
