package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMessage stores a public contact submission.
func (srv *contactService) CreateMessage(ctx context.Context, input *usecase.CreateContactMessageInput) (*entity.ContactMessage, error) {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, email and message are required")
	}

	message := &entity.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := srv.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Contact message received", slog.String("id", message.ID.String()))

	return message, nil
}

// ListMessages retrieves all messages, newest first.
func (srv *contactService) ListMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := srv.contactRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	return messages, nil
}

// DeleteMessage removes a message by ID.
func (srv *contactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := srv.contactRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return errors.Wrap(err, "failed to delete contact message")
	}

	return nil
}
