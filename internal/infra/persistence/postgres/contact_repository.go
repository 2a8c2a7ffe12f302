package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a new contact message.
func (repo *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	messageM := fromContactDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// List retrieves all messages, newest first.
func (repo *contactRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	var messageModels []*model.ContactMessageModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toContactDomain(messageM))
	}

	return messages, nil
}

// Delete removes a message by ID.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactMessageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete contact message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// Count returns the total number of messages.
func (repo *contactRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ContactMessageModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count contact messages")
	}

	return count, nil
}

// --- Mapper Functions ---

// toContactDomain converts a GORM ContactMessageModel to a domain ContactMessage entity.
func toContactDomain(data *model.ContactMessageModel) *entity.ContactMessage {
	if data == nil {
		return nil
	}

	return &entity.ContactMessage{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

// fromContactDomain converts a domain ContactMessage entity to a GORM ContactMessageModel.
func fromContactDomain(data *entity.ContactMessage) *model.ContactMessageModel {
	if data == nil {
		return nil
	}

	return &model.ContactMessageModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Subject:   data.Subject,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
