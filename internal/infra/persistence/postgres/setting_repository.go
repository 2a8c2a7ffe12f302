package postgres

import (
	"context"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// FindByName retrieves a setting by its unique name.
func (repo *settingRepository) FindByName(ctx context.Context, name string) (*entity.Setting, error) {
	var settingM model.SettingModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting by name")
	}

	return toSettingDomain(&settingM), nil
}

// Create persists a new setting. The primary key on the name keeps the row
// unique even when two instances race to create it.
func (repo *settingRepository) Create(ctx context.Context, setting *entity.Setting) error {
	settingM := fromSettingDomain(setting)

	if err := repo.db.WithContext(ctx).Create(settingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another writer created the row first. The caller re-reads.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create setting")
	}

	return nil
}

// Upsert overwrites the setting value, creating the row if absent.
func (repo *settingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	settingM := fromSettingDomain(setting)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_enabled", "updated_at"}),
		}).
		Create(settingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert setting")
	}

	return nil
}

// --- Mapper Functions ---

// toSettingDomain converts a GORM SettingModel to a domain Setting entity.
func toSettingDomain(data *model.SettingModel) *entity.Setting {
	if data == nil {
		return nil
	}

	return &entity.Setting{
		Name:      data.Name,
		IsEnabled: data.IsEnabled,
	}
}

// fromSettingDomain converts a domain Setting entity to a GORM SettingModel.
func fromSettingDomain(data *entity.Setting) *model.SettingModel {
	if data == nil {
		return nil
	}

	return &model.SettingModel{
		Name:      data.Name,
		IsEnabled: data.IsEnabled,
	}
}
