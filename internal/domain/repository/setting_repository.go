package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"
)

// ErrSettingNotFound is a domain-specific error returned when a setting is not found.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository defines the operations for singleton settings.
type SettingRepository interface {
	// FindByName retrieves a setting by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Setting, error)

	// Create persists a new setting. The unique constraint on the name
	// guarantees at most one row per setting even under concurrent creates.
	Create(ctx context.Context, setting *entity.Setting) error

	// Upsert overwrites the setting value, creating the row if absent.
	Upsert(ctx context.Context, setting *entity.Setting) error
}
