package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
)

// SetMaintenanceModeInput carries the new maintenance-mode value.
type SetMaintenanceModeInput struct {
	IsEnabled bool
}

// SettingUsecase defines the interface for singleton settings.
type SettingUsecase interface {
	// GetMaintenanceMode reads the maintenance-mode singleton, creating it
	// disabled on first read.
	GetMaintenanceMode(ctx context.Context) (*entity.Setting, error)

	// SetMaintenanceMode overwrites the maintenance-mode singleton.
	SetMaintenanceMode(ctx context.Context, input *SetMaintenanceModeInput) (*entity.Setting, error)
}
