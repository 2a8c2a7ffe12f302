package impl

import (
	"context"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingService implements the SettingUsecase interface.
type settingService struct {
	settingRepo repository.SettingRepository
	cache       service.SettingCache
	logger      *slog.Logger
}

// SettingServiceParams holds dependencies for settingService, injected by Fx.
type SettingServiceParams struct {
	fx.In

	SettingRepo repository.SettingRepository
	Cache       service.SettingCache
	Logger      *slog.Logger
}

// NewSettingService is the constructor for settingService.
func NewSettingService(params SettingServiceParams) usecase.SettingUsecase {
	return &settingService{
		settingRepo: params.SettingRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *settingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMaintenanceMode reads the maintenance-mode singleton, creating it
// disabled on first read. The name's uniqueness in the store guarantees at
// most one row even when two first reads race; the loser of the race simply
// re-reads the winner's row.
func (srv *settingService) GetMaintenanceMode(ctx context.Context) (*entity.Setting, error) {
	if cached, err := srv.cache.Get(ctx, entity.SettingMaintenanceMode); err != nil {
		srv.log(ctx).Warn("Setting cache read failed", slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	setting, err := srv.settingRepo.FindByName(ctx, entity.SettingMaintenanceMode)
	if err == nil {
		srv.cacheSetting(ctx, setting)

		return setting, nil
	}
	if !errors.Is(err, repository.ErrSettingNotFound) {
		return nil, errors.Wrap(err, "failed to find setting")
	}

	created := &entity.Setting{
		Name:      entity.SettingMaintenanceMode,
		IsEnabled: false,
	}
	if err := srv.settingRepo.Create(ctx, created); err != nil {
		return nil, errors.Wrap(err, "failed to create setting")
	}

	setting, err = srv.settingRepo.FindByName(ctx, entity.SettingMaintenanceMode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload setting")
	}

	srv.cacheSetting(ctx, setting)

	return setting, nil
}

// SetMaintenanceMode overwrites the maintenance-mode singleton.
func (srv *settingService) SetMaintenanceMode(ctx context.Context, input *usecase.SetMaintenanceModeInput) (*entity.Setting, error) {
	setting := &entity.Setting{
		Name:      entity.SettingMaintenanceMode,
		IsEnabled: input.IsEnabled,
	}

	if err := srv.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, errors.Wrap(err, "failed to upsert setting")
	}

	if err := srv.cache.Invalidate(ctx, entity.SettingMaintenanceMode); err != nil {
		srv.log(ctx).Warn("Setting cache invalidation failed", slog.Any("error", err))
	}

	srv.log(ctx).Info("Maintenance mode updated", slog.Bool("isEnabled", input.IsEnabled))

	return setting, nil
}

func (srv *settingService) cacheSetting(ctx context.Context, setting *entity.Setting) {
	if err := srv.cache.Set(ctx, setting); err != nil {
		srv.log(ctx).Warn("Setting cache write failed", slog.Any("error", err))
	}
}
