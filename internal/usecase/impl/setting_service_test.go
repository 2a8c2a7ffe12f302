package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	mockSvc "backoffice/internal/mocks/service"
	"backoffice/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// settingServiceFixtures holds all test dependencies for setting service tests.
type settingServiceFixtures struct {
	service     usecase.SettingUsecase
	settingRepo *mockRepo.MockSettingRepository
	cache       *mockSvc.MockSettingCache
}

func createTestSettingService(t *testing.T) settingServiceFixtures {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	cache := mockSvc.NewMockSettingCache(t)

	svc := NewSettingService(SettingServiceParams{
		SettingRepo: settingRepo,
		Cache:       cache,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return settingServiceFixtures{
		service:     svc,
		settingRepo: settingRepo,
		cache:       cache,
	}
}

func TestSettingService_GetMaintenanceMode_FromCache(t *testing.T) {
	fx := createTestSettingService(t)
	ctx := context.Background()

	cached := &entity.Setting{Name: entity.SettingMaintenanceMode, IsEnabled: true}
	fx.cache.On("Get", ctx, entity.SettingMaintenanceMode).Return(cached, nil)

	setting, err := fx.service.GetMaintenanceMode(ctx)
	require.NoError(t, err)
	assert.True(t, setting.IsEnabled)
	fx.settingRepo.AssertNotCalled(t, "FindByName")
}

func TestSettingService_GetMaintenanceMode_ExistingRow(t *testing.T) {
	fx := createTestSettingService(t)
	ctx := context.Background()

	stored := &entity.Setting{Name: entity.SettingMaintenanceMode, IsEnabled: true}

	fx.cache.On("Get", ctx, entity.SettingMaintenanceMode).Return(nil, nil)
	fx.settingRepo.On("FindByName", ctx, entity.SettingMaintenanceMode).Return(stored, nil)
	fx.cache.On("Set", ctx, stored).Return(nil)

	setting, err := fx.service.GetMaintenanceMode(ctx)
	require.NoError(t, err)
	assert.True(t, setting.IsEnabled)
	fx.settingRepo.AssertNotCalled(t, "Create")
}

func TestSettingService_GetMaintenanceMode_CreatesDisabledOnFirstRead(t *testing.T) {
	fx := createTestSettingService(t)
	ctx := context.Background()

	created := &entity.Setting{Name: entity.SettingMaintenanceMode, IsEnabled: false}

	fx.cache.On("Get", ctx, entity.SettingMaintenanceMode).Return(nil, nil)
	fx.settingRepo.On("FindByName", ctx, entity.SettingMaintenanceMode).
		Return(nil, repository.ErrSettingNotFound).Once()
	fx.settingRepo.On("Create", ctx, mock.AnythingOfType("*entity.Setting")).
		Run(func(args mock.Arguments) {
			setting := args.Get(1).(*entity.Setting)
			assert.False(t, setting.IsEnabled)
		}).
		Return(nil)
	fx.settingRepo.On("FindByName", ctx, entity.SettingMaintenanceMode).
		Return(created, nil).Once()
	fx.cache.On("Set", ctx, created).Return(nil)

	setting, err := fx.service.GetMaintenanceMode(ctx)
	require.NoError(t, err)
	assert.False(t, setting.IsEnabled)
}

func TestSettingService_GetMaintenanceMode_CacheFailureFallsThrough(t *testing.T) {
	fx := createTestSettingService(t)
	ctx := context.Background()

	stored := &entity.Setting{Name: entity.SettingMaintenanceMode, IsEnabled: false}

	fx.cache.On("Get", ctx, entity.SettingMaintenanceMode).Return(nil, assert.AnError)
	fx.settingRepo.On("FindByName", ctx, entity.SettingMaintenanceMode).Return(stored, nil)
	fx.cache.On("Set", ctx, stored).Return(nil)

	setting, err := fx.service.GetMaintenanceMode(ctx)
	require.NoError(t, err)
	assert.False(t, setting.IsEnabled)
}

func TestSettingService_SetMaintenanceMode_UpsertsAndInvalidates(t *testing.T) {
	fx := createTestSettingService(t)
	ctx := context.Background()

	fx.settingRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.Setting")).
		Run(func(args mock.Arguments) {
			setting := args.Get(1).(*entity.Setting)
			assert.Equal(t, entity.SettingMaintenanceMode, setting.Name)
			assert.True(t, setting.IsEnabled)
		}).
		Return(nil)
	fx.cache.On("Invalidate", ctx, entity.SettingMaintenanceMode).Return(nil)

	setting, err := fx.service.SetMaintenanceMode(ctx, &usecase.SetMaintenanceModeInput{IsEnabled: true})
	require.NoError(t, err)
	assert.True(t, setting.IsEnabled)
}
