package repository

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSettingRepository is a testify mock of repository.SettingRepository.
type MockSettingRepository struct {
	mock.Mock
}

// NewMockSettingRepository creates the mock and registers expectation checks.
func NewMockSettingRepository(t *testing.T) *MockSettingRepository {
	m := &MockSettingRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSettingRepository) FindByName(ctx context.Context, name string) (*entity.Setting, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Setting), args.Error(1)
}

func (m *MockSettingRepository) Create(ctx context.Context, setting *entity.Setting) error {
	args := m.Called(ctx, setting)

	return args.Error(0)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, setting *entity.Setting) error {
	args := m.Called(ctx, setting)

	return args.Error(0)
}
