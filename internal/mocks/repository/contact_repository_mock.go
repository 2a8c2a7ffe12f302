package repository

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockContactRepository is a testify mock of repository.ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

// NewMockContactRepository creates the mock and registers expectation checks.
func NewMockContactRepository(t *testing.T) *MockContactRepository {
	m := &MockContactRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockContactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

func (m *MockContactRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockContactRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}
