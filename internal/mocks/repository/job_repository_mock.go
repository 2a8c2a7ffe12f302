package repository

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockJobRepository is a testify mock of repository.JobRepository.
type MockJobRepository struct {
	mock.Mock
}

// NewMockJobRepository creates the mock and registers expectation checks.
func NewMockJobRepository(t *testing.T) *MockJobRepository {
	m := &MockJobRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Job), args.Error(1)
}

func (m *MockJobRepository) FindByJobID(ctx context.Context, jobID string) (*entity.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, limit int) ([]*entity.Job, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, job *entity.Job) error {
	args := m.Called(ctx, job)

	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, job *entity.Job) error {
	args := m.Called(ctx, job)

	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockJobRepository) IncrementCounterByJobID(ctx context.Context, jobID string, event entity.TrackingEvent) error {
	args := m.Called(ctx, jobID, event)

	return args.Error(0)
}

func (m *MockJobRepository) IncrementCounterByID(ctx context.Context, id uuid.UUID, event entity.TrackingEvent) error {
	args := m.Called(ctx, id, event)

	return args.Error(0)
}

func (m *MockJobRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) SumCounters(ctx context.Context) (*repository.JobCounters, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.JobCounters), args.Error(1)
}

func (m *MockJobRepository) TopByClicks(ctx context.Context, limit int) ([]*entity.Job, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Job), args.Error(1)
}
