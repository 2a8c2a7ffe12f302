package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"
)

// MockJobUsecase is a mock implementation of usecase.JobUsecase.
type MockJobUsecase struct {
	mock.Mock
}

func NewMockJobUsecase(t *testing.T) *MockJobUsecase {
	m := &MockJobUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockJobUsecase) ListJobs(ctx context.Context) ([]*entity.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Job), args.Error(1)
}

func (m *MockJobUsecase) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Job), args.Error(1)
}

func (m *MockJobUsecase) CreateJob(ctx context.Context, input *usecase.CreateJobInput) (*entity.Job, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Job), args.Error(1)
}

func (m *MockJobUsecase) UpdateJob(ctx context.Context, input *usecase.UpdateJobInput) (*entity.Job, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Job), args.Error(1)
}

func (m *MockJobUsecase) DeleteJob(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockJobUsecase) Track(ctx context.Context, input *usecase.TrackInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}
