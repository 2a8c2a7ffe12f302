// Package usecase provides hand-written testify mocks for the usecase
// interfaces consumed by the delivery layer.
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockAuthUsecase) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockAuthUsecase) SyncAccount(ctx context.Context, input *usecase.SyncAccountInput) (*usecase.SyncAccountOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SyncAccountOutput), args.Error(1)
}

func (m *MockAuthUsecase) ResolveRole(ctx context.Context, email string) (entity.Role, error) {
	args := m.Called(ctx, email)

	return args.Get(0).(entity.Role), args.Error(1)
}
