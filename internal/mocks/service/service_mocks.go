// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates the mock and registers expectation checks.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates the mock and registers expectation checks.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(account *entity.Account) (string, error) {
	args := m.Called(account)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*service.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.SessionClaims), args.Error(1)
}

// MockIdentityVerifier is a testify mock of service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

// NewMockIdentityVerifier creates the mock and registers expectation checks.
func NewMockIdentityVerifier(t *testing.T) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.ExternalIdentity), args.Error(1)
}

func (m *MockIdentityVerifier) Provider() entity.ProviderType {
	args := m.Called()

	return args.Get(0).(entity.ProviderType)
}

// MockSettingCache is a testify mock of service.SettingCache.
type MockSettingCache struct {
	mock.Mock
}

// NewMockSettingCache creates the mock and registers expectation checks.
func NewMockSettingCache(t *testing.T) *MockSettingCache {
	m := &MockSettingCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSettingCache) Get(ctx context.Context, name string) (*entity.Setting, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Setting), args.Error(1)
}

func (m *MockSettingCache) Set(ctx context.Context, setting *entity.Setting) error {
	args := m.Called(ctx, setting)

	return args.Error(0)
}

func (m *MockSettingCache) Invalidate(ctx context.Context, name string) error {
	args := m.Called(ctx, name)

	return args.Error(0)
}
