// Package service contains testify mocks for the domain service interfaces.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/service"
)

// MockOrderIDGenerator is a mock implementation of service.OrderIDGenerator.
type MockOrderIDGenerator struct {
	mock.Mock
}

// NewMockOrderIDGenerator creates a new mock wired to the test lifecycle.
func NewMockOrderIDGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderIDGenerator {
	m := &MockOrderIDGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderIDGenerator) NewOrderID() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

// MockEventPublisher is a mock implementation of service.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

// NewMockEventPublisher creates a new mock wired to the test lifecycle.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	m := &MockEventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new mock wired to the test lifecycle.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateAccessToken(subject string, roles []string) (string, error) {
	args := m.Called(subject, roles)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)

	var claims *service.Claims
	if args.Get(0) != nil {
		claims = args.Get(0).(*service.Claims)
	}

	return claims, args.Error(1)
}

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a new mock wired to the test lifecycle.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
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

// MockIdentityVerifier is a mock implementation of service.IdentityVerifier.
type MockIdentityVerifier struct {
	mock.Mock
}

// NewMockIdentityVerifier creates a new mock wired to the test lifecycle.
func NewMockIdentityVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdentityVerifier {
	m := &MockIdentityVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	args := m.Called(ctx, idToken)

	return args.String(0), args.Error(1)
}
