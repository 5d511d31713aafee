package testutil

import (
	"context"

	"smartedybot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) UpsertUser(user domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockCheckoutRepository is a mock for CheckoutRepository
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) SaveSession(session domain.CheckoutSession) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockCheckoutRepository) CleanOldSessions(days int) (int64, error) {
	args := m.Called(days)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentProvider is a mock for the checkout provider
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateSession(ctx context.Context, userID int64, tier domain.Tier) (domain.CheckoutSession, error) {
	args := m.Called(ctx, userID, tier)
	return args.Get(0).(domain.CheckoutSession), args.Error(1)
}

// MockCompleter is a mock for the completion client
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockRenderer is a mock for the PDF renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(receipt domain.Receipt, path string) error {
	args := m.Called(receipt, path)
	return args.Error(0)
}
