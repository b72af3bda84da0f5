package queries_test

import (
	"context"
	"time"

	"stockyard/internal/core/domain/model/catalog"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/core/domain/model/session"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Remove(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionRepository) GetAllIdleSince(ctx context.Context, cutoff time.Time) ([]*session.Session, error) {
	args := m.Called(ctx, cutoff)
	sessions, _ := args.Get(0).([]*session.Session)
	return sessions, args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) GetAllOpen(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) Products(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]catalog.Product)
	return products, args.Error(1)
}

func (m *MockCatalog) Product(ctx context.Context, id string) (catalog.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(catalog.Product)
	return p, args.Error(1)
}

func (m *MockCatalog) Addresses(ctx context.Context) ([]catalog.Address, error) {
	args := m.Called(ctx)
	addresses, _ := args.Get(0).([]catalog.Address)
	return addresses, args.Error(1)
}

func (m *MockCatalog) Address(ctx context.Context, id string) (catalog.Address, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(catalog.Address)
	return a, args.Error(1)
}

type registry map[string]string

func (r registry) IsRegistered(name string) bool {
	for _, customer := range r {
		if customer == name {
			return true
		}
	}
	return false
}

func (r registry) CustomerByPlate(plate string) (string, bool) {
	name, ok := r[plate]
	return name, ok
}
