package commands_test

import (
	"context"
	"time"

	"stockyard/internal/core/application/usecases/commands"
	"stockyard/internal/core/domain/model/kernel"
	"stockyard/internal/core/domain/model/order"
	"stockyard/internal/core/domain/model/session"
	"stockyard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllOpen(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSessionRepository struct{ mock.Mock }

func (m *MockSessionRepository) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *MockSessionRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) GetAllIdleSince(ctx context.Context, cutoff time.Time) ([]*session.Session, error) {
	args := m.Called(ctx, cutoff)
	sessions, _ := args.Get(0).([]*session.Session)
	return sessions, args.Error(1)
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

var testRegistry = registry{"AB-123-CD": "Acme Corp"}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testClock = fixedClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
