package commands_test

import (
	"context"
	"testing"
	"time"

	"printflow/internal/adapters/out/memory"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/principal"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

type env struct {
	store  *memory.Store
	uows   commands.OrderUoWFactory
	policy services.AccessPolicy
	clock  kernel.Clock
	admin  principal.Principal
	john   principal.Principal
	jane   principal.Principal
}

func newEnv(t *testing.T) env {
	t.Helper()
	clients, err := memory.NewDemoClientDirectory()
	require.NoError(t, err)
	john, _ := clients.Client("2")
	jane, _ := clients.Client("3")
	admin, err := principal.NewPrincipal("1", "admin@printflow.com", "Admin User", principal.Admin)
	require.NoError(t, err)

	store := memory.NewStore(memory.DefaultIDOffset)
	return env{
		store:  store,
		uows:   memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)},
		policy: services.NewAccessPolicy(clients),
		clock:  kernel.NewFixedClock(now),
		admin:  admin,
		john:   john,
		jane:   jane,
	}
}

func (e env) createHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(e.uows, e.policy, e.clock, order.DefaultLeadTime)
}

func (e env) create(t *testing.T, submitter principal.Principal, payload order.NewOrderPayload) *order.Order {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(submitter, payload)
	require.NoError(t, err)
	h := e.createHandler()
	created, err := h.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return created
}

func flyersFor(clientID string) order.NewOrderPayload {
	return order.NewOrderPayload{
		ProjectName: "Flyers Q1",
		Specifications: order.SpecificationsInput{
			Type:      "Flyers",
			Size:      "Standard",
			Quantity:  250,
			PaperType: "Glossy",
			Color:     true,
		},
		ClientID: clientID,
	}
}

func snapshot(t *testing.T, store *memory.Store) []*order.Order {
	t.Helper()
	orders, err := store.List(t.Context())
	require.NoError(t, err)
	return orders
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
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
