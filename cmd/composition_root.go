package cmd

import (
	"context"
	"log/slog"

	"printflow/internal/adapters/out/memory"
	"printflow/internal/adapters/out/metrics"
	"printflow/internal/core/application/session"
	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/principal"
	"printflow/internal/core/domain/services"
	"printflow/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
)

type CompositionRoot struct {
	config      Config
	logger      *slog.Logger
	clock       kernel.Clock
	store       *memory.Store
	uowFactory  *memory.UnitOfWorkFactory
	clients     *memory.ClientDirectory
	credentials *memory.CredentialStore
	policy      services.AccessPolicy
	registry    *prometheus.Registry
	metrics     *metrics.OrderMetrics
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	clients, err := memory.NewDemoClientDirectory()
	if err != nil {
		return nil, err
	}
	credentials, err := memory.NewDemoCredentialStore(bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	store := memory.NewStore(config.OrderIDOffset)
	registry := prometheus.NewRegistry()
	return &CompositionRoot{
		config:      config,
		logger:      logger,
		clock:       kernel.NewSystemClock(),
		store:       store,
		uowFactory:  memory.NewUnitOfWorkFactory(store),
		clients:     clients,
		credentials: credentials,
		policy:      services.NewAccessPolicy(clients),
		registry:    registry,
		metrics:     metrics.NewOrderMetrics(registry),
	}, nil
}

// SeedDemoOrders loads the two sample orders into the store.
func (c *CompositionRoot) SeedDemoOrders(ctx context.Context) error {
	return memory.SeedDemoOrders(ctx, c.uowFactory)
}

// MetricsGatherer exposes the order gauges updated by the summary job.
func (c *CompositionRoot) MetricsGatherer() prometheus.Gatherer {
	return c.registry
}

// NewSession starts an independent login session.
func (c *CompositionRoot) NewSession() *session.Session {
	return session.New(c.credentials)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.policy, c.clock, c.config.EstimatedLeadTime)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAddTrackingNumberCommandHandler() commands.AddTrackingNumberCommandHandler {
	return commands.NewAddTrackingNumberCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateRemoveTrackingNumberCommandHandler() commands.RemoveTrackingNumberCommandHandler {
	return commands.NewRemoveTrackingNumberCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store, c.policy)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store, c.policy)
}

func (c *CompositionRoot) CreateGetStatusSummaryQueryHandler() queries.GetStatusSummaryQueryHandler {
	return queries.NewGetStatusSummaryQueryHandler(c.store, c.policy)
}

// CreateJobManager wires the background jobs. The summary job reports as a
// dedicated admin principal that cannot log in.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	reporter, err := principal.NewPrincipal("0", "reports@printflow.com", "Status Reporter", principal.Admin)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(c.CreateGetStatusSummaryQueryHandler(), reporter, c.metrics, c.config.SummarySchedule, c.logger), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
