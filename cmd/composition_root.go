package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpadapter "stockyard/internal/adapters/in/http"
	"stockyard/internal/adapters/out/memory"
	"stockyard/internal/adapters/out/postgres"
	"stockyard/internal/adapters/out/sessionstore"
	"stockyard/internal/adapters/out/static"
	"stockyard/internal/core/application/usecases/commands"
	"stockyard/internal/core/application/usecases/queries"
	"stockyard/internal/core/domain/services"
	"stockyard/internal/core/ports"
	"stockyard/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	sessions   ports.SessionRepository
	registry   ports.CustomerRegistry
	catalog    ports.Catalog
	clock      ports.Clock
}

// NewCompositionRoot picks the order store from config: PostgreSQL when a
// database host is configured, go-memdb otherwise.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	uowFactory, err := newUnitOfWorkFactory(config, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	capacity := config.SessionCapacity
	if capacity == 0 {
		capacity = sessionstore.DefaultCapacity
	}
	sessions, err := sessionstore.NewRepository(capacity, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	cat, err := static.NewDefaultCatalog()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: uowFactory,
		sessions:   sessions,
		registry:   static.NewDefaultCustomerRegistry(),
		catalog:    cat,
		clock:      SystemClock{},
	}, nil
}

func newUnitOfWorkFactory(config Config, logger *slog.Logger) (ports.UnitOfWorkFactory, error) {
	if !config.UsesPostgres() {
		db, err := memory.NewDB()
		if err != nil {
			return nil, fmt.Errorf("create in-memory order store: %w", err)
		}
		logger.Info("Using in-memory order store")
		return memory.NewUnitOfWorkFactory(db), nil
	}

	gormDB, err := postgres.Open(postgres.DSN(
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode))
	if err != nil {
		return nil, err
	}
	if err := postgres.Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("migrate order store: %w", err)
	}
	logger.Info("Using PostgreSQL order store", "host", config.DBHost, "db", config.DBName)
	return postgres.NewGormUnitOfWorkFactory(gormDB), nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartDriverSessionCommandHandler() commands.StartDriverSessionCommandHandler {
	return commands.NewStartDriverSessionCommandHandler(c.sessions, c.registry, c.clock)
}

func (c *CompositionRoot) CreateApplyFlowEventCommandHandler() commands.ApplyFlowEventCommandHandler {
	return commands.NewApplyFlowEventCommandHandler(c.sessions, c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateStartLoadingCommandHandler() commands.StartLoadingCommandHandler {
	return commands.NewStartLoadingCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderNoteCommandHandler() commands.AddOrderNoteCommandHandler {
	return commands.NewAddOrderNoteCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSweepIdleSessionsCommandHandler() commands.SweepIdleSessionsCommandHandler {
	return commands.NewSweepIdleSessionsCommandHandler(c.sessions, c.clock)
}

func (c *CompositionRoot) CreateGetDriverSessionQueryHandler() queries.GetDriverSessionQueryHandler {
	return queries.NewGetDriverSessionQueryHandler(c.sessions, services.NewDocumentIssuer())
}

// CreateGetOpenOrdersQueryHandler reads outside of any transaction.
func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateLookupPlateQueryHandler() queries.LookupPlateQueryHandler {
	return queries.NewLookupPlateQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateStartDriverSessionCommandHandler(),
		c.CreateApplyFlowEventCommandHandler(),
		c.CreateStartLoadingCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateAddOrderNoteCommandHandler(),
		c.CreateGetDriverSessionQueryHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
		c.CreateGetCatalogQueryHandler(),
		c.CreateLookupPlateQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateSweepIdleSessionsCommandHandler()
	return jobs.NewJobManager(&handler, c.config.SessionIdleTimeout, c.config.SweepSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
