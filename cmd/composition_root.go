package cmd

import (
	"log/slog"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/adapters/out/postgres"
	"github.com/vudinhquy04/NovaTechApp/internal/adapters/out/postgres/orderrepo"
	"github.com/vudinhquy04/NovaTechApp/internal/adapters/out/postgres/userdir"
	"github.com/vudinhquy04/NovaTechApp/internal/core/application/usecases/commands"
	"github.com/vudinhquy04/NovaTechApp/internal/core/application/usecases/queries"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/services"
	"github.com/vudinhquy04/NovaTechApp/internal/core/ports"
	"github.com/vudinhquy04/NovaTechApp/internal/jobs"

	"gorm.io/gorm"
)

// systemClock is the production Clock implementation.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemClock{},
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		userdir.NewGormUserDirectory(c.gormDB),
		services.NewOrderCodeAllocator(),
		c.clock,
	)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetOrdersByOwnerQueryHandler() queries.GetOrdersByOwnerQueryHandler {
	return queries.NewGetOrdersByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(staleShipmentThreshold time.Duration, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.orderRepository(), c.clock, staleShipmentThreshold, logger)
}

// orderRepository builds a repository on the main connection for read paths
// and jobs that don't need a surrounding transaction.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB, noTracker{})
}

// noTracker satisfies the repository's tracker dependency on paths where
// tracked aggregates are never consumed.
type noTracker struct{}

func (noTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
