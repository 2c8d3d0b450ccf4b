package cmd

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"agrilease/internal/adapters/out/media"
	"agrilease/internal/adapters/out/notify"
	"agrilease/internal/adapters/out/postgres"
	"agrilease/internal/adapters/out/postgres/pricingrepo"
	"agrilease/internal/core/application/usecases/commands"
	"agrilease/internal/core/application/usecases/queries"
	"agrilease/internal/core/domain/model/pricing"
	"agrilease/internal/core/domain/services"
	"agrilease/internal/jobs"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	dispatcher      *notify.Dispatcher
	uploader        *media.LocalUploader
	orderTypePolicy services.OrderTypePolicy
	logger          *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	uploader, err := media.NewLocalUploader(configs.UploadRootDir, configs.UploadBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher:      notify.NewDispatcher(logger),
		uploader:        uploader,
		orderTypePolicy: newOrderTypePolicy(configs.OrderTypeStrategy, gormDB),
		logger:          logger,
	}, nil
}

// newOrderTypePolicy selects the order-type derivation strategy. Threshold
// mode reads per-device-type limits from the database; anything else falls
// back to role-based derivation.
func newOrderTypePolicy(strategy string, gormDB *gorm.DB) services.OrderTypePolicy {
	if strategy == "threshold" {
		thresholds := pricingrepo.NewGormThresholdConfigRepository(gormDB)
		lookup := services.ThresholdLookup(func(deviceType string) (pricing.ThresholdConfig, bool) {
			config, err := thresholds.GetByDeviceType(context.Background(), deviceType)
			if err != nil {
				return pricing.ThresholdConfig{}, false
			}
			return config, true
		})
		return services.NewThresholdBasedPolicy(lookup)
	}
	return services.NewRoleBasedPolicy()
}

// Close shuts down the shared outbound adapters, draining any queued
// notifications.
func (c *CompositionRoot) Close() {
	c.dispatcher.Close()
}

func (c *CompositionRoot) CreateCreateDeviceCommandHandler() commands.CreateDeviceCommandHandler {
	var f commands.DeviceUoWFactory = FuncDeviceUoWFactory(func() commands.DeviceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeviceCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDeviceStatusCommandHandler() commands.ChangeDeviceStatusCommandHandler {
	var f commands.DevicePricingUoWFactory = FuncDevicePricingUoWFactory(func() commands.DevicePricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDeviceStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCreationUoWFactory = FuncOrderCreationUoWFactory(func() commands.OrderCreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.orderTypePolicy, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.dispatcher, c.dispatcher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.dispatcher, c.dispatcher)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.dispatcher, c.dispatcher)
}

func (c *CompositionRoot) CreateCreateLeaseFromOrderCommandHandler() commands.CreateLeaseFromOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLeaseFromOrderCommandHandler(f, c.uploader, c.dispatcher)
}

func (c *CompositionRoot) CreateEndLeaseCommandHandler() commands.EndLeaseCommandHandler {
	var f commands.LeaseDeviceUoWFactory = FuncLeaseDeviceUoWFactory(func() commands.LeaseDeviceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEndLeaseCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateExpireLeasesCommandHandler() commands.ExpireLeasesCommandHandler {
	var f commands.LeaseDeviceUoWFactory = FuncLeaseDeviceUoWFactory(func() commands.LeaseDeviceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireLeasesCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateAssignOperatorCommandHandler() commands.AssignOperatorCommandHandler {
	var f commands.LeaseUoWFactory = FuncLeaseUoWFactory(func() commands.LeaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignOperatorCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCreatePricingRuleCommandHandler() commands.CreatePricingRuleCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePricingRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateDiscoverDevicesQueryHandler() queries.DiscoverDevicesQueryHandler {
	return queries.NewDiscoverDevicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActivePricingQueryHandler() queries.GetActivePricingQueryHandler {
	return queries.NewGetActivePricingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByRequesterQueryHandler() queries.GetOrdersByRequesterQueryHandler {
	return queries.NewGetOrdersByRequesterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireLeasesCommandHandler(), c.logger)
}

type FuncDeviceUoWFactory func() commands.DeviceUoW

func (f FuncDeviceUoWFactory) Create() commands.DeviceUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLeaseUoWFactory func() commands.LeaseUoW

func (f FuncLeaseUoWFactory) Create() commands.LeaseUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncDevicePricingUoWFactory func() commands.DevicePricingUoW

func (f FuncDevicePricingUoWFactory) Create() commands.DevicePricingUoW {
	return f()
}

type FuncOrderCreationUoWFactory func() commands.OrderCreationUoW

func (f FuncOrderCreationUoWFactory) Create() commands.OrderCreationUoW {
	return f()
}

type FuncLeaseDeviceUoWFactory func() commands.LeaseDeviceUoW

func (f FuncLeaseDeviceUoWFactory) Create() commands.LeaseDeviceUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
