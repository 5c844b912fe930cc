package fx

import (
	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newStaffRepository,
		newCustomerRepository,
		newVehicleRepository,
		newServiceRepository,
		newInvoiceRepository,
		newEventRepository,
		newDashboardRepository,
		newReportRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newStaffRepository(db *gorm.DB) *infrastructure.StaffRepository {
	return &infrastructure.StaffRepository{DB: db}
}

func newCustomerRepository(db *gorm.DB) *infrastructure.CustomerRepository {
	return &infrastructure.CustomerRepository{DB: db}
}

func newVehicleRepository(db *gorm.DB) *infrastructure.VehicleRepository {
	return &infrastructure.VehicleRepository{DB: db}
}

func newServiceRepository(db *gorm.DB) *infrastructure.ServiceRepository {
	return &infrastructure.ServiceRepository{DB: db}
}

func newInvoiceRepository(db *gorm.DB) *infrastructure.InvoiceRepository {
	return &infrastructure.InvoiceRepository{DB: db}
}

func newEventRepository(db *gorm.DB) *infrastructure.EventRepository {
	return &infrastructure.EventRepository{DB: db}
}

func newDashboardRepository(db *gorm.DB) *infrastructure.DashboardRepository {
	return &infrastructure.DashboardRepository{DB: db}
}

func newReportRepository(db *gorm.DB) *infrastructure.ReportRepository {
	return &infrastructure.ReportRepository{DB: db}
}
