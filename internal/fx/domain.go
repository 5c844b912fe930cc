package fx

import (
	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/domain/auth"
	"github.com/harunoztuurk/otoservis/internal/domain/customer"
	"github.com/harunoztuurk/otoservis/internal/domain/dashboard"
	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	"github.com/harunoztuurk/otoservis/internal/domain/report"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	"github.com/harunoztuurk/otoservis/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule provides the domain services.
var DomainModule = fx.Module("domain",
	fx.Provide(
		newStaffService,
		newAuthService,
		newCustomerService,
		newVehicleService,
		newServiceService,
		newInvoiceService,
		newDashboardService,
		newReportService,
	),
)

func newStaffService(repo *infrastructure.StaffRepository) *staff.Service {
	return staff.NewService(repo)
}

func newAuthService(
	repo *infrastructure.StaffRepository,
	staffSvc *staff.Service,
) *auth.Service {
	return auth.NewService(repo, staffSvc)
}

func newCustomerService(repo *infrastructure.CustomerRepository) *customer.Service {
	return customer.NewService(repo)
}

func newVehicleService(
	repo *infrastructure.VehicleRepository,
	customerSvc *customer.Service,
) *vehicle.Service {
	return vehicle.NewService(repo, customerSvc)
}

func newServiceService(
	repo *infrastructure.ServiceRepository,
	vehicleSvc *vehicle.Service,
	events *infrastructure.EventRepository,
) *service.Service {
	return service.NewService(repo, vehicleSvc, events)
}

func newInvoiceService(
	cfg *config.Config,
	repo *infrastructure.InvoiceRepository,
	recordSvc *service.Service,
	vehicleSvc *vehicle.Service,
	events *infrastructure.EventRepository,
) *invoice.Service {
	// The record service doubles as the payment status projector; the
	// invoice stays authoritative and pushes its state onto the record.
	return invoice.NewService(repo, recordSvc, vehicleSvc, recordSvc, events, cfg.Billing)
}

func newDashboardService(repo *infrastructure.DashboardRepository) dashboard.Service {
	return dashboard.Service{
		Repository: repo,
	}
}

func newReportService(repo *infrastructure.ReportRepository) report.Service {
	return report.Service{
		Repository: repo,
	}
}
