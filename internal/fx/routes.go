package fx

import (
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/auth"
	"github.com/harunoztuurk/otoservis/internal/domain/customer"
	"github.com/harunoztuurk/otoservis/internal/domain/dashboard"
	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	"github.com/harunoztuurk/otoservis/internal/domain/report"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	"github.com/harunoztuurk/otoservis/internal/infrastructure"
	"github.com/harunoztuurk/otoservis/internal/middleware"
	"github.com/harunoztuurk/otoservis/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule provides the HTTP handler and rate limiters.
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	authSvc *auth.Service,
	staffSvc *staff.Service,
	customerSvc *customer.Service,
	vehicleSvc *vehicle.Service,
	recordSvc *service.Service,
	invoiceSvc *invoice.Service,
	reportSvc report.Service,
	dashboardSvc dashboard.Service,
	jwtSvc *middleware.JwtService,
	eventRepo *infrastructure.EventRepository,
) *routes.Handler {
	return &routes.Handler{
		AuthService:      authSvc,
		StaffService:     staffSvc,
		CustomerService:  customerSvc,
		VehicleService:   vehicleSvc,
		RecordService:    recordSvc,
		InvoiceService:   invoiceSvc,
		ReportService:    reportSvc,
		DashboardService: dashboardSvc,
		JwtService:       jwtSvc,
		EventRepository:  eventRepo,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
