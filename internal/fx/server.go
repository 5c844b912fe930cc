package fx

import (
	"context"

	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/logger"
	"github.com/harunoztuurk/otoservis/internal/middleware"
	"github.com/harunoztuurk/otoservis/internal/routes"

	docs "github.com/harunoztuurk/otoservis/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule provides the HTTP server setup.
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByStaff())
	{
		private.GET("/dashboard", handler.GetDashboard)

		staff := private.Group("/staff")
		{
			staff.POST("", middleware.RequireRole("admin"), handler.CreateStaff)
			staff.GET("", middleware.RequireRole("admin"), handler.ListStaff)
			staff.GET("/me", handler.GetMyProfile)
			staff.GET("/:id", middleware.RequireRole("admin"), handler.GetStaff)
			staff.DELETE("/:id", middleware.RequireRole("admin"), handler.DeleteStaff)
			staff.PATCH("/me/password", handler.UpdateMyPassword)
		}

		customers := private.Group("/customers")
		{
			customers.POST("", handler.CreateCustomer)
			customers.GET("", handler.ListCustomers)
			customers.GET("/:id", handler.GetCustomer)
			customers.PATCH("/:id", handler.UpdateCustomer)
			customers.DELETE("/:id", middleware.RequireRole("admin"), handler.DeleteCustomer)
			customers.GET("/:id/vehicles", handler.ListCustomerVehicles)
			customers.GET("/:id/invoices", handler.ListCustomerInvoices)
		}

		vehicles := private.Group("/vehicles")
		{
			vehicles.POST("", handler.CreateVehicle)
			vehicles.GET("", handler.ListVehicles)
			vehicles.GET("/:id", handler.GetVehicle)
			vehicles.PATCH("/:id", handler.UpdateVehicle)
			vehicles.DELETE("/:id", middleware.RequireRole("admin"), handler.DeleteVehicle)
			vehicles.GET("/:id/services", handler.ListVehicleServices)
		}

		services := private.Group("/services")
		{
			services.POST("", handler.CreateService)
			services.GET("", handler.ListServices)
			services.GET("/:id", handler.GetService)
			services.POST("/:id/start", handler.StartService)
			services.POST("/:id/complete", handler.CompleteService)
			services.POST("/:id/cancel", handler.CancelService)
			services.POST("/:id/items", handler.AddServiceItem)
			services.DELETE("/:id/items/:itemId", handler.RemoveServiceItem)
			services.GET("/:id/history", handler.GetServiceHistory)
			services.GET("/:id/invoice", handler.GetServiceInvoice)
		}

		invoices := private.Group("/invoices")
		{
			invoices.POST("", handler.IssueInvoice)
			invoices.GET("", handler.ListInvoices)
			invoices.GET("/number/:number", handler.GetInvoiceByNumber)
			invoices.GET("/:id", handler.GetInvoice)
			invoices.POST("/:id/payments", handler.RecordPayment)
			invoices.GET("/:id/payments", handler.ListInvoicePayments)
			invoices.GET("/:id/installments", handler.ListInvoiceInstallments)
			invoices.POST("/process-overdue", middleware.RequireRole("admin"), handler.ProcessOverdueInvoices)
		}

		reports := private.Group("/reports")
		reports.Use(middleware.RequireRole("admin"))
		{
			reports.GET("/monthly", handler.GetMonthlyReport)
			reports.GET("/yearly", handler.GetYearlyReport)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Sunucu başlatılıyor")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Sunucu başlatılamadı")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Sunucu durduruluyor...")
			return nil
		},
	})
}
