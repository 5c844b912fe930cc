package fx

import (
	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	"github.com/harunoztuurk/otoservis/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, staffSvc *staff.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, staffSvc)
}
