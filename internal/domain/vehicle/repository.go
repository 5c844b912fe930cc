package vehicle

import (
	"context"

	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, entity *Vehicle) error
	Update(ctx context.Context, entity *Vehicle) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetById(ctx context.Context, id ulid.ULID) (*Vehicle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*Vehicle, error)
	GetByChassisNumber(ctx context.Context, chassis string) (*Vehicle, error)
	ListByCustomer(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*Vehicle, int64, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Vehicle, int64, error)
	ListAll(ctx context.Context) ([]*Vehicle, error)
}
