package customer

import (
	"context"

	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, entity *Customer) error
	Update(ctx context.Context, entity *Customer) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetById(ctx context.Context, id ulid.ULID) (*Customer, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Customer, int64, error)
	ListAll(ctx context.Context) ([]*Customer, error)
}
